package server

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/cli"
	tmflags "github.com/tendermint/tendermint/libs/cli/flags"
	"github.com/tendermint/tendermint/libs/log"
)

// Context carries the node configuration and logger into the commands.
type Context struct {
	Config *Config
	Logger log.Logger
}

func NewDefaultContext() *Context {
	return NewContext(DefaultConfig(), log.NewTMLogger(log.NewSyncWriter(os.Stdout)))
}

func NewContext(config *Config, logger log.Logger) *Context {
	return &Context{config, logger}
}

// PersistentPreRunEFn loads the config of --home and sets the log level
// before any command runs.
func PersistentPreRunEFn(context *Context) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, _ []string) error {
		config, err := LoadConfig(viper.GetString(cli.HomeFlag))
		if err != nil {
			return err
		}
		logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout))
		logger, err = tmflags.ParseLogLevel(config.LogLevel, logger, "info")
		if err != nil {
			return err
		}
		if viper.GetBool(cli.TraceFlag) {
			logger = log.NewTracingLogger(logger)
		}
		context.Config = config
		context.Logger = logger.With("module", "main")
		return nil
	}
}
