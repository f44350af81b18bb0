package server

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	configDir      = "config"
	appConfigFile  = "app.toml"
	genesisFile    = "genesis.json"
	dataDir        = "data"
	defaultRESTAPI = "127.0.0.1:1317"
)

// Config is the node configuration read from config/app.toml. Command line
// flags bound through viper override the file.
type Config struct {
	RootDir string `toml:"-" mapstructure:"-"`

	LogLevel       string `toml:"log_level" mapstructure:"log_level" comment:"Logging level, e.g. \"main:info,*:error\""`
	InvCheckPeriod uint   `toml:"inv-check-period" mapstructure:"inv-check-period" comment:"Assert registered invariants every N blocks, 0 disables"`

	REST RESTConfig `toml:"rest" mapstructure:"rest"`
}

// RESTConfig configures the HTTP endpoint of the node.
type RESTConfig struct {
	Listen  string `toml:"listen" mapstructure:"listen" comment:"Address the REST server listens on"`
	Metrics bool   `toml:"metrics" mapstructure:"metrics" comment:"Serve prometheus metrics on /metrics"`
}

// DefaultConfig returns the configuration of a fresh home directory.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:       "main:info,ledgerapp:info,*:error",
		InvCheckPeriod: 0,
		REST: RESTConfig{
			Listen:  defaultRESTAPI,
			Metrics: true,
		},
	}
}

// SetRoot sets the home directory the config paths are resolved against.
func (c *Config) SetRoot(root string) *Config {
	c.RootDir = root
	return c
}

func (c *Config) ConfigFile() string {
	return filepath.Join(c.RootDir, configDir, appConfigFile)
}

func (c *Config) GenesisFile() string {
	return filepath.Join(c.RootDir, configDir, genesisFile)
}

func (c *Config) DBDir() string {
	return filepath.Join(c.RootDir, dataDir)
}

// WriteConfigFile renders cfg as TOML into path, creating the directory.
func WriteConfigFile(path string, cfg *Config) error {
	bz, err := toml.Marshal(*cfg)
	if err != nil {
		return errors.Wrap(err, "failed to encode config")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	return ioutil.WriteFile(path, bz, 0644)
}

// LoadConfig reads root/config/app.toml into the defaults. A missing file is
// written out first.
func LoadConfig(root string) (*Config, error) {
	cfg := DefaultConfig().SetRoot(root)
	path := cfg.ConfigFile()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := WriteConfigFile(path, cfg); err != nil {
			return nil, err
		}
	}

	viper.SetConfigFile(path)
	if err := viper.MergeInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	cfg.RootDir = root
	return cfg, nil
}
