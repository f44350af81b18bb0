package server

// DONTCOVER

import (
	"os"
	"runtime/pprof"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	abci "github.com/tendermint/tendermint/abci/types"
	cmn "github.com/tendermint/tendermint/libs/common"
	tmtypes "github.com/tendermint/tendermint/types"
	dbm "github.com/tendermint/tm-db"

	"github.com/hbtc-chain/govledger/client/context"
	"github.com/hbtc-chain/govledger/client/flags"
	"github.com/hbtc-chain/govledger/codec"
	"github.com/hbtc-chain/govledger/ledgerapp"
	sdk "github.com/hbtc-chain/govledger/types"
)

// start flags
const (
	FlagInvCheckPeriod = "inv-check-period"
	flagRESTListen     = "rest.listen"
	flagCPUProfile     = "cpu-profile"
)

// StartCmd runs the node: the application over its on-disk store and the
// REST server in front of it.
func StartCmd(ctx *Context, cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Run the ledger node",
		Long: `Run the ledger node. The node initialises the chain from config/genesis.json
on its first start and then serves queries and transactions over REST. Every
accepted transaction is delivered in a block of its own.

For profiling and benchmarking purposes, CPU profiling can be enabled via the '--cpu-profile' flag
which accepts a path for the resulting pprof file.
`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return startNode(ctx, cdc)
		},
	}

	cmd.Flags().String(flagRESTListen, defaultRESTAPI, "Address the REST server listens on")
	cmd.Flags().String(flagCPUProfile, "", "Enable CPU profiling and write to the provided file")
	flags.BindFlags(cmd.Flags(), flagRESTListen, flagCPUProfile)
	return cmd
}

func startNode(ctx *Context, cdc *codec.Codec) error {
	cfg := ctx.Config

	db, err := openDB(cfg.DBDir())
	if err != nil {
		return err
	}
	registry := prometheus.NewRegistry()
	metrics, err := ledgerapp.NewMetrics(registry)
	if err != nil {
		return err
	}
	app, err := ledgerapp.NewLedgerApp(ctx.Logger, db, cfg.InvCheckPeriod, metrics)
	if err != nil {
		return err
	}
	if app.LastBlockHeight() == 0 {
		if err := initChainFromFile(app, cfg.GenesisFile()); err != nil {
			return err
		}
	} else {
		ctx.Logger.Info("resuming chain", "chain_id", app.ChainID(), "height", app.LastBlockHeight())
	}

	var gatherer prometheus.Gatherer
	if cfg.REST.Metrics {
		gatherer = registry
	}
	cliCtx := context.CLIContext{
		Codec:        cdc,
		Node:         NewLocalNode(app),
		ChainID:      app.ChainID(),
		OutputFormat: "json",
	}
	srv := NewRESTServer(cfg.REST.Listen, NewRESTRouter(cliCtx, gatherer), ctx.Logger)

	var cpuProfileCleanup func()
	if cpuProfile := viper.GetString(flagCPUProfile); cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			return err
		}

		ctx.Logger.Info("starting CPU profiler", "profile", cpuProfile)
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}

		cpuProfileCleanup = func() {
			ctx.Logger.Info("stopping CPU profiler", "profile", cpuProfile)
			pprof.StopCPUProfile()
			f.Close()
		}
	}

	errc := make(chan error, 1)
	srv.Start(errc)

	cmn.TrapSignal(ctx.Logger, func() {
		if err := srv.Stop(); err != nil {
			ctx.Logger.Error("failed to stop REST server", "err", err)
		}
		if cpuProfileCleanup != nil {
			cpuProfileCleanup()
		}
		db.Close()
		ctx.Logger.Info("exited")
	})

	// run until the listener fails or a signal exits the process
	return <-errc
}

// initChainFromFile runs InitChain with the genesis document at path. The
// genesis state becomes durable with the first committed block.
func initChainFromFile(app *ledgerapp.LedgerApp, path string) error {
	genDoc, err := tmtypes.GenesisDocFromFile(path)
	if err != nil {
		return errors.Wrap(err, "failed to read genesis file")
	}

	var initErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				initErr = errors.Errorf("invalid genesis: %v", r)
			}
		}()
		app.InitChain(abci.RequestInitChain{
			Time:          genDoc.GenesisTime,
			ChainId:       genDoc.ChainID,
			AppStateBytes: genDoc.AppState,
		})
	}()
	return initErr
}

func openDB(dir string) (dbm.DB, error) {
	db, err := sdk.NewLevelDB("application", dir)
	return db, errors.Wrap(err, "failed to open application db")
}
