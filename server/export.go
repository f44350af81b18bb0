package server

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/otiai10/copy"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	tmtypes "github.com/tendermint/tendermint/types"

	"github.com/hbtc-chain/govledger/codec"
	"github.com/hbtc-chain/govledger/ledgerapp"
)

// ExportCmd dumps the state of a stopped node as a genesis document.
func ExportCmd(ctx *Context, cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export state to JSON",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := ctx.Config
			if _, err := os.Stat(cfg.DBDir()); os.IsNotExist(err) {
				return fmt.Errorf("no application data in %s", cfg.DBDir())
			}

			db, err := openDB(cfg.DBDir())
			if err != nil {
				return err
			}
			defer db.Close()

			app, err := ledgerapp.NewLedgerApp(ctx.Logger, db, 0, nil)
			if err != nil {
				return err
			}
			if app.LastBlockHeight() == 0 {
				return errors.New("nothing to export, no block was committed")
			}
			appState, err := app.ExportAppState()
			if err != nil {
				return errors.Wrap(err, "failed to export state")
			}

			doc, err := tmtypes.GenesisDocFromFile(cfg.GenesisFile())
			if err != nil {
				return err
			}
			doc.AppState = appState
			doc.GenesisTime = app.LastBlockTime()

			encoded, err := codec.MarshalJSONIndent(cdc, doc)
			if err != nil {
				return err
			}
			fmt.Println(string(encoded))
			return nil
		},
	}
}

// SnapshotCmd copies the application data of a stopped node.
func SnapshotCmd(ctx *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot [target-dir]",
		Short: "Copy the application data of a stopped node into target-dir",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			src := ctx.Config.DBDir()
			if _, err := os.Stat(src); err != nil {
				return errors.Wrap(err, "no application data")
			}
			dst, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			if _, err := os.Stat(dst); err == nil {
				return fmt.Errorf("%s already exists", dst)
			}
			if err := copy.Copy(src, dst); err != nil {
				return errors.Wrap(err, "failed to copy application data")
			}
			ctx.Logger.Info("snapshot written", "from", src, "to", dst)
			return nil
		},
	}
}

// AddCommands adds the node commands to rootCmd.
func AddCommands(ctx *Context, cdc *codec.Codec, rootCmd *cobra.Command) {
	rootCmd.AddCommand(
		StartCmd(ctx, cdc),
		ExportCmd(ctx, cdc),
		SnapshotCmd(ctx),
	)
}
