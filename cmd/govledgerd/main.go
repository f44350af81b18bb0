package main

import (
	"github.com/spf13/cobra"
	"github.com/tendermint/tendermint/libs/cli"

	"github.com/hbtc-chain/govledger/client/flags"
	"github.com/hbtc-chain/govledger/genesis"
	"github.com/hbtc-chain/govledger/ledgerapp"
	"github.com/hbtc-chain/govledger/server"
)

func main() {
	cdc := ledgerapp.MakeCodec()

	ctx := server.NewDefaultContext()
	cobra.EnableCommandSorting = false
	rootCmd := &cobra.Command{
		Use:               "govledgerd",
		Short:             "govledger Daemon (server)",
		PersistentPreRunE: server.PersistentPreRunEFn(ctx),
	}

	rootCmd.AddCommand(genesis.InitCmd(ctx, cdc, ledgerapp.DefaultNodeHome))
	rootCmd.AddCommand(genesis.AddGenesisRoleCmd(ctx, cdc, ledgerapp.DefaultNodeHome, ledgerapp.DefaultCLIHome))
	rootCmd.AddCommand(genesis.AddGenesisBalanceCmd(ctx, cdc, ledgerapp.DefaultNodeHome, ledgerapp.DefaultCLIHome))
	rootCmd.AddCommand(genesis.ValidateGenesisCmd(ctx, cdc))

	server.AddCommands(ctx, cdc, rootCmd)

	// prepare and add flags
	executor := cli.PrepareBaseCmd(rootCmd, "GL", ledgerapp.DefaultNodeHome)
	rootCmd.PersistentFlags().Uint(server.FlagInvCheckPeriod,
		0, "Assert registered invariants every N blocks")
	flags.BindFlags(rootCmd.PersistentFlags(), server.FlagInvCheckPeriod)
	err := executor.Execute()
	if err != nil {
		panic(err)
	}
}
