package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tendermint/tendermint/libs/cli"

	"github.com/hbtc-chain/govledger/client"
	"github.com/hbtc-chain/govledger/client/keys"
	"github.com/hbtc-chain/govledger/client/rpc"
	"github.com/hbtc-chain/govledger/codec"
	"github.com/hbtc-chain/govledger/ledgerapp"
)

func main() {
	cdc := ledgerapp.MakeCodec()

	cobra.EnableCommandSorting = false
	rootCmd := &cobra.Command{
		Use:   "govledgercli",
		Short: "Command line interface for interacting with govledgerd",
	}

	rootCmd.AddCommand(
		rpc.StatusCommand(cdc),
		queryCmd(cdc),
		txCmd(cdc),
		keys.Commands(),
	)

	executor := cli.PrepareMainCmd(rootCmd, "GL", ledgerapp.DefaultCLIHome)
	if err := executor.Execute(); err != nil {
		os.Exit(1)
	}
}

func queryCmd(cdc *codec.Codec) *cobra.Command {
	queryCmd := &cobra.Command{
		Use:                        "query",
		Aliases:                    []string{"q"},
		Short:                      "Querying subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}
	ledgerapp.ModuleBasics.AddQueryCommands(queryCmd, cdc)
	return queryCmd
}

func txCmd(cdc *codec.Codec) *cobra.Command {
	txCmd := &cobra.Command{
		Use:                        "tx",
		Short:                      "Transactions subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}
	ledgerapp.ModuleBasics.AddTxCommands(txCmd, cdc)
	return txCmd
}
