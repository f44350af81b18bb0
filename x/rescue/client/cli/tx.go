package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbtc-chain/govledger/client"
	"github.com/hbtc-chain/govledger/client/context"
	"github.com/hbtc-chain/govledger/client/utils"
	"github.com/hbtc-chain/govledger/codec"
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/rescue/types"
)

// GetTxCmd returns the transaction commands for this module
func GetTxCmd(cdc *codec.Codec) *cobra.Command {
	txCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Rescue transactions subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	txCmd.AddCommand(client.PostCommands(
		GetCmdRescueNative(cdc),
		GetCmdRescueAsset(cdc),
	)...)

	return txCmd
}

func GetCmdRescueNative(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "native [to]",
		Short: "Release all native assets held by the ledger address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			from, err := utils.FromAddress(cliCtx)
			if err != nil {
				return err
			}
			to, err := utils.AddressOrKey(cliCtx, args[0])
			if err != nil {
				return err
			}
			return utils.GenerateOrBroadcastMsg(cliCtx, types.NewMsgRescueNative(from, to))
		},
	}
}

func GetCmdRescueAsset(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "asset [asset-id] [to] [amount]",
		Short: "Release an asset held by the ledger address",
		Long:  "Using the ledger symbol as asset-id moves the ledger's own balance.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			from, err := utils.FromAddress(cliCtx)
			if err != nil {
				return err
			}
			to, err := utils.AddressOrKey(cliCtx, args[1])
			if err != nil {
				return err
			}
			amount, ok := sdk.NewIntFromString(args[2])
			if !ok || amount.IsNegative() {
				return fmt.Errorf("invalid amount %q", args[2])
			}
			return utils.GenerateOrBroadcastMsg(cliCtx, types.NewMsgRescueForeignAsset(from, args[0], to, amount))
		},
	}
}
