package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hbtc-chain/govledger/client"
	"github.com/hbtc-chain/govledger/client/context"
	"github.com/hbtc-chain/govledger/client/utils"
	"github.com/hbtc-chain/govledger/codec"
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/bridge/types"
)

// GetTxCmd returns the transaction commands for this module
func GetTxCmd(cdc *codec.Codec) *cobra.Command {
	txCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Bridge transactions subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	txCmd.AddCommand(client.PostCommands(
		GetCmdSetApprovedBridge(cdc),
		GetCmdSetMaxAmount(cdc),
		GetCmdBridgeTransfer(cdc),
		GetCmdBridgeTransferFrom(cdc),
	)...)

	return txCmd
}

func parseAmount(s string) (sdk.Int, error) {
	amount, ok := sdk.NewIntFromString(s)
	if !ok || amount.IsNegative() {
		return sdk.Int{}, fmt.Errorf("invalid amount %q", s)
	}
	return amount, nil
}

func GetCmdSetApprovedBridge(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "set-approved [bridge] [true|false]",
		Short: "Approve or revoke a bridge destination",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			from, err := utils.FromAddress(cliCtx)
			if err != nil {
				return err
			}
			bridge, err := utils.AddressOrKey(cliCtx, args[0])
			if err != nil {
				return err
			}
			approved, err := strconv.ParseBool(args[1])
			if err != nil {
				return err
			}
			return utils.GenerateOrBroadcastMsg(cliCtx, types.NewMsgSetApprovedBridge(from, bridge, approved))
		},
	}
}

func GetCmdSetMaxAmount(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "set-max-amount [amount]",
		Short: "Set the largest amount one bridge transfer may move",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			from, err := utils.FromAddress(cliCtx)
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			return utils.GenerateOrBroadcastMsg(cliCtx, types.NewMsgSetMaxBridgeAmount(from, amount))
		},
	}
}

func GetCmdBridgeTransfer(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "transfer [bridge] [amount] [external-address]",
		Short: "Send value to an approved bridge for credit on the other side",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			from, err := utils.FromAddress(cliCtx)
			if err != nil {
				return err
			}
			bridge, err := utils.AddressOrKey(cliCtx, args[0])
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			return utils.GenerateOrBroadcastMsg(cliCtx, types.NewMsgBridgeTransfer(from, bridge, amount, args[2]))
		},
	}
}

func GetCmdBridgeTransferFrom(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "transfer-from [source] [bridge] [amount] [external-address]",
		Short: "Bridge value out of an account that approved the signer",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			from, err := utils.FromAddress(cliCtx)
			if err != nil {
				return err
			}
			source, err := utils.AddressOrKey(cliCtx, args[0])
			if err != nil {
				return err
			}
			bridge, err := utils.AddressOrKey(cliCtx, args[1])
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[2])
			if err != nil {
				return err
			}
			msg := types.NewMsgBridgeTransferFrom(from, source, bridge, amount, args[3])
			return utils.GenerateOrBroadcastMsg(cliCtx, msg)
		},
	}
}
