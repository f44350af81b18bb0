package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbtc-chain/govledger/client"
	"github.com/hbtc-chain/govledger/client/context"
	"github.com/hbtc-chain/govledger/client/utils"
	"github.com/hbtc-chain/govledger/codec"
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/ledger/types"
)

// GetTxCmd returns the transaction commands for this module
func GetTxCmd(cdc *codec.Codec) *cobra.Command {
	txCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Ledger transactions subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	txCmd.AddCommand(client.PostCommands(
		GetCmdMint(cdc),
		GetCmdBurn(cdc),
		GetCmdTransfer(cdc),
		GetCmdTransferFrom(cdc),
		GetCmdApprove(cdc),
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

func GetCmdMint(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "mint [to] [amount]",
		Short: "Create new value for an account",
		Long:  "Example: mint 0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed 1000000000000000000 --from minter",
		Args:  cobra.ExactArgs(2),
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
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			return utils.GenerateOrBroadcastMsg(cliCtx, types.NewMsgMint(from, to, amount))
		},
	}
}

func GetCmdBurn(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "burn [amount]",
		Short: "Destroy value held by the signer",
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
			return utils.GenerateOrBroadcastMsg(cliCtx, types.NewMsgBurn(from, amount))
		},
	}
}

func GetCmdTransfer(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "transfer [to] [amount]",
		Short: "Send value to another account",
		Args:  cobra.ExactArgs(2),
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
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			return utils.GenerateOrBroadcastMsg(cliCtx, types.NewMsgTransfer(from, to, amount))
		},
	}
}

func GetCmdTransferFrom(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "transfer-from [owner] [to] [amount]",
		Short: "Send value out of an owner's balance using the signer's allowance",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			spender, err := utils.FromAddress(cliCtx)
			if err != nil {
				return err
			}
			owner, err := utils.AddressOrKey(cliCtx, args[0])
			if err != nil {
				return err
			}
			to, err := utils.AddressOrKey(cliCtx, args[1])
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[2])
			if err != nil {
				return err
			}
			return utils.GenerateOrBroadcastMsg(cliCtx, types.NewMsgTransferFrom(spender, owner, to, amount))
		},
	}
}

func GetCmdApprove(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "approve [spender] [amount]",
		Short: "Set the allowance a spender may move out of the signer's balance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			owner, err := utils.FromAddress(cliCtx)
			if err != nil {
				return err
			}
			spender, err := utils.AddressOrKey(cliCtx, args[0])
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			return utils.GenerateOrBroadcastMsg(cliCtx, types.NewMsgApprove(owner, spender, amount))
		},
	}
}
