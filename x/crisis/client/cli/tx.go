package cli

import (
	"github.com/spf13/cobra"

	"github.com/hbtc-chain/govledger/client"
	"github.com/hbtc-chain/govledger/client/context"
	"github.com/hbtc-chain/govledger/client/utils"
	"github.com/hbtc-chain/govledger/codec"
	"github.com/hbtc-chain/govledger/x/crisis/internal/types"
)

// GetCmdInvariantBroken submits a MsgVerifyInvariant
func GetCmdInvariantBroken(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invariant-broken [module-name] [invariant-route]",
		Short: "Check an invariant; a broken one pauses the ledger",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			sender, err := utils.FromAddress(cliCtx)
			if err != nil {
				return err
			}
			msg := types.NewMsgVerifyInvariant(sender, args[0], args[1])
			return utils.GenerateOrBroadcastMsg(cliCtx, msg)
		},
	}
	return cmd
}

// GetTxCmd returns the transaction commands for this module
func GetTxCmd(cdc *codec.Codec) *cobra.Command {
	txCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Crisis transactions subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	txCmd.AddCommand(client.PostCommands(
		GetCmdInvariantBroken(cdc),
	)...)
	return txCmd
}
