package cli

import (
	"github.com/spf13/cobra"

	"github.com/hbtc-chain/govledger/client"
	"github.com/hbtc-chain/govledger/client/context"
	"github.com/hbtc-chain/govledger/client/utils"
	"github.com/hbtc-chain/govledger/codec"
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/rescue/types"
)

// GetQueryCmd returns the cli query commands for this module
func GetQueryCmd(cdc *codec.Codec) *cobra.Command {
	queryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the rescue module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}
	queryCmd.AddCommand(client.GetCommands(
		GetCmdQueryCustody(cdc),
		GetCmdQueryHoldings(cdc),
	)...)
	return queryCmd
}

func GetCmdQueryCustody(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "custody [asset-id] [holder]",
		Short: "Query a custody record; the holder defaults to the ledger address",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			var holder sdk.AccAddress
			if len(args) > 1 {
				var err error
				if holder, err = utils.AddressOrKey(cliCtx, args[1]); err != nil {
					return err
				}
			}
			bz, err := cdc.MarshalJSON(types.NewQueryCustodyParams(args[0], holder))
			if err != nil {
				return err
			}
			res, _, err := cliCtx.QueryWithData(client.ModuleQueryRoute(types.QuerierRoute, types.QueryCustody), bz)
			if err != nil {
				return err
			}

			var out sdk.Int
			cdc.MustUnmarshalJSON(res, &out)
			return cliCtx.PrintOutput(out)
		},
	}
}

func GetCmdQueryHoldings(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "holdings",
		Short: "List every custody record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			res, _, err := cliCtx.QueryWithData(client.ModuleQueryRoute(types.QuerierRoute, types.QueryHoldings), nil)
			if err != nil {
				return err
			}

			var out []types.Holding
			cdc.MustUnmarshalJSON(res, &out)
			return cliCtx.PrintOutput(out)
		},
	}
}
