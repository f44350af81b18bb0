package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hbtc-chain/govledger/client"
	"github.com/hbtc-chain/govledger/client/context"
	"github.com/hbtc-chain/govledger/codec"
	"github.com/hbtc-chain/govledger/x/receipt/types"
)

// GetQueryCmd returns the cli query commands for this module
func GetQueryCmd(cdc *codec.Codec) *cobra.Command {
	queryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the audit log",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}
	queryCmd.AddCommand(client.GetCommands(
		GetCmdQueryReceipts(cdc),
	)...)
	return queryCmd
}

func GetCmdQueryReceipts(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "events [height]",
		Short: "Query the receipts recorded at a height, or at the latest one",
		Args:  cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)

			route := client.ModuleQueryRoute(types.QuerierRoute, types.QueryLatest)
			var bz []byte
			if len(args) == 1 {
				height, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return err
				}
				if bz, err = cdc.MarshalJSON(types.NewQueryReceiptsParams(height)); err != nil {
					return err
				}
				route = client.ModuleQueryRoute(types.QuerierRoute, types.QueryReceipts)
			}

			res, _, err := cliCtx.QueryWithData(route, bz)
			if err != nil {
				return err
			}
			var out []types.Receipt
			cdc.MustUnmarshalJSON(res, &out)
			return cliCtx.PrintOutput(out)
		},
	}
}
