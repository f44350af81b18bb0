package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hbtc-chain/govledger/client"
	"github.com/hbtc-chain/govledger/client/context"
	"github.com/hbtc-chain/govledger/codec"
	"github.com/hbtc-chain/govledger/x/bridge/types"
)

// GetQueryCmd returns the cli query commands for this module
func GetQueryCmd(cdc *codec.Codec) *cobra.Command {
	queryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the bridge module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}
	queryCmd.AddCommand(client.GetCommands(
		GetCmdQueryRegistry(cdc),
		GetCmdQueryIntent(cdc),
		GetCmdQueryIntents(cdc),
	)...)
	return queryCmd
}

func GetCmdQueryRegistry(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "registry",
		Short: "Query the approved bridges and the transfer limit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			res, _, err := cliCtx.QueryWithData(client.ModuleQueryRoute(types.QuerierRoute, types.QueryRegistry), nil)
			if err != nil {
				return err
			}

			var out types.QueryResRegistry
			cdc.MustUnmarshalJSON(res, &out)
			return cliCtx.PrintOutput(out)
		},
	}
}

func GetCmdQueryIntent(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "intent [id]",
		Short: "Query a bridge intent by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			bz, err := cdc.MarshalJSON(types.QueryIntentParams{ID: args[0]})
			if err != nil {
				return err
			}
			res, _, err := cliCtx.QueryWithData(client.ModuleQueryRoute(types.QuerierRoute, types.QueryIntent), bz)
			if err != nil {
				return err
			}

			var out types.Intent
			cdc.MustUnmarshalJSON(res, &out)
			return cliCtx.PrintOutput(out)
		},
	}
}

func GetCmdQueryIntents(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "intents [page] [limit]",
		Short: "List bridge intents in emission order",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			page, limit := 1, 0
			var err error
			if len(args) > 0 {
				if page, err = strconv.Atoi(args[0]); err != nil {
					return err
				}
			}
			if len(args) > 1 {
				if limit, err = strconv.Atoi(args[1]); err != nil {
					return err
				}
			}

			bz, err := cdc.MarshalJSON(types.NewQueryIntentsParams(page, limit))
			if err != nil {
				return err
			}
			res, _, err := cliCtx.QueryWithData(client.ModuleQueryRoute(types.QuerierRoute, types.QueryIntents), bz)
			if err != nil {
				return err
			}

			var out []types.Intent
			cdc.MustUnmarshalJSON(res, &out)
			return cliCtx.PrintOutput(out)
		},
	}
}
