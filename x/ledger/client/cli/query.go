package cli

import (
	"github.com/spf13/cobra"

	"github.com/hbtc-chain/govledger/client"
	"github.com/hbtc-chain/govledger/client/context"
	"github.com/hbtc-chain/govledger/client/utils"
	"github.com/hbtc-chain/govledger/codec"
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/ledger/types"
)

// GetQueryCmd returns the cli query commands for this module
func GetQueryCmd(cdc *codec.Codec) *cobra.Command {
	queryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the ledger module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}
	queryCmd.AddCommand(client.GetCommands(
		GetCmdQueryBalance(cdc),
		GetCmdQuerySupply(cdc),
		GetCmdQueryAllowance(cdc),
		GetCmdQueryParams(cdc),
	)...)
	return queryCmd
}

func GetCmdQueryBalance(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "balance [address]",
		Short: "Query the balance of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			addr, err := utils.AddressOrKey(cliCtx, args[0])
			if err != nil {
				return err
			}
			return queryInt(cliCtx, types.QueryBalance, types.NewQueryBalanceParams(addr))
		},
	}
}

func GetCmdQuerySupply(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "supply",
		Short: "Query the total supply",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			return queryInt(cliCtx, types.QuerySupply, nil)
		},
	}
}

func GetCmdQueryAllowance(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "allowance [owner] [spender]",
		Short: "Query how much a spender may still move out of an owner's balance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			owner, err := utils.AddressOrKey(cliCtx, args[0])
			if err != nil {
				return err
			}
			spender, err := utils.AddressOrKey(cliCtx, args[1])
			if err != nil {
				return err
			}
			return queryInt(cliCtx, types.QueryAllowance, types.NewQueryAllowanceParams(owner, spender))
		},
	}
}

func GetCmdQueryParams(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Query the ledger name, symbol and decimals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			res, _, err := cliCtx.QueryWithData(client.ModuleQueryRoute(types.QuerierRoute, types.QueryParams), nil)
			if err != nil {
				return err
			}

			var params types.Params
			cdc.MustUnmarshalJSON(res, &params)
			return cliCtx.PrintOutput(params)
		},
	}
}

func queryInt(cliCtx context.CLIContext, endpoint string, params interface{}) error {
	var bz []byte
	if params != nil {
		var err error
		if bz, err = cliCtx.Codec.MarshalJSON(params); err != nil {
			return err
		}
	}
	res, _, err := cliCtx.QueryWithData(client.ModuleQueryRoute(types.QuerierRoute, endpoint), bz)
	if err != nil {
		return err
	}

	var out sdk.Int
	cliCtx.Codec.MustUnmarshalJSON(res, &out)
	return cliCtx.PrintOutput(out)
}
