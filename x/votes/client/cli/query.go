package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hbtc-chain/govledger/client"
	"github.com/hbtc-chain/govledger/client/context"
	"github.com/hbtc-chain/govledger/client/utils"
	"github.com/hbtc-chain/govledger/codec"
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/votes/types"
)

// GetQueryCmd returns the cli query commands for this module
func GetQueryCmd(cdc *codec.Codec) *cobra.Command {
	queryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for voting power",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}
	queryCmd.AddCommand(client.GetCommands(
		GetCmdQueryPriorVotes(cdc),
		GetCmdQueryAccount(cdc, "current-votes", "Query the latest voting power of an account", types.QueryCurrentVotes, func() interface{} { return new(sdk.Int) }),
		GetCmdQueryAccount(cdc, "checkpoints", "Query the voting power history of an account", types.QueryCheckpoints, func() interface{} { return new(types.Checkpoints) }),
		GetCmdQueryAccount(cdc, "delegate", "Query who an account delegates to", types.QueryDelegate, func() interface{} { return new(sdk.AccAddress) }),
		GetCmdQueryAccount(cdc, "nonce", "Query the next signed delegation nonce of an account", types.QueryNonce, func() interface{} { return new(uint64) }),
		GetCmdQueryDomain(cdc),
	)...)
	return queryCmd
}

func GetCmdQueryPriorVotes(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "prior-votes [address] [block]",
		Short: "Query the voting power an account held at a past block",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			account, err := utils.AddressOrKey(cliCtx, args[0])
			if err != nil {
				return err
			}
			block, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return err
			}

			bz, err := cdc.MarshalJSON(types.NewQueryPriorVotesParams(account, block))
			if err != nil {
				return err
			}
			res, _, err := cliCtx.QueryWithData(client.ModuleQueryRoute(types.QuerierRoute, types.QueryPriorVotes), bz)
			if err != nil {
				return err
			}

			var out sdk.Int
			cdc.MustUnmarshalJSON(res, &out)
			return cliCtx.PrintOutput(out)
		},
	}
}

// GetCmdQueryAccount builds a query command taking a single account argument.
func GetCmdQueryAccount(cdc *codec.Codec, use, short, endpoint string, out func() interface{}) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [address]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			account, err := utils.AddressOrKey(cliCtx, args[0])
			if err != nil {
				return err
			}

			bz, err := cdc.MarshalJSON(types.NewQueryAccountParams(account))
			if err != nil {
				return err
			}
			res, _, err := cliCtx.QueryWithData(client.ModuleQueryRoute(types.QuerierRoute, endpoint), bz)
			if err != nil {
				return err
			}

			v := out()
			cdc.MustUnmarshalJSON(res, v)
			return cliCtx.PrintOutput(v)
		},
	}
}

func GetCmdQueryDomain(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "domain",
		Short: "Query the signing domain of delegation authorizations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			res, _, err := cliCtx.QueryWithData(client.ModuleQueryRoute(types.QuerierRoute, types.QueryDomain), nil)
			if err != nil {
				return err
			}

			var domain types.Domain
			cdc.MustUnmarshalJSON(res, &domain)
			return cliCtx.PrintOutput(domain)
		},
	}
}
