package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbtc-chain/govledger/client"
	"github.com/hbtc-chain/govledger/client/context"
	"github.com/hbtc-chain/govledger/client/utils"
	"github.com/hbtc-chain/govledger/codec"
	"github.com/hbtc-chain/govledger/x/access/types"
)

// GetQueryCmd returns the cli query commands for this module
func GetQueryCmd(cdc *codec.Codec) *cobra.Command {
	queryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for roles and the pause switch",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}
	queryCmd.AddCommand(client.GetCommands(
		GetCmdQueryRole(cdc),
		GetCmdQueryHasRole(cdc),
		GetCmdQueryPaused(cdc),
	)...)
	return queryCmd
}

func GetCmdQueryRole(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "role [role]",
		Short: "Query the admin role and members of a role",
		Long:  fmt.Sprintf("Example: role minter\nRoles: %s", roleNames()),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			role, err := types.RoleFromString(args[0])
			if err != nil {
				return err
			}

			bz, err := cdc.MarshalJSON(types.QueryRoleParams{Role: role})
			if err != nil {
				return err
			}
			res, _, err := cliCtx.QueryWithData(client.ModuleQueryRoute(types.QuerierRoute, types.QueryRole), bz)
			if err != nil {
				return err
			}

			var out types.QueryResRole
			cdc.MustUnmarshalJSON(res, &out)
			return cliCtx.PrintOutput(out)
		},
	}
}

func GetCmdQueryHasRole(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "has-role [role] [address]",
		Short: "Check whether an account holds a role",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			role, err := types.RoleFromString(args[0])
			if err != nil {
				return err
			}
			account, err := utils.AddressOrKey(cliCtx, args[1])
			if err != nil {
				return err
			}

			bz, err := cdc.MarshalJSON(types.QueryHasRoleParams{Role: role, Account: account})
			if err != nil {
				return err
			}
			res, _, err := cliCtx.QueryWithData(client.ModuleQueryRoute(types.QuerierRoute, types.QueryHasRole), bz)
			if err != nil {
				return err
			}

			var out bool
			cdc.MustUnmarshalJSON(res, &out)
			return cliCtx.PrintOutput(out)
		},
	}
}

func GetCmdQueryPaused(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "paused",
		Short: "Query whether the ledger is paused",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			res, _, err := cliCtx.QueryWithData(client.ModuleQueryRoute(types.QuerierRoute, types.QueryPaused), nil)
			if err != nil {
				return err
			}

			var out bool
			cdc.MustUnmarshalJSON(res, &out)
			return cliCtx.PrintOutput(out)
		},
	}
}

func roleNames() string {
	var s string
	for i, r := range types.AllRoles {
		if i > 0 {
			s += ", "
		}
		s += r.String()
	}
	return s
}
