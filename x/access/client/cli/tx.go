package cli

import (
	"github.com/spf13/cobra"

	"github.com/hbtc-chain/govledger/client"
	"github.com/hbtc-chain/govledger/client/context"
	"github.com/hbtc-chain/govledger/client/utils"
	"github.com/hbtc-chain/govledger/codec"
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/access/types"
)

// GetTxCmd returns the transaction commands for this module
func GetTxCmd(cdc *codec.Codec) *cobra.Command {
	txCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Role and pause subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	txCmd.AddCommand(client.PostCommands(
		GetCmdGrantRole(cdc),
		GetCmdRevokeRole(cdc),
		GetCmdRenounceRole(cdc),
		GetCmdPause(cdc),
		GetCmdUnpause(cdc),
	)...)

	return txCmd
}

func roleAndAccount(cliCtx context.CLIContext, args []string) (types.Role, sdk.AccAddress, error) {
	role, err := types.RoleFromString(args[0])
	if err != nil {
		return 0, nil, err
	}
	account, err := utils.AddressOrKey(cliCtx, args[1])
	return role, account, err
}

func GetCmdGrantRole(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "grant [role] [account]",
		Short: "Grant a role to an account",
		Long:  "Example: grant minter 0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed --from admin",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			from, err := utils.FromAddress(cliCtx)
			if err != nil {
				return err
			}
			role, account, err := roleAndAccount(cliCtx, args)
			if err != nil {
				return err
			}
			return utils.GenerateOrBroadcastMsg(cliCtx, types.NewMsgGrantRole(from, role, account))
		},
	}
}

func GetCmdRevokeRole(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "revoke [role] [account]",
		Short: "Revoke a role from an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			from, err := utils.FromAddress(cliCtx)
			if err != nil {
				return err
			}
			role, account, err := roleAndAccount(cliCtx, args)
			if err != nil {
				return err
			}
			return utils.GenerateOrBroadcastMsg(cliCtx, types.NewMsgRevokeRole(from, role, account))
		},
	}
}

func GetCmdRenounceRole(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "renounce [role]",
		Short: "Give up a role held by the signer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			from, err := utils.FromAddress(cliCtx)
			if err != nil {
				return err
			}
			role, err := types.RoleFromString(args[0])
			if err != nil {
				return err
			}
			return utils.GenerateOrBroadcastMsg(cliCtx, types.NewMsgRenounceRole(from, role))
		},
	}
}

func GetCmdPause(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Halt transfers, mints, burns and bridge operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			from, err := utils.FromAddress(cliCtx)
			if err != nil {
				return err
			}
			return utils.GenerateOrBroadcastMsg(cliCtx, types.NewMsgPause(from))
		},
	}
}

func GetCmdUnpause(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "unpause",
		Short: "Resume a paused ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			from, err := utils.FromAddress(cliCtx)
			if err != nil {
				return err
			}
			return utils.GenerateOrBroadcastMsg(cliCtx, types.NewMsgUnpause(from))
		},
	}
}
