package cli

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hbtc-chain/govledger/client"
	"github.com/hbtc-chain/govledger/client/context"
	"github.com/hbtc-chain/govledger/client/keys"
	"github.com/hbtc-chain/govledger/client/utils"
	"github.com/hbtc-chain/govledger/codec"
	"github.com/hbtc-chain/govledger/x/votes/types"
)

const (
	flagSigner = "signer"
	flagTTL    = "ttl"
	flagNonce  = "nonce"
)

// GetTxCmd returns the transaction commands for this module
func GetTxCmd(cdc *codec.Codec) *cobra.Command {
	txCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Delegation subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	txCmd.AddCommand(client.PostCommands(
		GetCmdDelegate(cdc),
		GetCmdDelegateBySig(cdc),
	)...)
	txCmd.AddCommand(client.GetCommands(
		GetCmdSignDelegation(cdc),
	)...)

	return txCmd
}

func GetCmdDelegate(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "delegate [delegatee]",
		Short: "Delegate the voting power of the signer's balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			from, err := utils.FromAddress(cliCtx)
			if err != nil {
				return err
			}
			delegatee, err := utils.AddressOrKey(cliCtx, args[0])
			if err != nil {
				return err
			}
			return utils.GenerateOrBroadcastMsg(cliCtx, types.NewMsgDelegate(from, delegatee))
		},
	}
}

func GetCmdDelegateBySig(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "delegate-by-sig [delegatee] [nonce] [expiry] [signature]",
		Short: "Submit a delegation signed by another account",
		Long: strings.TrimSpace(`
Submit a delegation produced by "sign-delegation". The --from key only signs the
transaction envelope; the delegator is recovered from the hex signature.`),
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			from, err := utils.FromAddress(cliCtx)
			if err != nil {
				return err
			}
			delegatee, err := utils.AddressOrKey(cliCtx, args[0])
			if err != nil {
				return err
			}
			nonce, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid nonce: %v", err)
			}
			expiry, err := strconv.ParseUint(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid expiry: %v", err)
			}
			sig, err := hex.DecodeString(strings.TrimPrefix(args[3], "0x"))
			if err != nil {
				return fmt.Errorf("invalid signature: %v", err)
			}
			return utils.GenerateOrBroadcastMsg(cliCtx, types.NewMsgDelegateBySig(from, delegatee, nonce, expiry, sig))
		},
	}
}

// SignedDelegation is the output of sign-delegation.
type SignedDelegation struct {
	Delegatee string `json:"delegatee" yaml:"delegatee"`
	Nonce     uint64 `json:"nonce" yaml:"nonce"`
	Expiry    uint64 `json:"expiry" yaml:"expiry"`
	Signature string `json:"signature" yaml:"signature"`
}

func GetCmdSignDelegation(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign-delegation [delegatee]",
		Short: "Sign a delegation offline so that another account can submit it",
		Long:  "Example: sign-delegation 0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed --signer alice --ttl 1h",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			signerName := viper.GetString(flagSigner)
			kb := keys.NewKeybase(cliCtx.KeystoreDir)
			info, err := kb.Get(signerName)
			if err != nil {
				return err
			}
			delegatee, err := utils.AddressOrKey(cliCtx, args[0])
			if err != nil {
				return err
			}

			var domain types.Domain
			res, _, err := cliCtx.QueryWithData(client.ModuleQueryRoute(types.QuerierRoute, types.QueryDomain), nil)
			if err != nil {
				return err
			}
			cdc.MustUnmarshalJSON(res, &domain)

			nonce := viper.GetUint64(flagNonce)
			if !viper.IsSet(flagNonce) {
				bz := cdc.MustMarshalJSON(types.NewQueryAccountParams(info.Address))
				res, _, err := cliCtx.QueryWithData(client.ModuleQueryRoute(types.QuerierRoute, types.QueryNonce), bz)
				if err != nil {
					return err
				}
				cdc.MustUnmarshalJSON(res, &nonce)
			}
			expiry := uint64(time.Now().Add(viper.GetDuration(flagTTL)).Unix())

			pass, err := client.GetPassword(fmt.Sprintf("Password to sign with '%s':", signerName), client.BufferStdin())
			if err != nil {
				return err
			}
			sig, err := kb.Sign(signerName, pass, domain.DelegationDigest(delegatee, nonce, expiry))
			if err != nil {
				return err
			}

			return cliCtx.PrintOutput(SignedDelegation{
				Delegatee: delegatee.String(),
				Nonce:     nonce,
				Expiry:    expiry,
				Signature: "0x" + hex.EncodeToString(sig),
			})
		},
	}
	cmd.Flags().String(flagSigner, "", "Name or address of the delegating key")
	cmd.Flags().Duration(flagTTL, time.Hour, "How long the signature stays valid")
	cmd.Flags().Uint64(flagNonce, 0, "Nonce to sign (queried when omitted)")
	viper.BindPFlag(flagSigner, cmd.Flags().Lookup(flagSigner))
	viper.BindPFlag(flagTTL, cmd.Flags().Lookup(flagTTL))
	viper.BindPFlag(flagNonce, cmd.Flags().Lookup(flagNonce))
	cmd.MarkFlagRequired(flagSigner)
	return cmd
}
