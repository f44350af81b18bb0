package keys

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbtc-chain/govledger/crypto"
)

func mnemonicKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mnemonic",
		Short: "Compute the bip39 mnemonic for some input entropy",
		Long:  "Create a bip39 mnemonic, sometimes called a seed phrase, from fresh system entropy.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mnemonic, err := crypto.NewMnemonic()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), mnemonic)
			return nil
		},
	}
}
