package keys

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hbtc-chain/govledger/client/flags"
)

// Commands registers a sub-tree of commands to interact with
// local private key storage.
func Commands() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Add or view local private keys",
		Long: `Keys allows you to manage your local keystore.

    Keys are secp256k1 keys encrypted with a passphrase in the standard
    keystore file format. Any of them can sign ledger transactions and
    vote delegations.`,
	}
	cmd.AddCommand(
		mnemonicKeyCommand(),
		addKeyCommand(),
		listKeysCmd(),
		showKeysCmd(),
		deleteKeyCommand(),
	)
	cmd.PersistentFlags().String(flags.FlagKeystore, "", "Directory holding the encrypted key files (defaults to <home>/keys)")
	viper.BindPFlag(flags.FlagKeystore, cmd.PersistentFlags().Lookup(flags.FlagKeystore))
	return cmd
}

// KeystoreDir resolves the keystore directory from flags.
func KeystoreDir() string {
	if dir := viper.GetString(flags.FlagKeystore); dir != "" {
		return dir
	}
	return filepath.Join(viper.GetString(flags.FlagHome), "keys")
}
