package keys

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hbtc-chain/govledger/client"
)

const flagYes = "yes"

func deleteKeyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete the given key",
		Long: `Delete a key from the store.

Note that removing a key does not remove the account it controls; the
balance stays reachable through its mnemonic.`,
		Args: cobra.ExactArgs(1),
		RunE: runDeleteCmd,
	}
	cmd.Flags().BoolP(flagYes, "y", false, "Skip confirmation prompt")
	return cmd
}

func runDeleteCmd(cmd *cobra.Command, args []string) error {
	name := args[0]
	kb := NewKeybase(KeystoreDir())
	if _, err := kb.Get(name); err != nil {
		return err
	}

	buf := client.BufferStdin()
	if !viper.GetBool(flagYes) {
		ok, err := client.GetConfirmation("Key reference will be deleted. Continue?", buf)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("aborted")
		}
	}

	pass, err := client.GetPassword("Enter the passphrase of the key:", buf)
	if err != nil {
		return err
	}
	if err := kb.Delete(name, pass); err != nil {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Key deleted forever (uh oh!)")
	return nil
}
