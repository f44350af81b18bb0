package keys

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hbtc-chain/govledger/client"
	"github.com/hbtc-chain/govledger/crypto"
)

const (
	flagRecover  = "recover"
	flagNoBackup = "no-backup"
)

func addKeyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an encrypted private key (either newly generated or recovered), encrypt it, and save to disk",
		Long: `Derive a new private key and encrypt to disk.
Optionally specify a BIP39 mnemonic and a BIP39 passphrase to further secure the mnemonic.

Use the --recover flag to recover a key from a seed passphrase.
The key is written in the standard encrypted keystore format.`,
		Args: cobra.ExactArgs(1),
		RunE: runAddCmd,
	}
	cmd.Flags().Bool(flagRecover, false, "Provide seed phrase to recover existing key instead of creating")
	cmd.Flags().Bool(flagNoBackup, false, "Don't print out seed phrase (if others are watching the terminal)")
	return cmd
}

func runAddCmd(cmd *cobra.Command, args []string) error {
	name := args[0]
	buf := client.BufferStdin()
	kb := NewKeybase(KeystoreDir())

	if _, err := kb.Get(name); err == nil {
		return fmt.Errorf("key %q already exists", name)
	}

	var (
		mnemonic string
		err      error
	)
	if viper.GetBool(flagRecover) {
		mnemonic, err = readLine("Enter your bip39 mnemonic", buf)
	} else {
		mnemonic, err = crypto.NewMnemonic()
	}
	if err != nil {
		return err
	}

	key, err := crypto.KeyFromMnemonic(mnemonic, "")
	if err != nil {
		return err
	}

	pass, err := client.GetCheckPassword(
		"Enter a passphrase to encrypt your key to disk:",
		"Repeat the passphrase:", buf)
	if err != nil {
		return err
	}

	info, err := kb.Import(name, pass, key)
	if err != nil {
		return err
	}

	out := NewKeyOutput(info)
	if !viper.GetBool(flagRecover) && !viper.GetBool(flagNoBackup) {
		out.Mnemonic = mnemonic
		fmt.Fprintln(cmd.ErrOrStderr(), "**Important** write this mnemonic phrase in a safe place.")
		fmt.Fprintln(cmd.ErrOrStderr(), "It is the only way to recover your account if you ever forget your password.")
	}
	return printKeyOutput(cmd, out)
}

func readLine(prompt string, buf *bufio.Reader) (string, error) {
	fmt.Printf("%s:\n", prompt)
	line, err := buf.ReadString('\n')
	if err != nil {
		return "", err
	}
	return trimLine(line), nil
}
