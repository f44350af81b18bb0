package keys

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/cli"
	yaml "gopkg.in/yaml.v2"
)

const flagAddressOnly = "address"

func showKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <name or address>",
		Short: "Show key info for the given name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := NewKeybase(KeystoreDir()).Get(args[0])
			if err != nil {
				return err
			}
			if viper.GetBool(flagAddressOnly) {
				fmt.Fprintln(cmd.OutOrStdout(), info.Address.String())
				return nil
			}
			return printKeyOutput(cmd, NewKeyOutput(info))
		},
	}
	cmd.Flags().BoolP(flagAddressOnly, "a", false, "Output the address only")
	return cmd
}

func listKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := NewKeybase(KeystoreDir()).List()
			if err != nil {
				return err
			}
			return printKeyOutput(cmd, NewKeyOutputs(infos))
		},
	}
}

func printKeyOutput(cmd *cobra.Command, out interface{}) error {
	var (
		bz  []byte
		err error
	)
	if viper.GetString(cli.OutputFlag) == "json" {
		bz, err = json.MarshalIndent(out, "", "  ")
	} else {
		bz, err = yaml.Marshal(out)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return nil
}

func trimLine(s string) string {
	return strings.TrimSpace(s)
}
