package genesis

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/cli"
	cmn "github.com/tendermint/tendermint/libs/common"

	"github.com/hbtc-chain/govledger/client/keys"
	"github.com/hbtc-chain/govledger/codec"
	"github.com/hbtc-chain/govledger/ledgerapp"
	"github.com/hbtc-chain/govledger/server"
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/access"
)

const (
	flagClientHome = "home-client"
	flagChainID    = "chain-id"
	flagOverwrite  = "overwrite"
)

// InitCmd writes the default config and a genesis file holding the default
// state of every module.
func InitCmd(ctx *server.Context, cdc *codec.Codec, defaultNodeHome string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the node's configuration and genesis file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config := ctx.Config
			config.SetRoot(viper.GetString(cli.HomeFlag))

			chainID, _ := cmd.Flags().GetString(flagChainID)
			if chainID == "" {
				chainID = fmt.Sprintf("govledger-%v", cmn.RandStr(6))
			}

			genFile := config.GenesisFile()
			if overwrite, _ := cmd.Flags().GetBool(flagOverwrite); !overwrite {
				if _, err := os.Stat(genFile); err == nil {
					return fmt.Errorf("genesis.json file already exists: %v", genFile)
				}
			}

			genDoc, err := NewGenesisDoc(cdc, chainID, time.Now())
			if err != nil {
				return err
			}
			if err := ExportGenesisFile(genDoc, genFile); err != nil {
				return err
			}
			if err := server.WriteConfigFile(config.ConfigFile(), config); err != nil {
				return err
			}

			ctx.Logger.Info("initialized node", "chain_id", chainID, "genesis", genFile)
			return nil
		},
	}

	cmd.Flags().String(cli.HomeFlag, defaultNodeHome, "node's home directory")
	cmd.Flags().String(flagChainID, "", "genesis file chain-id, if left blank will be randomly created")
	cmd.Flags().BoolP(flagOverwrite, "o", false, "overwrite the genesis.json file")
	return cmd
}

// AddGenesisRoleCmd grants a role in genesis.json.
func AddGenesisRoleCmd(ctx *server.Context, cdc *codec.Codec, defaultNodeHome, defaultClientHome string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-genesis-role [role] [address_or_key_name]",
		Short: "Grant a role to an account in genesis.json",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			config := ctx.Config
			config.SetRoot(viper.GetString(cli.HomeFlag))

			role, err := access.RoleFromString(args[0])
			if err != nil {
				return err
			}
			addr, err := resolveAddress(args[1])
			if err != nil {
				return err
			}
			return editGenesisFile(cdc, config.GenesisFile(), func(appState ledgerapp.GenesisState) error {
				return AddRoleMember(cdc, appState, role, addr)
			})
		},
	}

	cmd.Flags().String(cli.HomeFlag, defaultNodeHome, "node's home directory")
	cmd.Flags().String(flagClientHome, defaultClientHome, "client's home directory")
	return cmd
}

// AddGenesisBalanceCmd credits an initial balance in genesis.json.
func AddGenesisBalanceCmd(ctx *server.Context, cdc *codec.Codec, defaultNodeHome, defaultClientHome string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-genesis-balance [address_or_key_name] [amount]",
		Short: "Add a genesis balance to genesis.json",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			config := ctx.Config
			config.SetRoot(viper.GetString(cli.HomeFlag))

			addr, err := resolveAddress(args[0])
			if err != nil {
				return err
			}
			amount, ok := sdk.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount %q", args[1])
			}
			return editGenesisFile(cdc, config.GenesisFile(), func(appState ledgerapp.GenesisState) error {
				return AddBalance(cdc, appState, addr, amount)
			})
		},
	}

	cmd.Flags().String(cli.HomeFlag, defaultNodeHome, "node's home directory")
	cmd.Flags().String(flagClientHome, defaultClientHome, "client's home directory")
	return cmd
}

// ValidateGenesisCmd checks a genesis file, by default the one of the node.
func ValidateGenesisCmd(ctx *server.Context, cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "validate-genesis [file]",
		Args:  cobra.RangeArgs(0, 1),
		Short: "validates the genesis file at the default location or at the location passed as an arg",
		RunE: func(_ *cobra.Command, args []string) error {
			genFile := ctx.Config.GenesisFile()
			if len(args) == 1 {
				genFile = args[0]
			}

			_, genDoc, err := GenesisStateFromGenFile(cdc, genFile)
			if err != nil {
				return err
			}
			if err := ValidateGenesisDoc(cdc, *genDoc); err != nil {
				return fmt.Errorf("error validating genesis file %s: %s", genFile, err.Error())
			}

			fmt.Printf("File at %s is a valid genesis file\n", genFile)
			return nil
		},
	}
}

func editGenesisFile(cdc *codec.Codec, genFile string, edit func(ledgerapp.GenesisState) error) error {
	appState, genDoc, err := GenesisStateFromGenFile(cdc, genFile)
	if err != nil {
		return err
	}
	if err := edit(appState); err != nil {
		return err
	}

	appStateJSON, err := codec.MarshalJSONIndent(cdc, appState)
	if err != nil {
		return err
	}
	genDoc.AppState = appStateJSON
	return ExportGenesisFile(genDoc, genFile)
}

// resolveAddress parses a hex address or looks the name up in the keystore
// of --home-client.
func resolveAddress(s string) (sdk.AccAddress, error) {
	if addr, err := sdk.AccAddressFromHex(s); err == nil && !addr.Empty() {
		return addr, nil
	}
	kb := keys.NewKeybase(filepath.Join(viper.GetString(flagClientHome), "keys"))
	info, err := kb.Get(s)
	if err != nil {
		return nil, err
	}
	return info.Address, nil
}
