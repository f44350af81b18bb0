package genesis

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	tmtypes "github.com/tendermint/tendermint/types"

	"github.com/hbtc-chain/govledger/codec"
	"github.com/hbtc-chain/govledger/ledgerapp"
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/access"
	"github.com/hbtc-chain/govledger/x/ledger"
)

// NewGenesisDoc returns a genesis document for chainID carrying the default
// state of every module.
func NewGenesisDoc(cdc *codec.Codec, chainID string, genesisTime time.Time) (*tmtypes.GenesisDoc, error) {
	appState, err := codec.MarshalJSONIndent(cdc, ledgerapp.NewDefaultGenesisState())
	if err != nil {
		return nil, err
	}
	return &tmtypes.GenesisDoc{
		GenesisTime: genesisTime.UTC(),
		ChainID:     chainID,
		AppState:    appState,
	}, nil
}

// GenesisStateFromGenDoc decodes the app state of genDoc.
func GenesisStateFromGenDoc(cdc *codec.Codec, genDoc tmtypes.GenesisDoc) (ledgerapp.GenesisState, error) {
	var appState ledgerapp.GenesisState
	if err := cdc.UnmarshalJSON(genDoc.AppState, &appState); err != nil {
		return nil, errors.Wrap(err, "failed to decode app state")
	}
	return appState, nil
}

// GenesisStateFromGenFile reads the genesis file at genFile and decodes its
// app state.
func GenesisStateFromGenFile(cdc *codec.Codec, genFile string) (ledgerapp.GenesisState, *tmtypes.GenesisDoc, error) {
	if _, err := os.Stat(genFile); os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("%s does not exist, run `init` first", genFile)
	}
	genDoc, err := tmtypes.GenesisDocFromFile(genFile)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read genesis file")
	}
	appState, err := GenesisStateFromGenDoc(cdc, *genDoc)
	return appState, genDoc, err
}

// ExportGenesisFile completes genDoc and writes it to genFile.
func ExportGenesisFile(genDoc *tmtypes.GenesisDoc, genFile string) error {
	if err := genDoc.ValidateAndComplete(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(genFile), 0700); err != nil {
		return err
	}
	return genDoc.SaveAs(genFile)
}

// ValidateGenesisDoc checks the document and the genesis of every module.
func ValidateGenesisDoc(cdc *codec.Codec, genDoc tmtypes.GenesisDoc) error {
	if err := genDoc.ValidateAndComplete(); err != nil {
		return err
	}
	appState, err := GenesisStateFromGenDoc(cdc, genDoc)
	if err != nil {
		return err
	}
	return ledgerapp.ModuleBasics.ValidateGenesis(appState)
}

// AddRoleMember grants role to addr in the access genesis of appState.
func AddRoleMember(cdc *codec.Codec, appState ledgerapp.GenesisState, role access.Role, addr sdk.AccAddress) error {
	var accessState access.GenesisState
	if err := cdc.UnmarshalJSON(appState[access.ModuleName], &accessState); err != nil {
		return errors.Wrap(err, "failed to decode access genesis")
	}
	for _, m := range accessState.Members {
		if m.Role == role && m.Account.Equals(addr) {
			return fmt.Errorf("%s already holds role %s", addr, role)
		}
	}
	accessState.Members = append(accessState.Members, access.RoleMember{Role: role, Account: addr})
	if err := access.ValidateGenesis(accessState); err != nil {
		return err
	}
	return setModuleState(cdc, appState, access.ModuleName, accessState)
}

// AddBalance credits amount to addr in the ledger genesis of appState.
func AddBalance(cdc *codec.Codec, appState ledgerapp.GenesisState, addr sdk.AccAddress, amount sdk.Int) error {
	if !amount.IsPositive() {
		return fmt.Errorf("genesis balance must be positive, got %s", amount)
	}
	var ledgerState ledger.GenesisState
	if err := cdc.UnmarshalJSON(appState[ledger.ModuleName], &ledgerState); err != nil {
		return errors.Wrap(err, "failed to decode ledger genesis")
	}
	for _, b := range ledgerState.Balances {
		if b.Address.Equals(addr) {
			return fmt.Errorf("cannot add balance at existing address %s", addr)
		}
	}
	ledgerState.Balances = append(ledgerState.Balances, ledger.Balance{Address: addr, Amount: amount})
	if err := ledger.ValidateGenesis(ledgerState); err != nil {
		return err
	}
	return setModuleState(cdc, appState, ledger.ModuleName, ledgerState)
}

func setModuleState(cdc *codec.Codec, appState ledgerapp.GenesisState, module string, state interface{}) error {
	bz, err := cdc.MarshalJSON(state)
	if err != nil {
		return err
	}
	appState[module] = json.RawMessage(bz)
	return nil
}
