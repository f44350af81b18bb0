package receipt

import (
	"github.com/hbtc-chain/govledger/x/receipt/types"
)

const (
	ModuleName   = types.ModuleName
	StoreKey     = types.StoreKey
	QuerierRoute = types.QuerierRoute
)

type (
	Receipt      = types.Receipt
	GenesisState = types.GenesisState
)

var (
	ModuleCdc           = types.ModuleCdc
	RegisterCodec       = types.RegisterCodec
	DefaultGenesisState = types.DefaultGenesisState
	NewGenesisState     = types.NewGenesisState
	ValidateGenesis     = types.ValidateGenesis
)
