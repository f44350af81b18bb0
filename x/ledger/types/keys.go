package types

import (
	sdk "github.com/hbtc-chain/govledger/types"
)

const (
	// ModuleName is the name of the ledger module
	ModuleName = "ledger"

	// StoreKey is the store key string for ledger
	StoreKey = ModuleName

	// RouterKey is the message route for ledger
	RouterKey = ModuleName

	// QuerierRoute is the querier route for ledger
	QuerierRoute = ModuleName

	QueryBalance   = "balance"
	QuerySupply    = "supply"
	QueryAllowance = "allowance"
	QueryParams    = "params"
)

var (
	BalanceKeyPrefix   = []byte{0x01}
	SupplyKey          = []byte{0x02}
	AllowanceKeyPrefix = []byte{0x03}
	ParamsKey          = []byte{0x04}
)

// LedgerAddress is the account of the ledger itself. Value sent there is
// stuck until rescued.
var LedgerAddress = sdk.ModuleAddress(ModuleName)

// BalanceKey : 0x01 | address
func BalanceKey(addr sdk.AccAddress) []byte {
	return append(append([]byte{}, BalanceKeyPrefix...), addr.Key()...)
}

// AllowanceKey : 0x03 | owner | spender
func AllowanceKey(owner, spender sdk.AccAddress) []byte {
	key := append(append([]byte{}, AllowanceKeyPrefix...), owner.Key()...)
	return append(key, spender.Key()...)
}
