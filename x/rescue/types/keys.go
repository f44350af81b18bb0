package types

import (
	sdk "github.com/hbtc-chain/govledger/types"
)

const (
	// ModuleName is the name of the rescue module
	ModuleName = "rescue"

	// StoreKey is the store key string for rescue
	StoreKey = ModuleName

	// RouterKey is the message route for rescue
	RouterKey = ModuleName

	// QuerierRoute is the querier route for rescue
	QuerierRoute = ModuleName

	QueryCustody  = "custody"
	QueryHoldings = "holdings"

	// NativeAsset names the chain's native asset in custody records.
	NativeAsset = "native"

	MaxAssetIDLength = 64
)

var (
	CustodyKeyPrefix = []byte{0x01}
)

// CustodyAssetPrefix : 0x01 | len(asset) | asset
func CustodyAssetPrefix(asset string) []byte {
	key := append(append([]byte{}, CustodyKeyPrefix...), byte(len(asset)))
	return append(key, []byte(asset)...)
}

// CustodyKey : 0x01 | len(asset) | asset | holder
func CustodyKey(asset string, holder sdk.AccAddress) []byte {
	return append(CustodyAssetPrefix(asset), holder.Key()...)
}

// SplitCustodyKey reverses CustodyKey.
func SplitCustodyKey(key []byte) (string, sdk.AccAddress) {
	n := int(key[len(CustodyKeyPrefix)])
	start := len(CustodyKeyPrefix) + 1
	return string(key[start : start+n]), sdk.AccAddress(append([]byte{}, key[start+n:]...))
}
