package types

import (
	sdk "github.com/hbtc-chain/govledger/types"
)

const (
	// module name
	ModuleName = "receipt"

	// StoreKey is the string store representation
	StoreKey = ModuleName

	QuerierRoute = ModuleName

	QueryReceipts = "events"
	QueryLatest   = "latest"
)

var (
	// receipt key : ReceiptKeyPrefix + height + index
	ReceiptKeyPrefix = []byte{0x01}

	// count key : HeightCountKeyPrefix + height
	HeightCountKeyPrefix = []byte{0x02}

	LatestHeightKey = []byte{0x03}
)

func HeightPrefix(height int64) []byte {
	return append(append([]byte{}, ReceiptKeyPrefix...), sdk.Uint64ToBigEndian(uint64(height))...)
}

func ReceiptKey(height int64, index uint32) []byte {
	return append(HeightPrefix(height), sdk.Uint32ToBigEndian(index)...)
}

func HeightCountKey(height int64) []byte {
	return append(append([]byte{}, HeightCountKeyPrefix...), sdk.Uint64ToBigEndian(uint64(height))...)
}
