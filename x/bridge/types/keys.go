package types

import (
	sdk "github.com/hbtc-chain/govledger/types"
)

const (
	// ModuleName is the name of the bridge module
	ModuleName = "bridge"

	// StoreKey is the store key string for bridge
	StoreKey = ModuleName

	// RouterKey is the message route for bridge
	RouterKey = ModuleName

	// QuerierRoute is the querier route for bridge
	QuerierRoute = ModuleName

	QueryRegistry = "registry"
	QueryIntent   = "intent"
	QueryIntents  = "intents"

	// MaxExternalAddressLength bounds the foreign address carried by an intent.
	MaxExternalAddressLength = 128
)

var (
	ApprovedKeyPrefix   = []byte{0x01}
	MaxAmountKey        = []byte{0x02}
	IntentKeyPrefix     = []byte{0x03}
	IntentSequenceKey   = []byte{0x04}
	IntentIDIndexPrefix = []byte{0x05}
)

// ApprovedKey : 0x01 | destination
func ApprovedKey(destination sdk.AccAddress) []byte {
	return append(append([]byte{}, ApprovedKeyPrefix...), destination.Key()...)
}

// IntentKey : 0x03 | sequence
func IntentKey(sequence uint64) []byte {
	return append(append([]byte{}, IntentKeyPrefix...), sdk.Uint64ToBigEndian(sequence)...)
}

// IntentIDKey : 0x05 | id
func IntentIDKey(id string) []byte {
	return append(append([]byte{}, IntentIDIndexPrefix...), []byte(id)...)
}
