package types

import (
	sdk "github.com/hbtc-chain/govledger/types"
)

const (
	// ModuleName is the name of the votes module
	ModuleName = "votes"

	// StoreKey is the store key string for votes
	StoreKey = ModuleName

	// RouterKey is the message route for votes
	RouterKey = ModuleName

	// QuerierRoute is the querier route for votes
	QuerierRoute = ModuleName

	QueryPriorVotes   = "prior_votes"
	QueryCurrentVotes = "current_votes"
	QueryCheckpoints  = "checkpoints"
	QueryDelegate     = "delegate"
	QueryNonce        = "nonce"
	QueryDomain       = "domain"
)

var (
	DelegateKeyPrefix       = []byte{0x01}
	NumCheckpointsKeyPrefix = []byte{0x02}
	CheckpointKeyPrefix     = []byte{0x03}
	NonceKeyPrefix          = []byte{0x04}
	ParamsKey               = []byte{0x05}
	BaseHeightKey           = []byte{0x06}
)

// DelegateKey : 0x01 | delegator
func DelegateKey(delegator sdk.AccAddress) []byte {
	return append(append([]byte{}, DelegateKeyPrefix...), delegator.Key()...)
}

// NumCheckpointsKey : 0x02 | account
func NumCheckpointsKey(account sdk.AccAddress) []byte {
	return append(append([]byte{}, NumCheckpointsKeyPrefix...), account.Key()...)
}

// CheckpointsPrefix : 0x03 | account
func CheckpointsPrefix(account sdk.AccAddress) []byte {
	return append(append([]byte{}, CheckpointKeyPrefix...), account.Key()...)
}

// CheckpointKey : 0x03 | account | index
func CheckpointKey(account sdk.AccAddress, index uint32) []byte {
	return append(CheckpointsPrefix(account), sdk.Uint32ToBigEndian(index)...)
}

// NonceKey : 0x04 | account
func NonceKey(account sdk.AccAddress) []byte {
	return append(append([]byte{}, NonceKeyPrefix...), account.Key()...)
}
