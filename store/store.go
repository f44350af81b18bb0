// Package store builds the root multistore applications mount their keys on.
package store

import (
	dbm "github.com/tendermint/tm-db"

	"github.com/hbtc-chain/govledger/store/rootmulti"
	"github.com/hbtc-chain/govledger/types"
)

// NewCommitMultiStore returns a root store over db.
func NewCommitMultiStore(db dbm.DB) types.CommitMultiStore {
	return rootmulti.NewStore(db)
}
