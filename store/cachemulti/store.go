// Package cachemulti branches every sub-store of a MultiStore at once.
package cachemulti

import (
	"fmt"

	"github.com/hbtc-chain/govledger/store/cachekv"
	"github.com/hbtc-chain/govledger/types"
)

// Store holds one cache per mounted key. Write flushes all of them.
type Store struct {
	stores map[types.StoreKey]*cachekv.Store
}

var _ types.CacheMultiStore = Store{}

// NewStore branches every parent store.
func NewStore(parents map[types.StoreKey]types.KVStore) Store {
	cms := Store{stores: make(map[types.StoreKey]*cachekv.Store, len(parents))}
	for key, parent := range parents {
		cms.stores[key] = cachekv.NewStore(parent)
	}
	return cms
}

func (cms Store) GetKVStore(key types.StoreKey) types.KVStore {
	st, ok := cms.stores[key]
	if !ok {
		panic(fmt.Sprintf("kv store with key %v has not been registered in stores", key))
	}
	return st
}

func (cms Store) CacheMultiStore() types.CacheMultiStore {
	parents := make(map[types.StoreKey]types.KVStore, len(cms.stores))
	for key, st := range cms.stores {
		parents[key] = st
	}
	return NewStore(parents)
}

// Write calls Write on each underlying store.
func (cms Store) Write() {
	for _, st := range cms.stores {
		st.Write()
	}
}
