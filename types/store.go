package types

import (
	dbm "github.com/tendermint/tm-db"
)

// KVStore is the byte-level view a keeper gets of its own sub-store.
type KVStore interface {
	Get(key []byte) []byte
	Has(key []byte) bool
	Set(key, value []byte)
	Delete(key []byte)

	// Iterator over a domain of keys in ascending order. End is exclusive.
	// Start must be less than end, or the Iterator is invalid.
	// CONTRACT: No writes may happen within a domain while an iterator exists over it.
	Iterator(start, end []byte) Iterator

	// Iterator over a domain of keys in descending order. End is exclusive.
	ReverseIterator(start, end []byte) Iterator
}

// Iterator is the tm-db iterator contract.
type Iterator = dbm.Iterator

// StoreKey names a mounted sub-store.
type StoreKey interface {
	Name() string
	String() string
}

// KVStoreKey is used for permanent storage.
type KVStoreKey struct {
	name string
}

// NewKVStoreKey returns a new pointer to a KVStoreKey.
// Use a pointer so keys don't collide.
func NewKVStoreKey(name string) *KVStoreKey {
	return &KVStoreKey{name: name}
}

func (key *KVStoreKey) Name() string {
	return key.name
}

func (key *KVStoreKey) String() string {
	return "KVStoreKey{" + key.name + "}"
}

// StoreType tells the multistore how to back a mounted key.
type StoreType int

const (
	// StoreTypeDB persists through the shared database under a key prefix.
	StoreTypeDB StoreType = iota
	// StoreTypeMemory keeps data in a dedicated in-memory database.
	StoreTypeMemory
)

// MultiStore gives access to every mounted sub-store.
type MultiStore interface {
	GetKVStore(StoreKey) KVStore

	// CacheMultiStore branches the store. Writes stay in the branch until
	// Write is called.
	CacheMultiStore() CacheMultiStore
}

// CacheMultiStore is a branch of a MultiStore.
type CacheMultiStore interface {
	MultiStore

	// Write flushes the branch into its parent.
	Write()
}

// CommitID identifies a committed version of the store.
type CommitID struct {
	Version int64  `json:"version"`
	Hash    []byte `json:"hash"`
}

func (cid CommitID) IsZero() bool {
	return cid.Version == 0 && len(cid.Hash) == 0
}

// CommitMultiStore is the root store an application commits blocks into.
type CommitMultiStore interface {
	MultiStore

	MountStoreWithDB(key StoreKey, typ StoreType, db dbm.DB)
	LoadLatestVersion() error
	LastCommitID() CommitID
	Commit() CommitID
}

// KVStorePrefixIterator iterates over all the keys with a certain prefix in ascending order
func KVStorePrefixIterator(kvs KVStore, prefix []byte) Iterator {
	return kvs.Iterator(prefix, PrefixEndBytes(prefix))
}

// KVStoreReversePrefixIterator iterates over all the keys with a certain prefix in descending order.
func KVStoreReversePrefixIterator(kvs KVStore, prefix []byte) Iterator {
	return kvs.ReverseIterator(prefix, PrefixEndBytes(prefix))
}

// PrefixEndBytes returns the []byte that would end a
// range query for all []byte with a certain prefix
// Deals with last byte of prefix being FF without overflowing
func PrefixEndBytes(prefix []byte) []byte {
	if len(prefix) == 0 {
		return nil
	}

	end := make([]byte, len(prefix))
	copy(end, prefix)

	for {
		if end[len(end)-1] != byte(255) {
			end[len(end)-1]++
			break
		} else {
			end = end[:len(end)-1]
			if len(end) == 0 {
				end = nil
				break
			}
		}
	}
	return end
}

// AssertValidKey panics on an empty key.
func AssertValidKey(key []byte) {
	if len(key) == 0 {
		panic("key is nil")
	}
}

// AssertValidValue panics on a nil value.
func AssertValidValue(value []byte) {
	if value == nil {
		panic("value is nil")
	}
}
