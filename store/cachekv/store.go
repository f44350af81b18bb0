// Package cachekv buffers writes over a parent KVStore until Write is called.
package cachekv

import (
	"sync"

	"github.com/emirpasic/gods/maps/treemap"

	"github.com/hbtc-chain/govledger/types"
)

// cValue represents a cached value.
// If dirty is true, it indicates the cached value is different from the underlying value.
type cValue struct {
	value   []byte
	deleted bool
	dirty   bool
}

// Store wraps an in-memory cache around an underlying types.KVStore.
// Reads see the store's own pending writes.
type Store struct {
	mtx    sync.Mutex
	cache  *treemap.Map // string(key) -> *cValue, ordered by key
	parent types.KVStore
}

var _ types.KVStore = (*Store)(nil)

func NewStore(parent types.KVStore) *Store {
	return &Store{
		cache:  treemap.NewWithStringComparator(),
		parent: parent,
	}
}

func (store *Store) Get(key []byte) []byte {
	store.mtx.Lock()
	defer store.mtx.Unlock()
	types.AssertValidKey(key)

	if v, ok := store.cache.Get(string(key)); ok {
		cv := v.(*cValue)
		if cv.deleted {
			return nil
		}
		return cv.value
	}
	value := store.parent.Get(key)
	store.cache.Put(string(key), &cValue{value: value, deleted: value == nil})
	return value
}

func (store *Store) Set(key []byte, value []byte) {
	store.mtx.Lock()
	defer store.mtx.Unlock()
	types.AssertValidKey(key)
	types.AssertValidValue(value)

	store.cache.Put(string(key), &cValue{value: value, dirty: true})
}

func (store *Store) Has(key []byte) bool {
	return store.Get(key) != nil
}

func (store *Store) Delete(key []byte) {
	store.mtx.Lock()
	defer store.mtx.Unlock()
	types.AssertValidKey(key)

	store.cache.Put(string(key), &cValue{deleted: true, dirty: true})
}

// Write flushes dirty entries to the parent in key order and clears the cache.
func (store *Store) Write() {
	store.WriteTo(store.parent.Set, store.parent.Delete)
}

// WriteTo flushes dirty entries through the given setters in key order and
// clears the cache.
func (store *Store) WriteTo(set func(key, value []byte), del func(key []byte)) {
	store.mtx.Lock()
	defer store.mtx.Unlock()

	it := store.cache.Iterator()
	for it.Next() {
		cv := it.Value().(*cValue)
		if !cv.dirty {
			continue
		}
		key := []byte(it.Key().(string))
		if cv.deleted {
			del(key)
		} else {
			set(key, cv.value)
		}
	}
	store.cache.Clear()
}

// Iterator implements types.KVStore.
func (store *Store) Iterator(start, end []byte) types.Iterator {
	return store.iterator(start, end, true)
}

// ReverseIterator implements types.KVStore.
func (store *Store) ReverseIterator(start, end []byte) types.Iterator {
	return store.iterator(start, end, false)
}

// iterator materializes the merged view of parent and cache for the domain.
func (store *Store) iterator(start, end []byte, ascending bool) types.Iterator {
	store.mtx.Lock()
	defer store.mtx.Unlock()

	merged := treemap.NewWithStringComparator()

	parent := store.parent.Iterator(start, end)
	for ; parent.Valid(); parent.Next() {
		merged.Put(string(parent.Key()), parent.Value())
	}
	parent.Close()

	it := store.cache.Iterator()
	for it.Next() {
		key := []byte(it.Key().(string))
		if !inDomain(key, start, end) {
			continue
		}
		cv := it.Value().(*cValue)
		if cv.deleted {
			merged.Remove(it.Key())
		} else {
			merged.Put(it.Key(), cv.value)
		}
	}

	items := make([]kvPair, 0, merged.Size())
	mit := merged.Iterator()
	for mit.Next() {
		items = append(items, kvPair{key: []byte(mit.Key().(string)), value: mit.Value().([]byte)})
	}
	return newMemIterator(start, end, items, ascending)
}
