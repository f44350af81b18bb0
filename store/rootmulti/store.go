// Package rootmulti is the committing root of all mounted sub-stores. Each
// sub-store lives under its own key prefix; a block's writes are buffered and
// flushed in one database batch on Commit.
package rootmulti

import (
	"encoding/binary"
	"fmt"
	"hash"
	"sort"

	"github.com/pkg/errors"
	dbm "github.com/tendermint/tm-db"
	"golang.org/x/crypto/sha3"

	"github.com/hbtc-chain/govledger/store/cachekv"
	"github.com/hbtc-chain/govledger/store/cachemulti"
	"github.com/hbtc-chain/govledger/types"
)

const (
	latestVersionKey = "s/latest"
	storePrefixFmt   = "s/k:%s/"
)

type storeParams struct {
	key    types.StoreKey
	typ    types.StoreType
	db     dbm.DB
	prefix []byte
}

// Store is the root multistore.
type Store struct {
	db           dbm.DB
	storesParams map[types.StoreKey]storeParams
	stores       map[types.StoreKey]*cachekv.Store
	lastCommitID types.CommitID
}

var _ types.CommitMultiStore = (*Store)(nil)

func NewStore(db dbm.DB) *Store {
	return &Store{
		db:           db,
		storesParams: make(map[types.StoreKey]storeParams),
		stores:       make(map[types.StoreKey]*cachekv.Store),
	}
}

// MountStoreWithDB registers a sub-store. A nil db means the root database.
func (rs *Store) MountStoreWithDB(key types.StoreKey, typ types.StoreType, db dbm.DB) {
	if key == nil {
		panic("MountStoreWithDB() key cannot be nil")
	}
	if _, ok := rs.storesParams[key]; ok {
		panic(fmt.Sprintf("Store duplicate store key %v", key))
	}
	for _, p := range rs.storesParams {
		if p.key.Name() == key.Name() {
			panic(fmt.Sprintf("Store duplicate store key name %v", key.Name()))
		}
	}
	switch {
	case typ == types.StoreTypeMemory && db == nil:
		db = dbm.NewMemDB()
	case db == nil:
		db = rs.db
	}
	rs.storesParams[key] = storeParams{
		key:    key,
		typ:    typ,
		db:     db,
		prefix: []byte(fmt.Sprintf(storePrefixFmt, key.Name())),
	}
}

// LoadLatestVersion opens every mounted store and reads the last commit.
func (rs *Store) LoadLatestVersion() error {
	for key, p := range rs.storesParams {
		rs.stores[key] = cachekv.NewStore(dbm.NewPrefixDB(p.db, p.prefix))
	}
	cid, err := getLatestVersion(rs.db)
	if err != nil {
		return err
	}
	rs.lastCommitID = cid
	return nil
}

func (rs *Store) LastCommitID() types.CommitID {
	return rs.lastCommitID
}

func (rs *Store) GetKVStore(key types.StoreKey) types.KVStore {
	st, ok := rs.stores[key]
	if !ok {
		panic(fmt.Sprintf("kv store with key %v has not been registered in stores", key))
	}
	return st
}

func (rs *Store) CacheMultiStore() types.CacheMultiStore {
	parents := make(map[types.StoreKey]types.KVStore, len(rs.stores))
	for key, st := range rs.stores {
		parents[key] = st
	}
	return cachemulti.NewStore(parents)
}

// Commit flushes pending writes of every sub-store and the new version in a
// single batch per database. The commit hash chains the previous hash with
// every written pair in store-name and key order.
func (rs *Store) Commit() types.CommitID {
	version := rs.lastCommitID.Version + 1

	hasher := sha3.New256()
	hasher.Write(rs.lastCommitID.Hash)

	batches := make(map[dbm.DB]dbm.Batch)
	batchFor := func(db dbm.DB) dbm.Batch {
		b, ok := batches[db]
		if !ok {
			b = db.NewBatch()
			batches[db] = b
		}
		return b
	}

	keys := make([]types.StoreKey, 0, len(rs.stores))
	for key := range rs.stores {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Name() < keys[j].Name() })

	for _, key := range keys {
		p := rs.storesParams[key]
		batch := batchFor(p.db)
		name := []byte(key.Name())
		rs.stores[key].WriteTo(
			func(k, v []byte) {
				writeHashed(hasher, name, k, v)
				batch.Set(prefixed(p.prefix, k), v)
			},
			func(k []byte) {
				writeHashed(hasher, name, k, nil)
				batch.Delete(prefixed(p.prefix, k))
			},
		)
	}

	cid := types.CommitID{Version: version, Hash: hasher.Sum(nil)}
	batchFor(rs.db).Set([]byte(latestVersionKey), encodeCommitID(cid))

	for db, batch := range batches {
		if db == rs.db {
			continue
		}
		batch.WriteSync()
		batch.Close()
	}
	// the root batch carries the version marker and goes last
	root := batches[rs.db]
	root.WriteSync()
	root.Close()

	rs.lastCommitID = cid
	return cid
}

func prefixed(prefix, key []byte) []byte {
	res := make([]byte, len(prefix)+len(key))
	copy(res, prefix)
	copy(res[len(prefix):], key)
	return res
}

func writeHashed(h hash.Hash, parts ...[]byte) {
	var lenBuf [binary.MaxVarintLen64]byte
	for _, p := range parts {
		n := binary.PutUvarint(lenBuf[:], uint64(len(p)))
		h.Write(lenBuf[:n])
		h.Write(p)
	}
}

func encodeCommitID(cid types.CommitID) []byte {
	bz := make([]byte, 8, 8+len(cid.Hash))
	binary.BigEndian.PutUint64(bz, uint64(cid.Version))
	return append(bz, cid.Hash...)
}

func getLatestVersion(db dbm.DB) (types.CommitID, error) {
	bz := db.Get([]byte(latestVersionKey))
	if bz == nil {
		return types.CommitID{}, nil
	}
	if len(bz) < 8 {
		return types.CommitID{}, errors.Errorf("corrupted version record: %X", bz)
	}
	return types.CommitID{
		Version: int64(binary.BigEndian.Uint64(bz[:8])),
		Hash:    append([]byte(nil), bz[8:]...),
	}, nil
}
