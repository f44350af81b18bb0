package rootmulti

import (
	"testing"

	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tm-db"

	"github.com/hbtc-chain/govledger/types"
)

func newTestStore(t *testing.T, db dbm.DB) (*Store, *types.KVStoreKey, *types.KVStoreKey) {
	keyA := types.NewKVStoreKey("a")
	keyB := types.NewKVStoreKey("b")
	rs := NewStore(db)
	rs.MountStoreWithDB(keyA, types.StoreTypeDB, nil)
	rs.MountStoreWithDB(keyB, types.StoreTypeDB, nil)
	require.NoError(t, rs.LoadLatestVersion())
	return rs, keyA, keyB
}

func TestCommitPersistsAcrossReload(t *testing.T) {
	db := dbm.NewMemDB()
	rs, keyA, keyB := newTestStore(t, db)
	require.True(t, rs.LastCommitID().IsZero())

	rs.GetKVStore(keyA).Set([]byte("k"), []byte("va"))
	rs.GetKVStore(keyB).Set([]byte("k"), []byte("vb"))

	// nothing reaches the database before Commit
	require.Nil(t, db.Get([]byte("s/k:a/k")))

	cid := rs.Commit()
	require.Equal(t, int64(1), cid.Version)
	require.Len(t, cid.Hash, 32)
	require.Equal(t, []byte("va"), db.Get([]byte("s/k:a/k")))

	rs2, keyA2, keyB2 := newTestStore(t, db)
	require.Equal(t, cid, rs2.LastCommitID())
	require.Equal(t, []byte("va"), rs2.GetKVStore(keyA2).Get([]byte("k")))
	require.Equal(t, []byte("vb"), rs2.GetKVStore(keyB2).Get([]byte("k")))
}

func TestCacheMultiStoreIsolation(t *testing.T) {
	rs, keyA, _ := newTestStore(t, dbm.NewMemDB())

	cms := rs.CacheMultiStore()
	cms.GetKVStore(keyA).Set([]byte("k"), []byte("v"))
	require.Nil(t, rs.GetKVStore(keyA).Get([]byte("k")))

	cms.Write()
	require.Equal(t, []byte("v"), rs.GetKVStore(keyA).Get([]byte("k")))
}

func TestCommitHashDependsOnWrites(t *testing.T) {
	rs1, a1, _ := newTestStore(t, dbm.NewMemDB())
	rs2, a2, _ := newTestStore(t, dbm.NewMemDB())

	rs1.GetKVStore(a1).Set([]byte("k"), []byte("v1"))
	rs2.GetKVStore(a2).Set([]byte("k"), []byte("v2"))
	require.NotEqual(t, rs1.Commit().Hash, rs2.Commit().Hash)

	// empty blocks still advance the version
	require.Equal(t, int64(2), rs1.Commit().Version)
}

func TestMountDuplicateNamePanics(t *testing.T) {
	rs := NewStore(dbm.NewMemDB())
	rs.MountStoreWithDB(types.NewKVStoreKey("a"), types.StoreTypeDB, nil)
	require.Panics(t, func() {
		rs.MountStoreWithDB(types.NewKVStoreKey("a"), types.StoreTypeDB, nil)
	})
}
