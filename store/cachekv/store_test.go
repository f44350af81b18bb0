package cachekv

import (
	"testing"

	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tm-db"
)

func bz(s string) []byte { return []byte(s) }

func TestCacheKVStore(t *testing.T) {
	mem := dbm.NewMemDB()
	st := NewStore(mem)

	require.Empty(t, st.Get(bz("key1")), "Expected `key1` to be empty")

	mem.Set(bz("key1"), bz("value1"))
	st.Set(bz("key1"), bz("value1"))
	require.Equal(t, bz("value1"), st.Get(bz("key1")))

	st.Set(bz("key1"), bz("value2"))
	require.Equal(t, bz("value2"), st.Get(bz("key1")))
	require.Equal(t, bz("value1"), mem.Get(bz("key1")), "parent untouched before Write")

	st.Write()
	require.Equal(t, bz("value2"), mem.Get(bz("key1")))

	st.Delete(bz("key1"))
	require.Empty(t, st.Get(bz("key1")))
	require.False(t, st.Has(bz("key1")))
	require.Equal(t, bz("value2"), mem.Get(bz("key1")))

	st.Write()
	require.Empty(t, mem.Get(bz("key1")))
}

func TestCacheKVStoreNested(t *testing.T) {
	mem := dbm.NewMemDB()
	st := NewStore(mem)

	st.Set(bz("key1"), bz("value1"))

	st2 := NewStore(st)
	require.Equal(t, bz("value1"), st2.Get(bz("key1")))

	st2.Set(bz("key1"), bz("value3"))
	require.Equal(t, bz("value1"), st.Get(bz("key1")))
	require.Equal(t, bz("value3"), st2.Get(bz("key1")))

	st2.Write()
	require.Equal(t, bz("value3"), st.Get(bz("key1")))
	require.Empty(t, mem.Get(bz("key1")))

	st.Write()
	require.Equal(t, bz("value3"), mem.Get(bz("key1")))
}

func TestCacheKVStoreDiscard(t *testing.T) {
	mem := dbm.NewMemDB()
	mem.Set(bz("a"), bz("1"))
	st := NewStore(mem)
	st.Set(bz("a"), bz("2"))
	st.Set(bz("b"), bz("3"))
	// dropping the branch without Write leaves the parent as it was
	require.Equal(t, bz("1"), mem.Get(bz("a")))
	require.False(t, mem.Has(bz("b")))
}

func TestCacheKVIteratorMerge(t *testing.T) {
	mem := dbm.NewMemDB()
	mem.Set(bz("a"), bz("1"))
	mem.Set(bz("c"), bz("3"))
	mem.Set(bz("e"), bz("5"))

	st := NewStore(mem)
	st.Set(bz("b"), bz("2"))
	st.Delete(bz("c"))
	st.Set(bz("e"), bz("50"))
	st.Set(bz("z"), bz("26"))

	var keys, values []string
	it := st.Iterator(bz("a"), bz("f"))
	for ; it.Valid(); it.Next() {
		keys = append(keys, string(it.Key()))
		values = append(values, string(it.Value()))
	}
	it.Close()
	require.Equal(t, []string{"a", "b", "e"}, keys)
	require.Equal(t, []string{"1", "2", "50"}, values)

	keys = keys[:0]
	rit := st.ReverseIterator(nil, nil)
	for ; rit.Valid(); rit.Next() {
		keys = append(keys, string(rit.Key()))
	}
	rit.Close()
	require.Equal(t, []string{"z", "e", "b", "a"}, keys)
}

func TestCacheKVStoreNilValuePanics(t *testing.T) {
	st := NewStore(dbm.NewMemDB())
	require.Panics(t, func() { st.Set(bz("a"), nil) })
	require.Panics(t, func() { st.Set(nil, bz("a")) })
}
