package cachekv

import (
	"bytes"

	dbm "github.com/tendermint/tm-db"
)

type kvPair struct {
	key   []byte
	value []byte
}

// memIterator walks a materialized, already sorted slice of pairs.
type memIterator struct {
	start, end []byte
	items      []kvPair
	pos        int
}

var _ dbm.Iterator = (*memIterator)(nil)

func newMemIterator(start, end []byte, items []kvPair, ascending bool) *memIterator {
	if !ascending {
		for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
			items[i], items[j] = items[j], items[i]
		}
	}
	return &memIterator{start: start, end: end, items: items}
}

func (mi *memIterator) Domain() ([]byte, []byte) {
	return mi.start, mi.end
}

func (mi *memIterator) Valid() bool {
	return mi.pos < len(mi.items)
}

func (mi *memIterator) assertValid() {
	if !mi.Valid() {
		panic("memIterator is invalid")
	}
}

func (mi *memIterator) Next() {
	mi.assertValid()
	mi.pos++
}

func (mi *memIterator) Key() []byte {
	mi.assertValid()
	return mi.items[mi.pos].key
}

func (mi *memIterator) Value() []byte {
	mi.assertValid()
	return mi.items[mi.pos].value
}

func (mi *memIterator) Close() {
	mi.items = nil
}

func inDomain(key, start, end []byte) bool {
	if start != nil && bytes.Compare(key, start) < 0 {
		return false
	}
	if end != nil && bytes.Compare(key, end) >= 0 {
		return false
	}
	return true
}
