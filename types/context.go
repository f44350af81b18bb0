package types

import (
	"time"

	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// Context is passed by value to every handler, keeper and querier. It
// carries the store branch, the header of the block being built and the
// event sink of the current message.
type Context struct {
	ms           MultiStore
	header       abci.Header
	logger       log.Logger
	eventManager *EventManager
}

// NewContext creates a new context
func NewContext(ms MultiStore, header abci.Header, logger log.Logger) Context {
	return Context{
		ms:           ms,
		header:       header,
		logger:       logger,
		eventManager: NewEventManager(),
	}
}

func (c Context) MultiStore() MultiStore      { return c.ms }
func (c Context) BlockHeader() abci.Header    { return c.header }
func (c Context) ChainID() string             { return c.header.ChainID }
func (c Context) Logger() log.Logger          { return c.logger }
func (c Context) EventManager() *EventManager { return c.eventManager }

// BlockHeight is the sequence marker of the block being built.
func (c Context) BlockHeight() int64 { return c.header.Height }

func (c Context) BlockTime() time.Time { return c.header.Time }

// KVStore fetches a KVStore from the MultiStore.
func (c Context) KVStore(key StoreKey) KVStore {
	return c.ms.GetKVStore(key)
}

func (c Context) WithMultiStore(ms MultiStore) Context {
	c.ms = ms
	return c
}

func (c Context) WithBlockHeader(header abci.Header) Context {
	header.Time = header.Time.UTC()
	c.header = header
	return c
}

func (c Context) WithBlockHeight(height int64) Context {
	newHeader := c.header
	newHeader.Height = height
	return c.WithBlockHeader(newHeader)
}

func (c Context) WithBlockTime(newTime time.Time) Context {
	newHeader := c.header
	newHeader.Time = newTime.UTC()
	return c.WithBlockHeader(newHeader)
}

func (c Context) WithChainID(chainID string) Context {
	newHeader := c.header
	newHeader.ChainID = chainID
	return c.WithBlockHeader(newHeader)
}

func (c Context) WithLogger(logger log.Logger) Context {
	c.logger = logger
	return c
}

func (c Context) WithEventManager(em *EventManager) Context {
	c.eventManager = em
	return c
}

// CacheContext returns a new Context with the multi-store cached and a new
// EventManager. The cached context is written to the context when writeCache
// is called.
func (c Context) CacheContext() (cc Context, writeCache func()) {
	cms := c.ms.CacheMultiStore()
	cc = c.WithMultiStore(cms).WithEventManager(NewEventManager())
	return cc, cms.Write
}
