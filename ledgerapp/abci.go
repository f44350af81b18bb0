package ledgerapp

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	abci "github.com/tendermint/tendermint/abci/types"

	sdk "github.com/hbtc-chain/govledger/types"
)

// Info reports the last committed block.
func (app *LedgerApp) Info(_ abci.RequestInfo) abci.ResponseInfo {
	cid := app.cms.LastCommitID()
	return abci.ResponseInfo{
		Data:             app.name,
		LastBlockHeight:  cid.Version,
		LastBlockAppHash: cid.Hash,
	}
}

// InitChain validates and imports the genesis state. It is only accepted
// before the first block.
func (app *LedgerApp) InitChain(req abci.RequestInitChain) abci.ResponseInitChain {
	app.mtx.Lock()
	defer app.mtx.Unlock()

	if app.LastBlockHeight() != 0 {
		panic(fmt.Sprintf("chain already initialized at height %d", app.LastBlockHeight()))
	}
	if req.ChainId == "" {
		panic("chain id is required")
	}

	var genesisState GenesisState
	app.cdc.MustUnmarshalJSON(req.AppStateBytes, &genesisState)
	if err := ModuleBasics.ValidateGenesis(genesisState); err != nil {
		panic(err)
	}

	main := app.cms.GetKVStore(app.keys[MainStoreKey])
	main.Set(ChainIDKey, []byte(req.ChainId))
	main.Set(LastBlockTimeKey, sdk.Uint64ToBigEndian(uint64(req.Time.UTC().UnixNano())))

	header := abci.Header{ChainID: req.ChainId, Height: 0, Time: req.Time}
	ctx := sdk.NewContext(app.cms, header, app.logger)
	res := app.InitChainer(ctx, req)
	app.logger.Info("chain initialized", "chain_id", req.ChainId)
	return res
}

// BeginBlock opens the block at req.Header. The height must follow the last
// committed one.
func (app *LedgerApp) BeginBlock(req abci.RequestBeginBlock) abci.ResponseBeginBlock {
	app.mtx.Lock()
	defer app.mtx.Unlock()

	if app.deliverCtx != nil {
		panic("previous block was not committed")
	}
	header := req.Header
	if expected := app.LastBlockHeight() + 1; header.Height != expected {
		panic(fmt.Sprintf("invalid block height: expected %d, got %d", expected, header.Height))
	}
	if header.ChainID == "" {
		header.ChainID = app.ChainID()
	}
	if header.ChainID != app.ChainID() {
		panic(fmt.Sprintf("invalid chain id %q, expected %q", header.ChainID, app.ChainID()))
	}

	ctx := sdk.NewContext(app.cms, header, app.logger)
	app.deliverCtx = &ctx
	ctx.KVStore(app.keys[MainStoreKey]).Set(LastBlockTimeKey, sdk.Uint64ToBigEndian(uint64(ctx.BlockTime().UnixNano())))
	return app.BeginBlocker(ctx, req)
}

// CheckTx authenticates a transaction against the latest state without
// running its message.
func (app *LedgerApp) CheckTx(req abci.RequestCheckTx) abci.ResponseCheckTx {
	tx, err := app.txDecoder(req.Tx)
	if err != nil {
		return abci.ResponseCheckTx{Code: uint32(err.Code()), Codespace: string(err.Codespace()), Log: err.ABCILog()}
	}

	app.mtx.RLock()
	defer app.mtx.RUnlock()

	ctx, _ := app.queryContext()
	if err := app.anteHandler(ctx, tx); err != nil {
		return abci.ResponseCheckTx{Code: uint32(err.Code()), Codespace: string(err.Codespace()), Log: err.ABCILog()}
	}
	return abci.ResponseCheckTx{}
}

// DeliverTx decodes and executes one transaction of the current block.
func (app *LedgerApp) DeliverTx(req abci.RequestDeliverTx) abci.ResponseDeliverTx {
	var result sdk.Result
	tx, err := app.txDecoder(req.Tx)
	if err != nil {
		app.metrics.reject(string(err.Codespace()))
		result = err.Result()
	} else {
		result = app.Deliver(tx)
	}

	return abci.ResponseDeliverTx{
		Code:      uint32(result.Code),
		Codespace: string(result.Codespace),
		Data:      result.Data,
		Log:       result.Log,
		Events:    result.Events.ToABCIEvents(),
	}
}

// Deliver executes a signed transaction in the current block. The message
// runs on a branch of the block state that is written only when the handler
// succeeds; a panic inside the handler is turned into an internal error.
// A Deliver issued while another one is executing fails with ReentrantCall.
func (app *LedgerApp) Deliver(tx sdk.StdTx) (result sdk.Result) {
	if !atomic.CompareAndSwapUint32(&app.busy, 0, 1) {
		return sdk.ErrReentrantCall("a transaction is already executing").Result()
	}
	defer atomic.StoreUint32(&app.busy, 0)

	app.mtx.Lock()
	defer app.mtx.Unlock()

	if app.deliverCtx == nil {
		return sdk.ErrInternal("no block in progress").Result()
	}
	ctx := *app.deliverCtx

	defer func() {
		if r := recover(); r != nil {
			app.logger.Error("transaction panicked", "err", r)
			result = sdk.ErrInternal(fmt.Sprintf("recovered: %v", r)).Result()
		}
	}()

	anteCtx, writeAnte := ctx.CacheContext()
	if err := app.anteHandler(anteCtx, tx); err != nil {
		app.metrics.reject(string(err.Codespace()))
		return err.Result()
	}
	writeAnte()

	return app.runMsg(ctx, tx.Msg)
}

func (app *LedgerApp) runMsg(ctx sdk.Context, msg sdk.Msg) sdk.Result {
	handler := app.router.Route(msg.Route())
	if handler == nil {
		return sdk.ErrUnknownRequest("unrecognized message route: " + msg.Route()).Result()
	}

	msgCtx, writeCache := ctx.CacheContext()
	result := handler(msgCtx, msg)
	app.metrics.delivered(msg.Route(), msg.Type(), result.IsOK())
	if !result.IsOK() {
		return result
	}

	writeCache()
	app.receiptKeeper.SaveReceipt(ctx, msg, result)
	return result
}

// EndBlock runs the end blockers of the current block. A broken invariant
// panics here and halts the node.
func (app *LedgerApp) EndBlock(req abci.RequestEndBlock) abci.ResponseEndBlock {
	app.mtx.Lock()
	defer app.mtx.Unlock()

	if app.deliverCtx == nil {
		panic("no block in progress")
	}
	return app.EndBlocker(*app.deliverCtx, req)
}

// Commit persists the current block.
func (app *LedgerApp) Commit() abci.ResponseCommit {
	app.mtx.Lock()
	defer app.mtx.Unlock()

	cid := app.cms.Commit()
	app.deliverCtx = nil
	app.metrics.committed(cid.Version)
	app.logger.Debug("commit synced", "height", cid.Version, "hash", fmt.Sprintf("%X", cid.Hash))
	return abci.ResponseCommit{Data: cid.Hash}
}

// Query answers "custom/<route>/..." module queries and "app/sequence".
// Only the latest state is served.
func (app *LedgerApp) Query(req abci.RequestQuery) abci.ResponseQuery {
	app.mtx.RLock()
	defer app.mtx.RUnlock()

	ctx, height := app.queryContext()
	if req.Height != 0 && req.Height != height {
		return queryResult(sdk.ErrUnknownRequest(fmt.Sprintf("state at height %d is not available, latest is %d", req.Height, height)), height)
	}

	path := splitPath(req.Path)
	if len(path) == 0 {
		return queryResult(sdk.ErrUnknownRequest("no query path provided"), height)
	}

	var (
		res []byte
		err sdk.Error
	)
	switch path[0] {
	case "custom":
		res, err = app.handleQueryCustom(ctx, path, req)
	case "app":
		res, err = app.handleQueryApp(ctx, path, req)
	default:
		err = sdk.ErrUnknownRequest(fmt.Sprintf("unknown query path %q", req.Path))
	}
	if err != nil {
		return queryResult(err, height)
	}
	return abci.ResponseQuery{Value: res, Height: height}
}

func (app *LedgerApp) handleQueryCustom(ctx sdk.Context, path []string, req abci.RequestQuery) ([]byte, sdk.Error) {
	if len(path) < 2 || path[1] == "" {
		return nil, sdk.ErrUnknownRequest("no route for custom query specified")
	}
	if len(path) < 3 {
		return nil, sdk.ErrUnknownRequest(fmt.Sprintf("no endpoint for custom query %s specified", path[1]))
	}
	querier := app.queryRouter.Route(path[1])
	if querier == nil {
		return nil, sdk.ErrUnknownRequest(fmt.Sprintf("no custom querier found for route %s", path[1]))
	}
	return querier(ctx, path[2:], req)
}

func (app *LedgerApp) handleQueryApp(ctx sdk.Context, path []string, req abci.RequestQuery) ([]byte, sdk.Error) {
	if strings.Join(path, "/") != sdk.QuerySequencePath {
		return nil, sdk.ErrUnknownRequest(fmt.Sprintf("unknown app query %q", strings.Join(path, "/")))
	}

	var params sdk.QuerySequenceParams
	if err := app.cdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, sdk.ErrUnknownRequest(fmt.Sprintf("failed to parse params: %s", err))
	}
	if params.Address.Empty() {
		return nil, sdk.ErrInvalidAddress("sequence of the null account")
	}
	bz, err := app.cdc.MarshalJSON(sdk.QueryResSequence{
		Address:  params.Address,
		Sequence: app.GetSequence(ctx, params.Address),
	})
	if err != nil {
		return nil, sdk.ErrInternal(err.Error())
	}
	return bz, nil
}

// queryContext branches the latest state. The branch is never written. It
// reads as the block following the last committed one.
func (app *LedgerApp) queryContext() (sdk.Context, int64) {
	height := app.LastBlockHeight()
	header := abci.Header{
		ChainID: app.ChainID(),
		Height:  height + 1,
		Time:    app.LastBlockTime(),
	}
	return sdk.NewContext(app.cms.CacheMultiStore(), header, app.logger), height
}

// LastBlockTime returns the time of the latest block, or of genesis.
func (app *LedgerApp) LastBlockTime() time.Time {
	bz := app.cms.GetKVStore(app.keys[MainStoreKey]).Get(LastBlockTimeKey)
	if bz == nil {
		return time.Unix(0, 0).UTC()
	}
	return time.Unix(0, int64(sdk.BigEndianToUint64(bz))).UTC()
}

func queryResult(err sdk.Error, height int64) abci.ResponseQuery {
	return abci.ResponseQuery{
		Code:      uint32(err.Code()),
		Codespace: string(err.Codespace()),
		Log:       err.ABCILog(),
		Height:    height,
	}
}

func splitPath(requestPath string) []string {
	path := strings.Split(strings.Trim(requestPath, "/"), "/")
	if len(path) == 1 && path[0] == "" {
		return nil
	}
	return path
}
