package server

import (
	"fmt"
	"sync"
	"time"

	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/hbtc-chain/govledger/client/context"
	"github.com/hbtc-chain/govledger/ledgerapp"
	sdk "github.com/hbtc-chain/govledger/types"
)

// LocalNode drives a LedgerApp in-process. Every accepted transaction is
// delivered in a block of its own.
type LocalNode struct {
	mtx sync.Mutex
	app *ledgerapp.LedgerApp
	now func() time.Time
}

var _ context.Node = (*LocalNode)(nil)

func NewLocalNode(app *ledgerapp.LedgerApp) *LocalNode {
	return &LocalNode{app: app, now: time.Now}
}

// Query answers a query against the latest committed state.
func (n *LocalNode) Query(path string, data []byte, height int64) ([]byte, int64, error) {
	res := n.app.Query(abci.RequestQuery{Path: path, Data: data, Height: height})
	if res.Code != uint32(sdk.CodeOK) {
		return nil, res.Height, sdk.ErrorFromResult(sdk.Result{
			Code:      sdk.CodeType(res.Code),
			Codespace: sdk.CodespaceType(res.Codespace),
			Log:       res.Log,
		})
	}
	return res.Value, res.Height, nil
}

// BroadcastTx checks txBytes and, when it authenticates, runs one block
// holding it. A transaction rejected by CheckTx does not produce a block.
func (n *LocalNode) BroadcastTx(txBytes []byte) (sdk.TxResponse, error) {
	n.mtx.Lock()
	defer n.mtx.Unlock()

	check := n.app.CheckTx(abci.RequestCheckTx{Tx: txBytes})
	if check.Code != uint32(sdk.CodeOK) {
		return sdk.TxResponse{
			Height:    n.app.LastBlockHeight(),
			Code:      sdk.CodeType(check.Code),
			Codespace: sdk.CodespaceType(check.Codespace),
			Log:       check.Log,
		}, nil
	}

	height := n.app.LastBlockHeight() + 1
	n.app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{
		ChainID: n.app.ChainID(),
		Height:  height,
		Time:    n.blockTime(),
	}})
	res := n.app.DeliverTx(abci.RequestDeliverTx{Tx: txBytes})
	n.app.EndBlock(abci.RequestEndBlock{Height: height})
	n.app.Commit()

	events := make(sdk.Events, len(res.Events))
	for i, ev := range res.Events {
		events[i] = sdk.Event(ev)
	}
	return sdk.TxResponse{
		Height:    height,
		Code:      sdk.CodeType(res.Code),
		Codespace: sdk.CodespaceType(res.Codespace),
		Data:      res.Data,
		Log:       res.Log,
		Events:    sdk.StringifyEvents(events),
	}, nil
}

// Status reports the last committed block.
func (n *LocalNode) Status() (context.NodeStatus, error) {
	cid := n.app.LastCommitID()
	return context.NodeStatus{
		ChainID:      n.app.ChainID(),
		LatestHeight: cid.Version,
		LatestHash:   fmt.Sprintf("%X", cid.Hash),
		LatestTime:   n.app.LastBlockTime(),
	}, nil
}

// blockTime never goes back behind the previous block.
func (n *LocalNode) blockTime() time.Time {
	now := n.now().UTC()
	if last := n.app.LastBlockTime(); now.Before(last) {
		return last
	}
	return now
}
