package server

import (
	"crypto/ecdsa"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	dbm "github.com/tendermint/tm-db"

	"github.com/hbtc-chain/govledger/client/context"
	"github.com/hbtc-chain/govledger/codec"
	"github.com/hbtc-chain/govledger/crypto"
	"github.com/hbtc-chain/govledger/ledgerapp"
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/access"
	"github.com/hbtc-chain/govledger/x/ledger"
	ledgertypes "github.com/hbtc-chain/govledger/x/ledger/types"
)

const testChainID = "node-test-chain"

type testNode struct {
	node     *LocalNode
	app      *ledgerapp.LedgerApp
	cdc      *codec.Codec
	registry *prometheus.Registry
	minter   *ecdsa.PrivateKey
}

func newTestNode(t *testing.T) testNode {
	registry := prometheus.NewRegistry()
	metrics, err := ledgerapp.NewMetrics(registry)
	require.NoError(t, err)
	app, err := ledgerapp.NewLedgerApp(log.NewNopLogger(), dbm.NewMemDB(), 1, metrics)
	require.NoError(t, err)

	minter, err := crypto.GenerateKey()
	require.NoError(t, err)

	cdc := app.Codec()
	gs := ledgerapp.NewDefaultGenesisState()
	ags := access.DefaultGenesisState()
	ags.Members = []access.RoleMember{{Role: access.RoleMinter, Account: crypto.PubkeyToAddress(minter.PublicKey)}}
	gs[access.ModuleName] = cdc.MustMarshalJSON(ags)
	app.InitChain(abci.RequestInitChain{
		ChainId:       testChainID,
		Time:          time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC),
		AppStateBytes: cdc.MustMarshalJSON(gs),
	})

	node := NewLocalNode(app)
	node.now = func() time.Time { return time.Date(2020, 6, 2, 0, 0, 0, 0, time.UTC) }
	return testNode{node: node, app: app, cdc: cdc, registry: registry, minter: minter}
}

func (tn testNode) signedMint(t *testing.T, seq uint64, to sdk.AccAddress, amount int64) []byte {
	msg := ledger.NewMsgMint(crypto.PubkeyToAddress(tn.minter.PublicKey), to, sdk.NewInt(amount))
	sig, err := crypto.Sign(crypto.Keccak256(sdk.StdSignBytes(testChainID, seq, msg)), tn.minter)
	require.NoError(t, err)
	return tn.cdc.MustMarshalJSON(sdk.NewStdTx(msg, seq, sig))
}

func (tn testNode) balance(t *testing.T, node context.Node, addr sdk.AccAddress) sdk.Int {
	bz, _, err := node.Query("custom/ledger/"+ledgertypes.QueryBalance, tn.cdc.MustMarshalJSON(ledgertypes.NewQueryBalanceParams(addr)), 0)
	require.NoError(t, err)
	var res sdk.Int
	require.NoError(t, tn.cdc.UnmarshalJSON(bz, &res))
	return res
}

func TestBroadcastTxCommitsOneBlock(t *testing.T) {
	tn := newTestNode(t)
	alice := sdk.AccAddress([]byte("alice_______________"))

	res, err := tn.node.BroadcastTx(tn.signedMint(t, 0, alice, 100))
	require.NoError(t, err)
	require.Equal(t, sdk.CodeOK, res.Code, res.Log)
	require.Equal(t, int64(1), res.Height)
	require.NotEmpty(t, res.Events)

	res, err = tn.node.BroadcastTx(tn.signedMint(t, 1, alice, 50))
	require.NoError(t, err)
	require.Equal(t, sdk.CodeOK, res.Code, res.Log)
	require.Equal(t, int64(2), res.Height)

	require.True(t, tn.balance(t, tn.node, alice).Equal(sdk.NewInt(150)))

	status, err := tn.node.Status()
	require.NoError(t, err)
	require.Equal(t, testChainID, status.ChainID)
	require.Equal(t, int64(2), status.LatestHeight)
	require.True(t, status.LatestTime.Equal(time.Date(2020, 6, 2, 0, 0, 0, 0, time.UTC)))
}

func TestBroadcastTxRejectedWithoutBlock(t *testing.T) {
	tn := newTestNode(t)
	alice := sdk.AccAddress([]byte("alice_______________"))

	res, err := tn.node.BroadcastTx(tn.signedMint(t, 7, alice, 100))
	require.NoError(t, err)
	require.Equal(t, sdk.CodeInvalidSequence, res.Code)
	require.Equal(t, int64(0), tn.app.LastBlockHeight())

	res, err = tn.node.BroadcastTx([]byte("not a tx"))
	require.NoError(t, err)
	require.Equal(t, sdk.CodeTxDecode, res.Code)
	require.Equal(t, int64(0), tn.app.LastBlockHeight())
}

func TestBlockTimeNeverGoesBack(t *testing.T) {
	tn := newTestNode(t)
	tn.node.now = func() time.Time { return time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC) }

	res, err := tn.node.BroadcastTx(tn.signedMint(t, 0, sdk.AccAddress([]byte("alice_______________")), 1))
	require.NoError(t, err)
	require.Equal(t, sdk.CodeOK, res.Code, res.Log)
	require.True(t, tn.app.LastBlockTime().Equal(time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)))
}

func TestQueryErrorsCarryCodes(t *testing.T) {
	tn := newTestNode(t)

	_, _, err := tn.node.Query("custom/nowhere/balance", nil, 0)
	require.Error(t, err)
	sdkErr, ok := err.(sdk.Error)
	require.True(t, ok)
	require.Equal(t, sdk.CodeUnknownRequest, sdkErr.Code())
}

func TestRESTRouterServesHTTPNode(t *testing.T) {
	tn := newTestNode(t)
	cliCtx := context.CLIContext{Codec: tn.cdc, Node: tn.node, OutputFormat: "json"}
	srv := httptest.NewServer(NewRESTRouter(cliCtx, tn.registry))
	defer srv.Close()

	remote := context.NewHTTPNode(srv.URL)
	alice := sdk.AccAddress([]byte("alice_______________"))

	res, err := remote.BroadcastTx(tn.signedMint(t, 0, alice, 100))
	require.NoError(t, err)
	require.Equal(t, sdk.CodeOK, res.Code, res.Log)
	require.Equal(t, int64(1), res.Height)

	require.True(t, tn.balance(t, remote, alice).Equal(sdk.NewInt(100)))

	_, _, err = remote.Query("custom/nowhere/balance", nil, 0)
	require.Error(t, err)

	status, err := remote.Status()
	require.NoError(t, err)
	require.Equal(t, int64(1), status.LatestHeight)
	require.Equal(t, testChainID, status.ChainID)

	resp, err := http.Get(srv.URL + "/ledger/balances/" + alice.String())
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	metrics, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer metrics.Body.Close()
	body, err := ioutil.ReadAll(metrics.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "govledger_height 1")
	require.Contains(t, string(body), "govledger_msgs_delivered")
}
