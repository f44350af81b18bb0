package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	dbm "github.com/tendermint/tm-db"

	"github.com/hbtc-chain/govledger/codec"
	"github.com/hbtc-chain/govledger/store"
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/ledger"
	"github.com/hbtc-chain/govledger/x/receipt/types"
)

var (
	aliceAddr = sdk.AccAddress([]byte("alice_______________"))
	bobAddr   = sdk.AccAddress([]byte("bob_________________"))
)

type testInput struct {
	cdc *codec.Codec
	ctx sdk.Context
	k   Keeper
}

func setupTestInput(t *testing.T) testInput {
	db := dbm.NewMemDB()
	key := sdk.NewKVStoreKey(StoreKey)
	ms := store.NewCommitMultiStore(db)
	ms.MountStoreWithDB(key, sdk.StoreTypeDB, db)
	require.NoError(t, ms.LoadLatestVersion())

	cdc := codec.New()
	RegisterCodec(cdc)
	ctx := sdk.NewContext(ms, abci.Header{Height: 5}, log.NewNopLogger())
	return testInput{cdc: cdc, ctx: ctx, k: NewKeeper(cdc, key)}
}

func transferResult(amount string) sdk.Result {
	return sdk.Result{Events: sdk.Events{
		sdk.NewEvent(ledger.EventTypeValueMoved,
			sdk.NewAttribute("from", aliceAddr.String()),
			sdk.NewAttribute("to", bobAddr.String()),
			sdk.NewAttribute("amount", amount),
		),
	}}
}

func TestSaveReceipt(t *testing.T) {
	input := setupTestInput(t)
	ctx, k := input.ctx, input.k
	msg := ledger.NewMsgTransfer(aliceAddr, bobAddr, sdk.NewInt(10))

	// failed results are not recorded
	_, ok := k.SaveReceipt(ctx, msg, sdk.ErrInsufficientBalance("").Result())
	assert.False(t, ok)
	assert.Empty(t, k.GetReceipts(ctx, 5))

	rc, ok := k.SaveReceipt(ctx, msg, transferResult("10"))
	require.True(t, ok)
	assert.Equal(t, int64(5), rc.Height)
	assert.Equal(t, uint32(0), rc.Index)
	assert.Equal(t, ledger.RouterKey, rc.Route)
	assert.True(t, rc.Sender.Equals(aliceAddr))

	rc, _ = k.SaveReceipt(ctx, msg, transferResult("11"))
	assert.Equal(t, uint32(1), rc.Index)

	ctx = ctx.WithBlockHeight(6)
	rc, _ = k.SaveReceipt(ctx, msg, transferResult("12"))
	assert.Equal(t, uint32(0), rc.Index)
	assert.Equal(t, int64(6), k.LatestHeight(ctx))

	receipts := k.GetReceipts(ctx, 5)
	require.Len(t, receipts, 2)
	require.Len(t, receipts[1].Events, 1)
	assert.Equal(t, ledger.EventTypeValueMoved, receipts[1].Events[0].Type)
	assert.Equal(t, "11", receipts[1].Events[0].Attributes[2].Value)
}

func TestQuerier(t *testing.T) {
	input := setupTestInput(t)
	ctx, k := input.ctx, input.k
	msg := ledger.NewMsgTransfer(aliceAddr, bobAddr, sdk.NewInt(10))
	k.SaveReceipt(ctx, msg, transferResult("10"))
	k.SaveReceipt(ctx.WithBlockHeight(9), msg, transferResult("20"))

	q := NewQuerier(k)
	bz, err := q(ctx, []string{types.QueryReceipts}, abci.RequestQuery{
		Data: input.cdc.MustMarshalJSON(types.NewQueryReceiptsParams(5)),
	})
	require.Nil(t, err)
	var out []Receipt
	input.cdc.MustUnmarshalJSON(bz, &out)
	require.Len(t, out, 1)

	bz, err = q(ctx, []string{types.QueryLatest}, abci.RequestQuery{})
	require.Nil(t, err)
	input.cdc.MustUnmarshalJSON(bz, &out)
	require.Len(t, out, 1)
	assert.Equal(t, int64(9), out[0].Height)
}

func TestGenesisRoundTrip(t *testing.T) {
	input := setupTestInput(t)
	ctx, k := input.ctx, input.k
	msg := ledger.NewMsgTransfer(aliceAddr, bobAddr, sdk.NewInt(10))
	k.SaveReceipt(ctx, msg, transferResult("1"))
	k.SaveReceipt(ctx, msg, transferResult("2"))
	k.SaveReceipt(ctx.WithBlockHeight(8), msg, transferResult("3"))

	exported := ExportGenesis(ctx, k)
	require.NoError(t, ValidateGenesis(exported))
	require.Len(t, exported.Receipts, 3)

	other := setupTestInput(t)
	InitGenesis(other.ctx, other.k, exported)
	rc, _ := other.k.SaveReceipt(other.ctx, msg, transferResult("4"))
	assert.Equal(t, uint32(2), rc.Index)
	assert.Equal(t, int64(8), other.k.LatestHeight(other.ctx))

	exported.Receipts[1].Index = 5
	assert.Error(t, ValidateGenesis(exported))
}
