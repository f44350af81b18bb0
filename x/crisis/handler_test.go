package crisis

import (
	"testing"

	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	dbm "github.com/tendermint/tm-db"

	"github.com/hbtc-chain/govledger/codec"
	"github.com/hbtc-chain/govledger/store"
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/access"
)

var (
	pauserAddr = sdk.AccAddress([]byte("pauser______________"))
	aliceAddr  = sdk.AccAddress([]byte("alice_______________"))
)

type testInput struct {
	ctx    sdk.Context
	ak     access.Keeper
	k      *Keeper
	broken *bool
}

func setupTestInput(t *testing.T, period uint) testInput {
	db := dbm.NewMemDB()
	accessKey := sdk.NewKVStoreKey(access.StoreKey)
	ms := store.NewCommitMultiStore(db)
	ms.MountStoreWithDB(accessKey, sdk.StoreTypeDB, db)
	require.NoError(t, ms.LoadLatestVersion())

	cdc := codec.New()
	access.RegisterCodec(cdc)
	RegisterCodec(cdc)
	ctx := sdk.NewContext(ms, abci.Header{Height: 10}, log.NewNopLogger())

	ak := access.NewKeeper(cdc, accessKey, access.DefaultCodespace)
	gs := access.DefaultGenesisState()
	gs.Members = []access.RoleMember{{Role: access.RolePauser, Account: pauserAddr}}
	access.InitGenesis(ctx, ak, gs)

	broken := new(bool)
	k := NewKeeper(ak, period)
	k.RegisterRoute("test", "flag", func(sdk.Context) (string, bool) {
		return sdk.FormatInvariant("test", "flag", "flag raised"), *broken
	})
	return testInput{ctx: ctx, ak: ak, k: &k, broken: broken}
}

func TestVerifyInvariant(t *testing.T) {
	input := setupTestInput(t, 0)
	h := NewHandler(*input.k)

	res := h(input.ctx, NewMsgVerifyInvariant(aliceAddr, "test", "flag"))
	require.Equal(t, sdk.CodeUnauthorized, res.Code)

	res = h(input.ctx, NewMsgVerifyInvariant(pauserAddr, "test", "missing"))
	require.Equal(t, CodeUnknownInvariant, res.Code)

	res = h(input.ctx, NewMsgVerifyInvariant(pauserAddr, "test", "flag"))
	require.True(t, res.IsOK(), res.Log)
	ev := res.Events.OfType(EventTypeInvariant)
	require.Len(t, ev, 1)
	v, _ := ev[0].GetAttribute("broken")
	require.Equal(t, "false", v)
	require.False(t, input.ak.IsPaused(input.ctx))

	*input.broken = true
	res = h(input.ctx, NewMsgVerifyInvariant(pauserAddr, "test", "flag"))
	require.True(t, res.IsOK(), res.Log)
	require.True(t, input.ak.IsPaused(input.ctx))

	// already paused: verifying again does not fail on the pause gate
	res = h(input.ctx, NewMsgVerifyInvariant(pauserAddr, "test", "flag"))
	require.True(t, res.IsOK(), res.Log)
}

func TestEndBlockAssertsInvariants(t *testing.T) {
	input := setupTestInput(t, 5)
	am := NewAppModule(input.k)

	*input.broken = true
	require.NotPanics(t, func() { am.EndBlock(input.ctx.WithBlockHeight(11), abci.RequestEndBlock{}) })
	require.Panics(t, func() { am.EndBlock(input.ctx.WithBlockHeight(15), abci.RequestEndBlock{}) })

	*input.broken = false
	require.NotPanics(t, func() { am.EndBlock(input.ctx.WithBlockHeight(20), abci.RequestEndBlock{}) })

	disabled := setupTestInput(t, 0)
	*disabled.broken = true
	require.NotPanics(t, func() { NewAppModule(disabled.k).EndBlock(disabled.ctx, abci.RequestEndBlock{}) })
}

func TestRegisterRoute(t *testing.T) {
	input := setupTestInput(t, 0)
	input.k.RegisterRoute("other", "noop", func(sdk.Context) (string, bool) { return "", false })
	require.Len(t, input.k.Routes(), 2)
	require.Len(t, input.k.Invariants(), 2)

	route, ok := input.k.Route("other/noop")
	require.True(t, ok)
	require.Equal(t, "other", route.ModuleName)
}
