package votes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	dbm "github.com/tendermint/tm-db"

	"github.com/hbtc-chain/govledger/codec"
	"github.com/hbtc-chain/govledger/store"
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/access"
	"github.com/hbtc-chain/govledger/x/ledger"
)

var (
	Addrs = []sdk.AccAddress{
		sdk.AccAddress([]byte("minter______________")),
		sdk.AccAddress([]byte("alice_______________")),
		sdk.AccAddress([]byte("bob_________________")),
		sdk.AccAddress([]byte("carol_______________")),
	}
	MinterAddr = Addrs[0]
	AliceAddr  = Addrs[1]
	BobAddr    = Addrs[2]
	CarolAddr  = Addrs[3]

	testChainID   = "test-chain-id"
	testBlockTime = time.Unix(1600000000, 0).UTC()
)

type testInput struct {
	cdc *codec.Codec
	ctx sdk.Context
	lk  ledger.Keeper
	k   Keeper
}

// setupTestInput wires access, ledger and votes the way the app does, with the
// votes hooks installed on the ledger. MinterAddr holds the minter role.
func setupTestInput(t *testing.T) testInput {
	db := dbm.NewMemDB()
	accessKey := sdk.NewKVStoreKey(access.StoreKey)
	ledgerKey := sdk.NewKVStoreKey(ledger.StoreKey)
	votesKey := sdk.NewKVStoreKey(StoreKey)

	ms := store.NewCommitMultiStore(db)
	ms.MountStoreWithDB(accessKey, sdk.StoreTypeDB, db)
	ms.MountStoreWithDB(ledgerKey, sdk.StoreTypeDB, db)
	ms.MountStoreWithDB(votesKey, sdk.StoreTypeDB, db)
	require.NoError(t, ms.LoadLatestVersion())

	cdc := codec.New()
	access.RegisterCodec(cdc)
	ledger.RegisterCodec(cdc)
	RegisterCodec(cdc)

	header := abci.Header{ChainID: testChainID, Height: 1, Time: testBlockTime}
	ctx := sdk.NewContext(ms, header, log.NewNopLogger())

	ak := access.NewKeeper(cdc, accessKey, access.DefaultCodespace)
	gs := access.DefaultGenesisState()
	gs.Members = []access.RoleMember{{Role: access.RoleMinter, Account: MinterAddr}}
	access.InitGenesis(ctx, ak, gs)

	lk := ledger.NewKeeper(cdc, ledgerKey, ak, ledger.DefaultCodespace)
	k := NewKeeper(cdc, votesKey, lk, DefaultCodespace)
	lk.SetHooks(k.Hooks())

	ledger.InitGenesis(ctx, lk, ledger.DefaultGenesisState())
	InitGenesis(ctx, k, DefaultGenesisState())

	return testInput{cdc: cdc, ctx: ctx, lk: lk, k: k}
}

func atHeight(ctx sdk.Context, height int64) sdk.Context {
	return ctx.WithBlockHeight(height).WithEventManager(sdk.NewEventManager())
}
