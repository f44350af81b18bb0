package rescue

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
	"github.com/hbtc-chain/govledger/x/ledger"
)

var (
	Addrs = []sdk.AccAddress{
		sdk.AccAddress([]byte("minter______________")),
		sdk.AccAddress([]byte("pauser______________")),
		sdk.AccAddress([]byte("rescuer_____________")),
		sdk.AccAddress([]byte("alice_______________")),
	}
	MinterAddr  = Addrs[0]
	PauserAddr  = Addrs[1]
	RescuerAddr = Addrs[2]
	AliceAddr   = Addrs[3]
)

type testInput struct {
	cdc *codec.Codec
	ctx sdk.Context
	ak  access.Keeper
	lk  ledger.Keeper
	k   Keeper
}

// setupTestInput wires access, ledger and rescue keepers. Ledger hooks are
// installed before the rescue keeper copies the ledger keeper.
func setupTestInput(t *testing.T, hooks ledger.LedgerHooks) testInput {
	db := dbm.NewMemDB()
	accessKey := sdk.NewKVStoreKey(access.StoreKey)
	ledgerKey := sdk.NewKVStoreKey(ledger.StoreKey)
	rescueKey := sdk.NewKVStoreKey(StoreKey)

	ms := store.NewCommitMultiStore(db)
	ms.MountStoreWithDB(accessKey, sdk.StoreTypeDB, db)
	ms.MountStoreWithDB(ledgerKey, sdk.StoreTypeDB, db)
	ms.MountStoreWithDB(rescueKey, sdk.StoreTypeDB, db)
	require.NoError(t, ms.LoadLatestVersion())

	cdc := codec.New()
	access.RegisterCodec(cdc)
	ledger.RegisterCodec(cdc)
	RegisterCodec(cdc)

	ctx := sdk.NewContext(ms, abci.Header{ChainID: "test-chain-id", Height: 3}, log.NewNopLogger())

	ak := access.NewKeeper(cdc, accessKey, access.DefaultCodespace)
	gs := access.DefaultGenesisState()
	gs.Members = []access.RoleMember{
		{Role: access.RoleMinter, Account: MinterAddr},
		{Role: access.RolePauser, Account: PauserAddr},
		{Role: access.RoleRescuer, Account: RescuerAddr},
	}
	access.InitGenesis(ctx, ak, gs)

	lk := ledger.NewKeeper(cdc, ledgerKey, ak, ledger.DefaultCodespace)
	ledger.InitGenesis(ctx, lk, ledger.DefaultGenesisState())
	if hooks != nil {
		lk.SetHooks(hooks)
	}

	k := NewKeeper(cdc, rescueKey, ak, lk, DefaultCodespace)
	InitGenesis(ctx, k, DefaultGenesisState())

	return testInput{cdc: cdc, ctx: ctx, ak: ak, lk: lk, k: k}
}
