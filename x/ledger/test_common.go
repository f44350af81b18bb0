package ledger

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
	Addrs = []sdk.AccAddress{
		sdk.AccAddress([]byte("admin_______________")),
		sdk.AccAddress([]byte("minter______________")),
		sdk.AccAddress([]byte("burner______________")),
		sdk.AccAddress([]byte("pauser______________")),
		sdk.AccAddress([]byte("alice_______________")),
		sdk.AccAddress([]byte("bob_________________")),
	}
	AdminAddr  = Addrs[0]
	MinterAddr = Addrs[1]
	BurnerAddr = Addrs[2]
	PauserAddr = Addrs[3]
	AliceAddr  = Addrs[4]
	BobAddr    = Addrs[5]
)

type testInput struct {
	cdc *codec.Codec
	ctx sdk.Context
	ak  access.Keeper
	k   Keeper
}

// setupTestInput builds a ledger keeper backed by a real access keeper. The
// minter, burner and pauser roles are held by the matching test addresses.
func setupTestInput(t *testing.T) testInput {
	db := dbm.NewMemDB()
	accessKey := sdk.NewKVStoreKey(access.StoreKey)
	ledgerKey := sdk.NewKVStoreKey(StoreKey)

	ms := store.NewCommitMultiStore(db)
	ms.MountStoreWithDB(accessKey, sdk.StoreTypeDB, db)
	ms.MountStoreWithDB(ledgerKey, sdk.StoreTypeDB, db)
	require.NoError(t, ms.LoadLatestVersion())

	cdc := codec.New()
	access.RegisterCodec(cdc)
	RegisterCodec(cdc)

	ctx := sdk.NewContext(ms, abci.Header{ChainID: "test-chain-id", Height: 1}, log.NewNopLogger())

	ak := access.NewKeeper(cdc, accessKey, access.DefaultCodespace)
	gs := access.DefaultGenesisState()
	gs.Members = []access.RoleMember{
		{Role: access.RoleDefaultAdmin, Account: AdminAddr},
		{Role: access.RoleMinter, Account: MinterAddr},
		{Role: access.RoleBurner, Account: BurnerAddr},
		{Role: access.RolePauser, Account: PauserAddr},
	}
	access.InitGenesis(ctx, ak, gs)

	k := NewKeeper(cdc, ledgerKey, ak, DefaultCodespace)
	InitGenesis(ctx, k, DefaultGenesisState())

	return testInput{cdc: cdc, ctx: ctx, ak: ak, k: k}
}
