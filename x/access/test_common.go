package access

import (
	"testing"

	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	dbm "github.com/tendermint/tm-db"

	"github.com/hbtc-chain/govledger/codec"
	"github.com/hbtc-chain/govledger/store"
	sdk "github.com/hbtc-chain/govledger/types"
)

var (
	Addrs = []sdk.AccAddress{
		sdk.AccAddress([]byte("admin_______________")),
		sdk.AccAddress([]byte("pauser______________")),
		sdk.AccAddress([]byte("minter______________")),
		sdk.AccAddress([]byte("outsider____________")),
	}
	AdminAddr    = Addrs[0]
	PauserAddr   = Addrs[1]
	MinterAddr   = Addrs[2]
	OutsiderAddr = Addrs[3]
)

type testInput struct {
	cdc *codec.Codec
	ctx sdk.Context
	k   Keeper
}

// setupTestInput builds a keeper whose default admin is AdminAddr and whose
// pauser is PauserAddr.
func setupTestInput(t *testing.T) testInput {
	db := dbm.NewMemDB()
	key := sdk.NewKVStoreKey(StoreKey)

	ms := store.NewCommitMultiStore(db)
	ms.MountStoreWithDB(key, sdk.StoreTypeDB, db)
	require.NoError(t, ms.LoadLatestVersion())

	cdc := codec.New()
	RegisterCodec(cdc)

	ctx := sdk.NewContext(ms, abci.Header{ChainID: "test-chain-id", Height: 1}, log.NewNopLogger())
	k := NewKeeper(cdc, key, DefaultCodespace)

	gs := DefaultGenesisState()
	gs.Members = []RoleMember{
		{Role: RoleDefaultAdmin, Account: AdminAddr},
		{Role: RolePauser, Account: PauserAddr},
	}
	InitGenesis(ctx, k, gs)

	return testInput{cdc: cdc, ctx: ctx, k: k}
}
