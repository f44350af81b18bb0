package bridge

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

const testChainID = "test-chain-id"

var (
	Addrs = []sdk.AccAddress{
		sdk.AccAddress([]byte("admin_______________")),
		sdk.AccAddress([]byte("minter______________")),
		sdk.AccAddress([]byte("pauser______________")),
		sdk.AccAddress([]byte("relayer_____________")),
		sdk.AccAddress([]byte("alice_______________")),
		sdk.AccAddress([]byte("gateway_____________")),
	}
	AdminAddr   = Addrs[0]
	MinterAddr  = Addrs[1]
	PauserAddr  = Addrs[2]
	RelayerAddr = Addrs[3]
	AliceAddr   = Addrs[4]
	GatewayAddr = Addrs[5]
)

type testInput struct {
	cdc *codec.Codec
	ctx sdk.Context
	ak  access.Keeper
	lk  ledger.Keeper
	k   Keeper
}

// setupTestInput wires access, ledger and bridge keepers over one store.
// RelayerAddr holds the bridge role and GatewayAddr is the only approved
// destination, with a limit of 1000.
func setupTestInput(t *testing.T) testInput {
	db := dbm.NewMemDB()
	accessKey := sdk.NewKVStoreKey(access.StoreKey)
	ledgerKey := sdk.NewKVStoreKey(ledger.StoreKey)
	bridgeKey := sdk.NewKVStoreKey(StoreKey)

	ms := store.NewCommitMultiStore(db)
	ms.MountStoreWithDB(accessKey, sdk.StoreTypeDB, db)
	ms.MountStoreWithDB(ledgerKey, sdk.StoreTypeDB, db)
	ms.MountStoreWithDB(bridgeKey, sdk.StoreTypeDB, db)
	require.NoError(t, ms.LoadLatestVersion())

	cdc := codec.New()
	access.RegisterCodec(cdc)
	ledger.RegisterCodec(cdc)
	RegisterCodec(cdc)

	ctx := sdk.NewContext(ms, abci.Header{ChainID: testChainID, Height: 7}, log.NewNopLogger())

	ak := access.NewKeeper(cdc, accessKey, access.DefaultCodespace)
	gs := access.DefaultGenesisState()
	gs.Members = []access.RoleMember{
		{Role: access.RoleDefaultAdmin, Account: AdminAddr},
		{Role: access.RoleMinter, Account: MinterAddr},
		{Role: access.RolePauser, Account: PauserAddr},
		{Role: access.RoleBridge, Account: RelayerAddr},
	}
	access.InitGenesis(ctx, ak, gs)

	lk := ledger.NewKeeper(cdc, ledgerKey, ak, ledger.DefaultCodespace)
	ledger.InitGenesis(ctx, lk, ledger.DefaultGenesisState())

	k := NewKeeper(cdc, bridgeKey, ak, lk, DefaultCodespace)
	InitGenesis(ctx, k, NewGenesisState([]sdk.AccAddress{GatewayAddr}, sdk.NewInt(1000), nil))

	require.Nil(t, lk.Mint(ctx, MinterAddr, RelayerAddr, sdk.NewInt(5000)))
	require.Nil(t, lk.Mint(ctx, MinterAddr, AliceAddr, sdk.NewInt(5000)))

	return testInput{cdc: cdc, ctx: ctx, ak: ak, lk: lk, k: k}
}
