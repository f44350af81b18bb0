package bridge

import (
	"testing"

	"github.com/stretchr/testify/require"

	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/access"
	"github.com/hbtc-chain/govledger/x/bridge/types"
	"github.com/hbtc-chain/govledger/x/ledger"
)

const external = "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq"

func TestBridgeTransfer(t *testing.T) {
	input := setupTestInput(t)
	ctx, k := input.ctx.WithEventManager(sdk.NewEventManager()), input.k

	in, err := k.BridgeTransfer(ctx, RelayerAddr, GatewayAddr, sdk.NewInt(400), external)
	require.Nil(t, err)
	require.Equal(t, "4600", input.lk.GetBalance(ctx, RelayerAddr).String())
	require.Equal(t, "400", input.lk.GetBalance(ctx, GatewayAddr).String())

	require.Equal(t, uint64(0), in.Sequence)
	require.True(t, in.Sender.Equals(RelayerAddr))
	require.True(t, in.Operator.Equals(RelayerAddr))
	require.Equal(t, testChainID, in.ChainID)
	require.Equal(t, int64(7), in.Height)
	require.Equal(t, in.ComputeHash().String(), in.Hash)

	events := ctx.EventManager().Events().OfType(types.EventTypeBridgeIntent)
	require.Len(t, events, 1)
	id, _ := events[0].GetAttribute(types.AttributeKeyIntentID)
	require.Equal(t, in.ID, id)
	ext, _ := events[0].GetAttribute(types.AttributeKeyExternalAddress)
	require.Equal(t, external, ext)

	// the ledger transfer happens before the intent is announced
	all := ctx.EventManager().Events()
	require.Equal(t, ledger.EventTypeValueMoved, all[0].Type)
	require.Equal(t, types.EventTypeBridgeIntent, all[len(all)-1].Type)

	stored, ok := k.GetIntent(ctx, in.ID)
	require.True(t, ok)
	require.Equal(t, in.Hash, stored.Hash)
	require.True(t, stored.Amount.Equal(sdk.NewInt(400)))

	in2, err := k.BridgeTransfer(ctx, RelayerAddr, GatewayAddr, sdk.NewInt(1), external)
	require.Nil(t, err)
	require.Equal(t, uint64(1), in2.Sequence)
	require.NotEqual(t, in.ID, in2.ID)
}

func TestBridgeTransferChecks(t *testing.T) {
	input := setupTestInput(t)
	ctx, k := input.ctx, input.k

	_, err := k.BridgeTransfer(ctx, AliceAddr, GatewayAddr, sdk.NewInt(1), external)
	require.True(t, sdk.IsErrorCode(err, sdk.CodespaceRoot, sdk.CodeUnauthorized))

	_, err = k.BridgeTransfer(ctx, RelayerAddr, AliceAddr, sdk.NewInt(1), external)
	require.True(t, sdk.IsErrorCode(err, DefaultCodespace, CodeUnapprovedDestination))

	// the limit is inclusive
	_, err = k.BridgeTransfer(ctx, RelayerAddr, GatewayAddr, sdk.NewInt(1001), external)
	require.True(t, sdk.IsErrorCode(err, DefaultCodespace, CodeAmountExceedsLimit))
	_, err = k.BridgeTransfer(ctx, RelayerAddr, GatewayAddr, sdk.NewInt(1000), external)
	require.Nil(t, err)

	_, err = k.BridgeTransfer(ctx, RelayerAddr, GatewayAddr, sdk.NewInt(1), "  ")
	require.True(t, sdk.IsErrorCode(err, DefaultCodespace, CodeInvalidExternal))

	require.Nil(t, k.SetMaxBridgeAmount(ctx, AdminAddr, sdk.NewInt(10000)))
	_, err = k.BridgeTransfer(ctx, RelayerAddr, GatewayAddr, sdk.NewInt(4001), external)
	require.True(t, sdk.IsErrorCode(err, sdk.CodespaceRoot, sdk.CodeInsufficientBalance))

	// failed attempts leave no intent behind
	var count int
	k.IterateIntents(ctx, func(types.Intent) bool { count++; return false })
	require.Equal(t, 1, count)
}

func TestBridgeTransferPaused(t *testing.T) {
	input := setupTestInput(t)
	ctx, k := input.ctx, input.k

	require.Nil(t, input.ak.Pause(ctx, PauserAddr))
	_, err := k.BridgeTransfer(ctx, RelayerAddr, GatewayAddr, sdk.NewInt(1), external)
	require.True(t, sdk.IsErrorCode(err, access.DefaultCodespace, access.CodeHalted))

	require.Nil(t, input.ak.Unpause(ctx, PauserAddr))
	_, err = k.BridgeTransfer(ctx, RelayerAddr, GatewayAddr, sdk.NewInt(1), external)
	require.Nil(t, err)
}

func TestBridgeTransferFrom(t *testing.T) {
	input := setupTestInput(t)
	ctx, k := input.ctx, input.k

	_, err := k.BridgeTransferFrom(ctx, RelayerAddr, AliceAddr, GatewayAddr, sdk.NewInt(100), external)
	require.True(t, sdk.IsErrorCode(err, ledger.DefaultCodespace, ledger.CodeInsufficientAllowance))

	require.Nil(t, input.lk.Approve(ctx, AliceAddr, RelayerAddr, sdk.NewInt(150)))
	in, err := k.BridgeTransferFrom(ctx, RelayerAddr, AliceAddr, GatewayAddr, sdk.NewInt(100), external)
	require.Nil(t, err)
	require.True(t, in.Sender.Equals(AliceAddr))
	require.True(t, in.Operator.Equals(RelayerAddr))
	require.Equal(t, "4900", input.lk.GetBalance(ctx, AliceAddr).String())
	require.Equal(t, "5000", input.lk.GetBalance(ctx, RelayerAddr).String())
	require.Equal(t, "50", input.lk.GetAllowance(ctx, AliceAddr, RelayerAddr).String())

	// the spender, not the source, needs the bridge role
	require.Nil(t, input.lk.Approve(ctx, RelayerAddr, AliceAddr, sdk.NewInt(150)))
	_, err = k.BridgeTransferFrom(ctx, AliceAddr, RelayerAddr, GatewayAddr, sdk.NewInt(100), external)
	require.True(t, sdk.IsErrorCode(err, sdk.CodespaceRoot, sdk.CodeUnauthorized))

	_, err = k.BridgeTransferFrom(ctx, RelayerAddr, AliceAddr, GatewayAddr, sdk.NewInt(1001), external)
	require.True(t, sdk.IsErrorCode(err, DefaultCodespace, CodeAmountExceedsLimit))
}

func TestRegistryAdmin(t *testing.T) {
	input := setupTestInput(t)
	ctx, k := input.ctx.WithEventManager(sdk.NewEventManager()), input.k

	err := k.SetApprovedBridge(ctx, RelayerAddr, AliceAddr, true)
	require.True(t, sdk.IsErrorCode(err, sdk.CodespaceRoot, sdk.CodeUnauthorized))
	err = k.SetMaxBridgeAmount(ctx, RelayerAddr, sdk.NewInt(1))
	require.True(t, sdk.IsErrorCode(err, sdk.CodespaceRoot, sdk.CodeUnauthorized))
	err = k.SetApprovedBridge(ctx, AdminAddr, sdk.AccAddress{}, true)
	require.True(t, sdk.IsErrorCode(err, sdk.CodespaceRoot, sdk.CodeInvalidAddress))

	require.Nil(t, k.SetApprovedBridge(ctx, AdminAddr, AliceAddr, true))
	require.True(t, k.IsApproved(ctx, AliceAddr))
	require.Len(t, k.GetApprovedBridges(ctx), 2)

	require.Nil(t, k.SetApprovedBridge(ctx, AdminAddr, GatewayAddr, false))
	require.False(t, k.IsApproved(ctx, GatewayAddr))
	_, err = k.BridgeTransfer(ctx, RelayerAddr, GatewayAddr, sdk.NewInt(1), external)
	require.True(t, sdk.IsErrorCode(err, DefaultCodespace, CodeUnapprovedDestination))

	require.Nil(t, k.SetMaxBridgeAmount(ctx, AdminAddr, sdk.ZeroInt()))
	_, err = k.BridgeTransfer(ctx, RelayerAddr, AliceAddr, sdk.NewInt(1), external)
	require.True(t, sdk.IsErrorCode(err, DefaultCodespace, CodeAmountExceedsLimit))

	require.Len(t, ctx.EventManager().Events().OfType(types.EventTypeBridgeApprovalSet), 2)
	require.Len(t, ctx.EventManager().Events().OfType(types.EventTypeBridgeLimitSet), 1)
}

func TestIntentIdentity(t *testing.T) {
	a := types.NewIntent(3, AliceAddr, RelayerAddr, GatewayAddr, sdk.NewInt(5), external, testChainID, 9)
	b := types.NewIntent(3, AliceAddr, RelayerAddr, GatewayAddr, sdk.NewInt(5), external, testChainID, 9)
	require.Equal(t, a.ID, b.ID)
	require.Equal(t, a.Hash, b.Hash)

	other := types.NewIntent(3, AliceAddr, RelayerAddr, GatewayAddr, sdk.NewInt(5), external, "other-chain", 9)
	require.NotEqual(t, a.ID, other.ID)
	require.NotEqual(t, a.Hash, other.Hash)

	// every announced field feeds the ID
	for _, changed := range []types.Intent{
		types.NewIntent(4, AliceAddr, RelayerAddr, GatewayAddr, sdk.NewInt(5), external, testChainID, 9),
		types.NewIntent(3, MinterAddr, RelayerAddr, GatewayAddr, sdk.NewInt(5), external, testChainID, 9),
		types.NewIntent(3, AliceAddr, RelayerAddr, AliceAddr, sdk.NewInt(5), external, testChainID, 9),
		types.NewIntent(3, AliceAddr, RelayerAddr, GatewayAddr, sdk.NewInt(6), external, testChainID, 9),
		types.NewIntent(3, AliceAddr, RelayerAddr, GatewayAddr, sdk.NewInt(5), "ext-other", testChainID, 9),
		types.NewIntent(3, AliceAddr, RelayerAddr, GatewayAddr, sdk.NewInt(5), external, testChainID, 10),
	} {
		require.NotEqual(t, a.ID, changed.ID)
	}

	tampered := a
	tampered.Amount = sdk.NewInt(6)
	require.NotEqual(t, a.Hash, tampered.ComputeHash().String())
}

func TestGenesisRoundTrip(t *testing.T) {
	input := setupTestInput(t)
	ctx, k := input.ctx, input.k

	_, err := k.BridgeTransfer(ctx, RelayerAddr, GatewayAddr, sdk.NewInt(10), external)
	require.Nil(t, err)
	_, err = k.BridgeTransfer(ctx, RelayerAddr, GatewayAddr, sdk.NewInt(20), external)
	require.Nil(t, err)

	exported := ExportGenesis(ctx, k)
	require.NoError(t, ValidateGenesis(exported))
	require.Len(t, exported.Intents, 2)
	require.True(t, exported.MaxTransferAmount.Equal(sdk.NewInt(1000)))

	other := setupTestInput(t)
	InitGenesis(other.ctx, other.k, exported)
	require.Equal(t, exported.Intents[1].Hash, ExportGenesis(other.ctx, other.k).Intents[1].Hash)

	// the sequence resumes after the imported log
	in, err := other.k.BridgeTransfer(other.ctx, RelayerAddr, GatewayAddr, sdk.NewInt(1), external)
	require.Nil(t, err)
	require.Equal(t, uint64(2), in.Sequence)

	msg, broken := IntentLogInvariant(other.k)(other.ctx)
	require.False(t, broken, msg)

	exported.Intents[0].Amount = sdk.NewInt(11)
	require.Error(t, ValidateGenesis(exported))
}

func TestApprovedBridgesAreCopies(t *testing.T) {
	input := setupTestInput(t)
	ctx, k := input.ctx, input.k

	listed := k.GetApprovedBridges(ctx)
	require.Len(t, listed, 1)
	for i := range listed[0] {
		listed[0][i] = 0xff
	}

	require.True(t, k.IsApproved(ctx, GatewayAddr))
	require.True(t, k.GetApprovedBridges(ctx)[0].Equals(GatewayAddr))
}
