package rescue

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/hbtc-chain/govledger/tests/mocks"
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/access"
	"github.com/hbtc-chain/govledger/x/rescue/types"
)

func TestReceive(t *testing.T) {
	input := setupTestInput(t, nil)
	ctx, k := input.ctx.WithEventManager(sdk.NewEventManager()), input.k

	require.Nil(t, k.Receive(ctx, "usdt", sdk.NewInt(30)))
	require.Nil(t, k.Receive(ctx, "usdt", sdk.NewInt(12)))
	require.Equal(t, "42", k.GetCustody(ctx, "usdt", LedgerAddress).String())
	require.Len(t, ctx.EventManager().Events().OfType(types.EventTypeAssetReceived), 2)

	err := k.Receive(ctx, "", sdk.NewInt(1))
	require.True(t, sdk.IsErrorCode(err, DefaultCodespace, CodeInvalidAsset))
	err = k.Receive(ctx, "usdt", sdk.ZeroInt())
	require.True(t, sdk.IsErrorCode(err, sdk.CodespaceRoot, sdk.CodeInvalidAmount))
}

func TestRescueNative(t *testing.T) {
	input := setupTestInput(t, nil)
	ctx, k := input.ctx.WithEventManager(sdk.NewEventManager()), input.k
	require.Nil(t, k.Receive(ctx, NativeAsset, sdk.NewInt(77)))

	_, err := k.RescueNative(ctx, AliceAddr, AliceAddr)
	require.True(t, sdk.IsErrorCode(err, sdk.CodespaceRoot, sdk.CodeUnauthorized))
	_, err = k.RescueNative(ctx, RescuerAddr, sdk.AccAddress{})
	require.True(t, sdk.IsErrorCode(err, sdk.CodespaceRoot, sdk.CodeInvalidAddress))

	amount, err := k.RescueNative(ctx, RescuerAddr, AliceAddr)
	require.Nil(t, err)
	require.Equal(t, "77", amount.String())
	require.True(t, k.GetCustody(ctx, NativeAsset, LedgerAddress).IsZero())
	require.Equal(t, "77", k.GetCustody(ctx, NativeAsset, AliceAddr).String())

	events := ctx.EventManager().Events().OfType(types.EventTypeAssetRescued)
	require.Len(t, events, 1)
	to, _ := events[0].GetAttribute(types.AttributeKeyTo)
	require.Equal(t, AliceAddr.String(), to)

	// nothing left: the second rescue moves zero
	amount, err = k.RescueNative(ctx, RescuerAddr, AliceAddr)
	require.Nil(t, err)
	require.True(t, amount.IsZero())
}

func TestRescueForeignAsset(t *testing.T) {
	input := setupTestInput(t, nil)
	ctx, k := input.ctx, input.k
	require.Nil(t, k.Receive(ctx, "usdt", sdk.NewInt(10)))

	err := k.RescueForeignAsset(ctx, AliceAddr, "usdt", AliceAddr, sdk.NewInt(1))
	require.True(t, sdk.IsErrorCode(err, sdk.CodespaceRoot, sdk.CodeUnauthorized))

	err = k.RescueForeignAsset(ctx, RescuerAddr, "usdt", AliceAddr, sdk.NewInt(11))
	require.True(t, sdk.IsErrorCode(err, sdk.CodespaceRoot, sdk.CodeInsufficientBalance))
	require.Equal(t, "10", k.GetCustody(ctx, "usdt", LedgerAddress).String())

	require.Nil(t, k.RescueForeignAsset(ctx, RescuerAddr, "usdt", AliceAddr, sdk.NewInt(4)))
	require.Equal(t, "6", k.GetCustody(ctx, "usdt", LedgerAddress).String())
	require.Equal(t, "4", k.GetCustody(ctx, "usdt", AliceAddr).String())

	// revoking the role blocks the next rescue
	require.Nil(t, input.ak.RenounceRole(ctx, RescuerAddr, access.RoleRescuer, RescuerAddr))
	err = k.RescueForeignAsset(ctx, RescuerAddr, "usdt", AliceAddr, sdk.NewInt(1))
	require.True(t, sdk.IsErrorCode(err, sdk.CodespaceRoot, sdk.CodeUnauthorized))
}

func TestRescueOwnUnit(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	hooks := mocks.NewMockLedgerHooks(mockCtrl)

	gomock.InOrder(
		hooks.EXPECT().AfterBalanceMoved(gomock.Any(), mocks.AddrEq(sdk.AccAddress{}), mocks.AddrEq(AliceAddr), mocks.IntEq(sdk.NewInt(50))).Times(1),
		hooks.EXPECT().AfterBalanceMoved(gomock.Any(), mocks.AddrEq(AliceAddr), mocks.AddrEq(LedgerAddress), mocks.IntEq(sdk.NewInt(20))).Times(1),
		hooks.EXPECT().AfterBalanceMoved(gomock.Any(), mocks.AddrEq(LedgerAddress), mocks.AddrEq(AliceAddr), mocks.IntEq(sdk.NewInt(15))).Times(1),
	)

	input := setupTestInput(t, hooks)
	ctx, k, lk := input.ctx, input.k, input.lk
	symbol := lk.GetParams(ctx).Symbol

	require.Nil(t, lk.Mint(ctx, MinterAddr, AliceAddr, sdk.NewInt(50)))
	require.Nil(t, lk.Transfer(ctx, AliceAddr, LedgerAddress, sdk.NewInt(20)))

	err := k.RescueForeignAsset(ctx, RescuerAddr, symbol, AliceAddr, sdk.NewInt(21))
	require.True(t, sdk.IsErrorCode(err, sdk.CodespaceRoot, sdk.CodeInsufficientBalance))

	require.Nil(t, input.ak.Pause(ctx, PauserAddr))
	err = k.RescueForeignAsset(ctx, RescuerAddr, symbol, AliceAddr, sdk.NewInt(15))
	require.True(t, sdk.IsErrorCode(err, access.DefaultCodespace, access.CodeHalted))
	require.Nil(t, input.ak.Unpause(ctx, PauserAddr))

	require.Nil(t, k.RescueForeignAsset(ctx, RescuerAddr, symbol, AliceAddr, sdk.NewInt(15)))
	require.Equal(t, "45", lk.GetBalance(ctx, AliceAddr).String())
	require.Equal(t, "5", lk.GetBalance(ctx, LedgerAddress).String())
	require.True(t, k.GetCustody(ctx, symbol, LedgerAddress).IsZero())
}

func TestGenesisRoundTrip(t *testing.T) {
	input := setupTestInput(t, nil)
	ctx, k := input.ctx, input.k
	require.Nil(t, k.Receive(ctx, "usdt", sdk.NewInt(10)))
	require.Nil(t, k.Receive(ctx, NativeAsset, sdk.NewInt(3)))
	require.Nil(t, k.RescueForeignAsset(ctx, RescuerAddr, "usdt", AliceAddr, sdk.NewInt(4)))

	exported := ExportGenesis(ctx, k)
	require.NoError(t, ValidateGenesis(exported))
	require.Len(t, exported.Holdings, 3)

	other := setupTestInput(t, nil)
	InitGenesis(other.ctx, other.k, exported)
	require.Equal(t, "6", other.k.GetCustody(other.ctx, "usdt", LedgerAddress).String())
	require.Equal(t, "4", other.k.GetCustody(other.ctx, "usdt", AliceAddr).String())
	require.Equal(t, "3", other.k.GetCustody(other.ctx, NativeAsset, LedgerAddress).String())

	dup := NewGenesisState([]Holding{
		NewHolding("usdt", AliceAddr, sdk.NewInt(1)),
		NewHolding("usdt", AliceAddr, sdk.NewInt(2)),
	})
	require.Error(t, ValidateGenesis(dup))
	require.Error(t, ValidateGenesis(NewGenesisState([]Holding{NewHolding("usdt", sdk.AccAddress{}, sdk.NewInt(1))})))
}
