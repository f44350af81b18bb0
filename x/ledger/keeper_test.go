package ledger

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/hbtc-chain/govledger/tests/mocks"
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/access"
	"github.com/hbtc-chain/govledger/x/ledger/types"
)

func TestMint(t *testing.T) {
	input := setupTestInput(t)
	ctx, k := input.ctx, input.k

	err := k.Mint(ctx, AliceAddr, AliceAddr, sdk.NewInt(100))
	require.True(t, sdk.IsErrorCode(err, sdk.CodespaceRoot, sdk.CodeUnauthorized))

	err = k.Mint(ctx, MinterAddr, sdk.AccAddress{}, sdk.NewInt(100))
	require.True(t, sdk.IsErrorCode(err, sdk.CodespaceRoot, sdk.CodeInvalidAddress))

	err = k.Mint(ctx, MinterAddr, AliceAddr, sdk.ZeroInt())
	require.True(t, sdk.IsErrorCode(err, sdk.CodespaceRoot, sdk.CodeInvalidAmount))

	ctx = ctx.WithEventManager(sdk.NewEventManager())
	require.Nil(t, k.Mint(ctx, MinterAddr, AliceAddr, sdk.NewInt(100)))
	require.Equal(t, "100", k.GetBalance(ctx, AliceAddr).String())
	require.Equal(t, "100", k.GetSupply(ctx).String())

	events := ctx.EventManager().Events().OfType(types.EventTypeValueMoved)
	require.Len(t, events, 1)
	from, _ := events[0].GetAttribute(types.AttributeKeyFrom)
	require.Equal(t, sdk.AccAddress{}.String(), from)
	amount, _ := events[0].GetAttribute(types.AttributeKeyAmount)
	require.Equal(t, "100", amount)
}

func TestMintOverflow(t *testing.T) {
	input := setupTestInput(t)
	ctx, k := input.ctx, input.k

	require.Nil(t, k.Mint(ctx, MinterAddr, AliceAddr, sdk.MaxUint256()))
	err := k.Mint(ctx, MinterAddr, BobAddr, sdk.NewInt(1))
	require.True(t, sdk.IsErrorCode(err, sdk.CodespaceRoot, sdk.CodeInvalidAmount))
	require.True(t, k.GetBalance(ctx, BobAddr).IsZero())
	require.True(t, k.GetSupply(ctx).Equal(sdk.MaxUint256()))
}

func TestBurnSelf(t *testing.T) {
	input := setupTestInput(t)
	ctx, k := input.ctx, input.k
	require.Nil(t, k.Mint(ctx, MinterAddr, BurnerAddr, sdk.NewInt(50)))

	err := k.BurnSelf(ctx, AliceAddr, sdk.NewInt(1))
	require.True(t, sdk.IsErrorCode(err, sdk.CodespaceRoot, sdk.CodeUnauthorized))

	// burning exactly the balance is allowed, one more is not
	err = k.BurnSelf(ctx, BurnerAddr, sdk.NewInt(51))
	require.True(t, sdk.IsErrorCode(err, sdk.CodespaceRoot, sdk.CodeInsufficientBalance))
	require.Nil(t, k.BurnSelf(ctx, BurnerAddr, sdk.NewInt(50)))
	require.True(t, k.GetBalance(ctx, BurnerAddr).IsZero())
	require.True(t, k.GetSupply(ctx).IsZero())
}

func TestTransfer(t *testing.T) {
	input := setupTestInput(t)
	ctx, k := input.ctx, input.k
	require.Nil(t, k.Mint(ctx, MinterAddr, AliceAddr, sdk.NewInt(100)))

	err := k.Transfer(ctx, AliceAddr, sdk.AccAddress{}, sdk.NewInt(1))
	require.True(t, sdk.IsErrorCode(err, sdk.CodespaceRoot, sdk.CodeInvalidAddress))

	err = k.Transfer(ctx, AliceAddr, BobAddr, sdk.NewInt(101))
	require.True(t, sdk.IsErrorCode(err, sdk.CodespaceRoot, sdk.CodeInsufficientBalance))

	require.Nil(t, k.Transfer(ctx, AliceAddr, BobAddr, sdk.NewInt(40)))
	require.Equal(t, "60", k.GetBalance(ctx, AliceAddr).String())
	require.Equal(t, "40", k.GetBalance(ctx, BobAddr).String())

	// zero transfers and self transfers succeed and change nothing
	require.Nil(t, k.Transfer(ctx, AliceAddr, BobAddr, sdk.ZeroInt()))
	require.Nil(t, k.Transfer(ctx, AliceAddr, AliceAddr, sdk.NewInt(60)))
	require.Equal(t, "60", k.GetBalance(ctx, AliceAddr).String())
	require.Equal(t, "100", k.GetSupply(ctx).String())
}

func TestAllowance(t *testing.T) {
	input := setupTestInput(t)
	ctx, k := input.ctx, input.k
	require.Nil(t, k.Mint(ctx, MinterAddr, AliceAddr, sdk.NewInt(100)))

	err := k.Approve(ctx, AliceAddr, sdk.AccAddress{}, sdk.NewInt(10))
	require.True(t, sdk.IsErrorCode(err, sdk.CodespaceRoot, sdk.CodeInvalidAddress))

	ctx = ctx.WithEventManager(sdk.NewEventManager())
	require.Nil(t, k.Approve(ctx, AliceAddr, BobAddr, sdk.NewInt(30)))
	require.Len(t, ctx.EventManager().Events().OfType(types.EventTypeApproval), 1)
	require.Equal(t, "30", k.GetAllowance(ctx, AliceAddr, BobAddr).String())

	err = k.TransferFrom(ctx, BobAddr, AliceAddr, BobAddr, sdk.NewInt(31))
	require.True(t, sdk.IsErrorCode(err, DefaultCodespace, CodeInsufficientAllowance))

	require.Nil(t, k.TransferFrom(ctx, BobAddr, AliceAddr, BobAddr, sdk.NewInt(20)))
	require.Equal(t, "10", k.GetAllowance(ctx, AliceAddr, BobAddr).String())
	require.Equal(t, "20", k.GetBalance(ctx, BobAddr).String())

	// approve overwrites rather than adds
	require.Nil(t, k.Approve(ctx, AliceAddr, BobAddr, sdk.NewInt(5)))
	require.Equal(t, "5", k.GetAllowance(ctx, AliceAddr, BobAddr).String())
}

func TestPausedLedger(t *testing.T) {
	input := setupTestInput(t)
	ctx, k := input.ctx, input.k
	require.Nil(t, k.Mint(ctx, MinterAddr, AliceAddr, sdk.NewInt(100)))
	require.Nil(t, k.Mint(ctx, MinterAddr, BurnerAddr, sdk.NewInt(100)))
	require.Nil(t, input.ak.Pause(ctx, PauserAddr))

	halted := func(err sdk.Error) bool {
		return sdk.IsErrorCode(err, access.DefaultCodespace, access.CodeHalted)
	}
	require.True(t, halted(k.Mint(ctx, MinterAddr, AliceAddr, sdk.NewInt(1))))
	require.True(t, halted(k.BurnSelf(ctx, BurnerAddr, sdk.NewInt(1))))
	require.True(t, halted(k.Transfer(ctx, AliceAddr, BobAddr, sdk.NewInt(1))))
	require.True(t, halted(k.TransferFrom(ctx, BobAddr, AliceAddr, BobAddr, sdk.NewInt(1))))

	// approvals stay open
	require.Nil(t, k.Approve(ctx, AliceAddr, BobAddr, sdk.NewInt(1)))

	require.Nil(t, input.ak.Unpause(ctx, PauserAddr))
	require.Nil(t, k.Transfer(ctx, AliceAddr, BobAddr, sdk.NewInt(1)))
}

func TestHooksObserveEveryMovement(t *testing.T) {
	input := setupTestInput(t)
	ctx, k := input.ctx, input.k

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	hooks := mocks.NewMockLedgerHooks(mockCtrl)
	k.SetHooks(hooks)

	gomock.InOrder(
		hooks.EXPECT().AfterBalanceMoved(gomock.Any(), mocks.AddrEq(sdk.AccAddress{}), mocks.AddrEq(BurnerAddr), mocks.IntEq(sdk.NewInt(10))).Times(1),
		hooks.EXPECT().AfterBalanceMoved(gomock.Any(), mocks.AddrEq(BurnerAddr), mocks.AddrEq(AliceAddr), mocks.IntEq(sdk.NewInt(4))).Times(1),
		hooks.EXPECT().AfterBalanceMoved(gomock.Any(), mocks.AddrEq(BurnerAddr), mocks.AddrEq(sdk.AccAddress{}), mocks.IntEq(sdk.NewInt(6))).Times(1),
	)

	require.Nil(t, k.Mint(ctx, MinterAddr, BurnerAddr, sdk.NewInt(10)))
	require.Nil(t, k.Transfer(ctx, BurnerAddr, AliceAddr, sdk.NewInt(4)))
	require.Nil(t, k.BurnSelf(ctx, BurnerAddr, sdk.NewInt(6)))

	// failed movements never reach the hooks
	require.NotNil(t, k.Transfer(ctx, BurnerAddr, AliceAddr, sdk.NewInt(1)))
}

func TestSetHooksTwicePanics(t *testing.T) {
	input := setupTestInput(t)
	k := input.k
	k.SetHooks(NewMultiLedgerHooks())
	require.Panics(t, func() { k.SetHooks(NewMultiLedgerHooks()) })
}

func TestInvariants(t *testing.T) {
	input := setupTestInput(t)
	ctx, k := input.ctx, input.k
	require.Nil(t, k.Mint(ctx, MinterAddr, AliceAddr, sdk.NewInt(100)))
	require.Nil(t, k.Transfer(ctx, AliceAddr, BobAddr, sdk.NewInt(30)))

	_, broken := AllInvariants(k)(ctx)
	require.False(t, broken)

	k.setBalance(ctx, BobAddr, sdk.NewInt(31))
	msg, broken := TotalSupplyInvariant(k)(ctx)
	require.True(t, broken)
	require.Contains(t, msg, "total supply")
}

func TestGenesisRoundTrip(t *testing.T) {
	input := setupTestInput(t)
	ctx, k := input.ctx, input.k
	require.Nil(t, k.Mint(ctx, MinterAddr, AliceAddr, sdk.NewInt(100)))
	require.Nil(t, k.Transfer(ctx, AliceAddr, BobAddr, sdk.NewInt(25)))
	require.Nil(t, k.Approve(ctx, AliceAddr, BobAddr, sdk.NewInt(7)))

	gs := ExportGenesis(ctx, k)
	require.NoError(t, ValidateGenesis(gs))
	require.Len(t, gs.Balances, 2)
	require.Len(t, gs.Allowances, 1)

	other := setupTestInput(t)
	InitGenesis(other.ctx, other.k, gs)
	require.Equal(t, "100", other.k.GetSupply(other.ctx).String())
	require.Equal(t, "75", other.k.GetBalance(other.ctx, AliceAddr).String())
	require.Equal(t, "7", other.k.GetAllowance(other.ctx, AliceAddr, BobAddr).String())
}

func TestValidateGenesis(t *testing.T) {
	gs := DefaultGenesisState()
	require.NoError(t, ValidateGenesis(gs))

	gs.Balances = []Balance{{Address: sdk.AccAddress{}, Amount: sdk.NewInt(1)}}
	require.Error(t, ValidateGenesis(gs))

	gs.Balances = []Balance{
		{Address: AliceAddr, Amount: sdk.NewInt(1)},
		{Address: AliceAddr, Amount: sdk.NewInt(2)},
	}
	require.Error(t, ValidateGenesis(gs))

	gs.Balances = []Balance{
		{Address: AliceAddr, Amount: sdk.MaxUint256()},
		{Address: BobAddr, Amount: sdk.NewInt(1)},
	}
	require.Error(t, ValidateGenesis(gs))
}
