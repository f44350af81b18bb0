package votes

import (
	"testing"

	"github.com/stretchr/testify/require"

	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/ledger"
	"github.com/hbtc-chain/govledger/x/votes/types"
)

func requireVotes(t *testing.T, expected int64, got sdk.Int) {
	t.Helper()
	require.True(t, got.Equal(sdk.NewInt(expected)), "expected %d votes, got %s", expected, got)
}

func requireCheckpoints(t *testing.T, expected, got types.Checkpoints) {
	t.Helper()
	require.Len(t, got, len(expected))
	for i := range expected {
		require.Equal(t, expected[i].FromBlock, got[i].FromBlock)
		require.True(t, expected[i].Votes.Equal(got[i].Votes), "checkpoint %d: %s != %s", i, expected[i], got[i])
	}
}

func requireInvariants(t *testing.T, input testInput, ctx sdk.Context) {
	t.Helper()
	msg, broken := AllInvariants(input.k)(ctx)
	require.False(t, broken, msg)
}

func TestDelegateTransferScenario(t *testing.T) {
	input := setupTestInput(t)
	ctx, k, lk := input.ctx, input.k, input.lk

	require.Nil(t, lk.Mint(ctx, MinterAddr, AliceAddr, sdk.NewInt(100)))
	require.Nil(t, k.Delegate(ctx, AliceAddr, BobAddr))
	require.Nil(t, lk.Transfer(ctx, AliceAddr, CarolAddr, sdk.NewInt(40)))

	requireVotes(t, 60, k.GetCurrentVotes(ctx, BobAddr))
	require.Equal(t, "60", lk.GetBalance(ctx, AliceAddr).String())
	require.Equal(t, "40", lk.GetBalance(ctx, CarolAddr).String())
	requireVotes(t, 0, k.GetCurrentVotes(ctx, CarolAddr))
	requireInvariants(t, input, ctx)
}

func TestDelegateToNullAccount(t *testing.T) {
	input := setupTestInput(t)
	err := input.k.Delegate(input.ctx, AliceAddr, sdk.AccAddress{})
	require.True(t, sdk.IsErrorCode(err, sdk.CodespaceRoot, sdk.CodeInvalidAddress))
	require.True(t, input.k.GetDelegate(input.ctx, AliceAddr).Empty())
}

func TestDelegateIsIdempotent(t *testing.T) {
	input := setupTestInput(t)
	ctx, k, lk := input.ctx, input.k, input.lk
	require.Nil(t, lk.Mint(ctx, MinterAddr, AliceAddr, sdk.NewInt(100)))

	ctx = atHeight(ctx, 2)
	require.Nil(t, k.Delegate(ctx, AliceAddr, BobAddr))
	require.Len(t, ctx.EventManager().Events().OfType(types.EventTypeDelegateChanged), 1)
	require.Len(t, ctx.EventManager().Events().OfType(types.EventTypePowerChanged), 1)

	ctx = atHeight(ctx, 3)
	require.Nil(t, k.Delegate(ctx, AliceAddr, BobAddr))
	require.Empty(t, ctx.EventManager().Events())

	require.Equal(t, uint32(1), k.NumCheckpoints(ctx, BobAddr))
	requireVotes(t, 100, k.GetCurrentVotes(ctx, BobAddr))
}

func TestDelegateWithZeroBalance(t *testing.T) {
	input := setupTestInput(t)
	ctx, k, lk := input.ctx, input.k, input.lk

	require.Nil(t, k.Delegate(ctx, AliceAddr, BobAddr))
	require.True(t, k.GetDelegate(ctx, AliceAddr).Equals(BobAddr))
	require.Equal(t, uint32(0), k.NumCheckpoints(ctx, BobAddr))

	// the pointer is live: later balance follows it
	require.Nil(t, lk.Mint(atHeight(ctx, 2), MinterAddr, AliceAddr, sdk.NewInt(7)))
	requireVotes(t, 7, k.GetCurrentVotes(ctx, BobAddr))
}

func TestRedelegate(t *testing.T) {
	input := setupTestInput(t)
	ctx, k, lk := input.ctx, input.k, input.lk
	require.Nil(t, lk.Mint(ctx, MinterAddr, AliceAddr, sdk.NewInt(100)))
	require.Nil(t, k.Delegate(ctx, AliceAddr, BobAddr))

	ctx = atHeight(ctx, 2)
	require.Nil(t, k.Delegate(ctx, AliceAddr, CarolAddr))

	events := ctx.EventManager().Events().OfType(types.EventTypeDelegateChanged)
	require.Len(t, events, 1)
	from, _ := events[0].GetAttribute(types.AttributeKeyFromDelegate)
	require.Equal(t, BobAddr.String(), from)

	requireVotes(t, 0, k.GetCurrentVotes(ctx, BobAddr))
	requireVotes(t, 100, k.GetCurrentVotes(ctx, CarolAddr))
	require.Len(t, k.GetCheckpoints(ctx, BobAddr), 2)
	requireInvariants(t, input, ctx)
}

func TestSelfDelegation(t *testing.T) {
	input := setupTestInput(t)
	ctx, k, lk := input.ctx, input.k, input.lk
	require.Nil(t, k.Delegate(ctx, AliceAddr, AliceAddr))
	require.Nil(t, k.Delegate(ctx, BobAddr, AliceAddr))

	require.Nil(t, lk.Mint(ctx, MinterAddr, AliceAddr, sdk.NewInt(10)))
	require.Nil(t, lk.Mint(ctx, MinterAddr, BobAddr, sdk.NewInt(5)))
	requireVotes(t, 15, k.GetCurrentVotes(ctx, AliceAddr))

	// both sides share a delegate, power does not move
	ctx = atHeight(ctx, 2)
	require.Nil(t, lk.Transfer(ctx, BobAddr, AliceAddr, sdk.NewInt(5)))
	require.Empty(t, ctx.EventManager().Events().OfType(types.EventTypePowerChanged))
	requireVotes(t, 15, k.GetCurrentVotes(ctx, AliceAddr))
	requireInvariants(t, input, ctx)
}

func TestSameBlockUpdatesCollapse(t *testing.T) {
	input := setupTestInput(t)
	ctx, k, lk := input.ctx, input.k, input.lk

	ctx = atHeight(ctx, 5)
	require.Nil(t, k.Delegate(ctx, AliceAddr, BobAddr))
	require.Nil(t, lk.Mint(ctx, MinterAddr, AliceAddr, sdk.NewInt(100)))
	require.Nil(t, lk.Transfer(ctx, AliceAddr, CarolAddr, sdk.NewInt(30)))

	requireCheckpoints(t, types.Checkpoints{types.NewCheckpoint(5, sdk.NewInt(70))}, k.GetCheckpoints(ctx, BobAddr))
	// every write still reports its own change
	require.Len(t, ctx.EventManager().Events().OfType(types.EventTypePowerChanged), 2)

	ctx = atHeight(ctx, 6)
	require.Nil(t, lk.Transfer(ctx, AliceAddr, CarolAddr, sdk.NewInt(10)))
	require.Equal(t, uint32(2), k.NumCheckpoints(ctx, BobAddr))
	requireInvariants(t, input, ctx)
}

func TestGetPriorVotes(t *testing.T) {
	input := setupTestInput(t)
	ctx, k, lk := input.ctx, input.k, input.lk

	// builds the history [(10,100) (20,150) (30,90)] for bob
	require.Nil(t, lk.Mint(atHeight(ctx, 10), MinterAddr, AliceAddr, sdk.NewInt(100)))
	require.Nil(t, k.Delegate(atHeight(ctx, 10), AliceAddr, BobAddr))
	require.Nil(t, lk.Mint(atHeight(ctx, 20), MinterAddr, AliceAddr, sdk.NewInt(50)))
	require.Nil(t, lk.Transfer(atHeight(ctx, 30), AliceAddr, CarolAddr, sdk.NewInt(60)))
	requireCheckpoints(t, types.Checkpoints{
		types.NewCheckpoint(10, sdk.NewInt(100)),
		types.NewCheckpoint(20, sdk.NewInt(150)),
		types.NewCheckpoint(30, sdk.NewInt(90)),
	}, k.GetCheckpoints(ctx, BobAddr))

	ctx = atHeight(ctx, 40)
	cases := []struct {
		block    uint64
		expected int64
	}{
		{0, 0},
		{5, 0},
		{9, 0},
		{10, 100},
		{15, 100},
		{19, 100},
		{20, 150},
		{25, 150},
		{30, 90},
		{39, 90},
	}
	for _, tc := range cases {
		votes, err := k.GetPriorVotes(ctx, BobAddr, tc.block)
		require.Nil(t, err)
		requireVotes(t, tc.expected, votes)
	}

	// only strictly past blocks are determined
	_, err := k.GetPriorVotes(ctx, BobAddr, 40)
	require.True(t, sdk.IsErrorCode(err, DefaultCodespace, CodeInvalidQuery))
	_, err = k.GetPriorVotes(ctx, BobAddr, 41)
	require.True(t, sdk.IsErrorCode(err, DefaultCodespace, CodeInvalidQuery))

	votes, err := k.GetPriorVotes(ctx, CarolAddr, 39)
	require.Nil(t, err)
	requireVotes(t, 0, votes)
}

func TestGetPriorVotesMatchesLinearScan(t *testing.T) {
	input := setupTestInput(t)
	ctx, k, lk := input.ctx, input.k, input.lk
	require.Nil(t, k.Delegate(ctx, AliceAddr, BobAddr))

	// odd heights only, so the search also hits the gaps
	for h := int64(3); h < 200; h += 2 {
		require.Nil(t, lk.Mint(atHeight(ctx, h), MinterAddr, AliceAddr, sdk.NewInt(h)))
	}
	history := k.GetCheckpoints(ctx, BobAddr)
	require.Len(t, history, 99)

	linear := func(block uint64) sdk.Int {
		votes := sdk.ZeroInt()
		for _, c := range history {
			if c.FromBlock <= block {
				votes = c.Votes
			}
		}
		return votes
	}

	ctx = atHeight(ctx, 300)
	for block := uint64(0); block < 300; block++ {
		votes, err := k.GetPriorVotes(ctx, BobAddr, block)
		require.Nil(t, err)
		require.True(t, linear(block).Equal(votes), "block %d: %s != %s", block, linear(block), votes)
	}
}

func TestBurnReducesDelegatedPower(t *testing.T) {
	input := setupTestInput(t)
	ctx, k, lk := input.ctx, input.k, input.lk
	require.Nil(t, lk.Mint(ctx, MinterAddr, AliceAddr, sdk.NewInt(100)))
	require.Nil(t, k.Delegate(ctx, AliceAddr, BobAddr))

	// approved spenders move power too
	require.Nil(t, lk.Approve(ctx, AliceAddr, CarolAddr, sdk.NewInt(25)))
	require.Nil(t, lk.TransferFrom(ctx, CarolAddr, AliceAddr, CarolAddr, sdk.NewInt(25)))
	requireVotes(t, 75, k.GetCurrentVotes(ctx, BobAddr))
	requireInvariants(t, input, ctx)
}

func TestGenesisRoundTrip(t *testing.T) {
	input := setupTestInput(t)
	ctx, k, lk := input.ctx, input.k, input.lk
	require.Nil(t, lk.Mint(atHeight(ctx, 2), MinterAddr, AliceAddr, sdk.NewInt(100)))
	require.Nil(t, k.Delegate(atHeight(ctx, 3), AliceAddr, BobAddr))
	require.Nil(t, lk.Transfer(atHeight(ctx, 4), AliceAddr, CarolAddr, sdk.NewInt(1)))
	k.setNonce(ctx, AliceAddr, 3)

	gs := ExportGenesis(ctx, k)
	require.NoError(t, ValidateGenesis(gs))
	require.Len(t, gs.Delegations, 1)
	require.Len(t, gs.Checkpoints, 1)
	require.Equal(t, []Nonce{{Account: AliceAddr, Nonce: 3}}, gs.Nonces)

	other := setupTestInput(t)
	ledger.InitGenesis(other.ctx, other.lk, ledger.ExportGenesis(ctx, lk))
	InitGenesis(other.ctx, other.k, gs)
	requireCheckpoints(t, k.GetCheckpoints(ctx, BobAddr), other.k.GetCheckpoints(other.ctx, BobAddr))
	require.Equal(t, uint64(3), other.k.GetNonce(other.ctx, AliceAddr))
	requireInvariants(t, other, other.ctx)
}

func TestGenesisReconcilesPower(t *testing.T) {
	input := setupTestInput(t)
	ctx := input.ctx
	require.Nil(t, input.lk.Mint(ctx, MinterAddr, AliceAddr, sdk.NewInt(100)))

	gs := DefaultGenesisState()
	gs.Delegations = []Delegation{{Delegator: AliceAddr, Delegatee: BobAddr}}
	InitGenesis(ctx, input.k, gs)

	requireVotes(t, 100, input.k.GetCurrentVotes(ctx, BobAddr))
	requireInvariants(t, input, ctx)
}

func TestInvariantDetectsDrift(t *testing.T) {
	input := setupTestInput(t)
	ctx, k, lk := input.ctx, input.k, input.lk
	require.Nil(t, lk.Mint(ctx, MinterAddr, AliceAddr, sdk.NewInt(100)))
	require.Nil(t, k.Delegate(ctx, AliceAddr, BobAddr))

	k.writeCheckpoint(ctx, BobAddr, sdk.NewInt(100), sdk.NewInt(99))
	_, broken := DelegatedPowerInvariant(k)(ctx)
	require.True(t, broken)

	k.setCheckpoint(ctx, CarolAddr, 0, types.NewCheckpoint(5, sdk.ZeroInt()))
	k.setCheckpoint(ctx, CarolAddr, 1, types.NewCheckpoint(5, sdk.ZeroInt()))
	k.setNumCheckpoints(ctx, CarolAddr, 2)
	_, broken = CheckpointOrderInvariant(k)(ctx)
	require.True(t, broken)
}

func TestInvariantReportIsStable(t *testing.T) {
	input := setupTestInput(t)
	ctx, k, lk := input.ctx, input.k, input.lk
	require.Nil(t, lk.Mint(ctx, MinterAddr, AliceAddr, sdk.NewInt(100)))
	require.Nil(t, lk.Mint(ctx, MinterAddr, MinterAddr, sdk.NewInt(50)))

	// pointers without the matching checkpoints
	k.setDelegatePointer(ctx, AliceAddr, BobAddr)
	k.setDelegatePointer(ctx, MinterAddr, CarolAddr)

	first, broken := DelegatedPowerInvariant(k)(ctx)
	require.True(t, broken)
	for i := 0; i < 10; i++ {
		msg, _ := DelegatedPowerInvariant(k)(ctx)
		require.Equal(t, first, msg)
	}
}

func TestGenesisContinuesBlockMarkers(t *testing.T) {
	input := setupTestInput(t)
	ctx, k, lk := input.ctx, input.k, input.lk
	require.Nil(t, lk.Mint(atHeight(ctx, 2), MinterAddr, AliceAddr, sdk.NewInt(100)))
	require.Nil(t, k.Delegate(atHeight(ctx, 2), AliceAddr, BobAddr))
	require.Nil(t, lk.Transfer(atHeight(ctx, 3), AliceAddr, CarolAddr, sdk.NewInt(10)))

	// exported while block 5 would be the next one
	gs := ExportGenesis(atHeight(ctx, 5), k)
	require.Equal(t, uint64(4), gs.BaseHeight)
	require.NoError(t, ValidateGenesis(gs))

	other := setupTestInput(t)
	genesisCtx := atHeight(other.ctx, 0)
	ledger.InitGenesis(genesisCtx, other.lk, ledger.ExportGenesis(ctx, lk))
	InitGenesis(genesisCtx, other.k, gs)
	require.Equal(t, uint64(4), other.k.BlockMarker(genesisCtx))

	// the first block of the new chain is marked after the exported history
	block1 := atHeight(other.ctx, 1)
	require.Equal(t, uint64(5), other.k.BlockMarker(block1))
	require.Nil(t, other.lk.Transfer(block1, AliceAddr, CarolAddr, sdk.NewInt(40)))
	requireCheckpoints(t, types.Checkpoints{
		types.NewCheckpoint(2, sdk.NewInt(100)),
		types.NewCheckpoint(3, sdk.NewInt(90)),
		types.NewCheckpoint(5, sdk.NewInt(50)),
	}, other.k.GetCheckpoints(block1, BobAddr))
	requireInvariants(t, other, block1)

	// exported history stays queryable
	votes, err := other.k.GetPriorVotes(block1, BobAddr, 3)
	require.Nil(t, err)
	requireVotes(t, 90, votes)
	_, err = other.k.GetPriorVotes(block1, BobAddr, 5)
	require.True(t, sdk.IsErrorCode(err, DefaultCodespace, CodeInvalidQuery))

	// a second export keeps counting
	again := ExportGenesis(atHeight(other.ctx, 3), other.k)
	require.Equal(t, uint64(6), again.BaseHeight)
}

func TestValidateGenesisRejectsMarkersPastBase(t *testing.T) {
	gs := DefaultGenesisState()
	gs.BaseHeight = 3
	gs.Checkpoints = []AccountCheckpoints{{
		Account:     BobAddr,
		Checkpoints: types.Checkpoints{types.NewCheckpoint(2, sdk.NewInt(1)), types.NewCheckpoint(3, sdk.NewInt(2))},
	}}
	require.NoError(t, ValidateGenesis(gs))

	gs.BaseHeight = 2
	require.Error(t, ValidateGenesis(gs))
}

func TestExportedAddressesAreCopies(t *testing.T) {
	input := setupTestInput(t)
	ctx, k, lk := input.ctx, input.k, input.lk
	require.Nil(t, lk.Mint(ctx, MinterAddr, AliceAddr, sdk.NewInt(10)))
	require.Nil(t, k.Delegate(ctx, AliceAddr, BobAddr))

	gs := ExportGenesis(ctx, k)
	require.Len(t, gs.Delegations, 1)
	for _, addr := range []sdk.AccAddress{gs.Delegations[0].Delegator, gs.Delegations[0].Delegatee, gs.Checkpoints[0].Account} {
		for i := range addr {
			addr[i] = 0xff
		}
	}

	require.True(t, k.GetDelegate(ctx, AliceAddr).Equals(BobAddr))
	again := ExportGenesis(ctx, k)
	require.True(t, again.Delegations[0].Delegator.Equals(AliceAddr))
	require.True(t, again.Delegations[0].Delegatee.Equals(BobAddr))
	require.True(t, again.Checkpoints[0].Account.Equals(BobAddr))
}
