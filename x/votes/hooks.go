package votes

import (
	sdk "github.com/hbtc-chain/govledger/types"
	ledgertypes "github.com/hbtc-chain/govledger/x/ledger/types"
)

var _ ledgertypes.LedgerHooks = Hooks{}

// Hooks follows balance movements of the ledger.
type Hooks struct {
	k Keeper
}

// Hooks returns the ledger observer of the keeper.
func (k Keeper) Hooks() Hooks {
	return Hooks{k}
}

// AfterBalanceMoved moves amount of power from the delegate of from to the
// delegate of to.
func (h Hooks) AfterBalanceMoved(ctx sdk.Context, from, to sdk.AccAddress, amount sdk.Int) {
	h.k.moveDelegates(ctx, h.k.GetDelegate(ctx, from), h.k.GetDelegate(ctx, to), amount)
}
