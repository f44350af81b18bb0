package types

import (
	sdk "github.com/hbtc-chain/govledger/types"
)

// LedgerHooks observe balance movements. A null from is a mint and a null to
// is a burn.
type LedgerHooks interface {
	AfterBalanceMoved(ctx sdk.Context, from, to sdk.AccAddress, amount sdk.Int)
}

// MultiLedgerHooks fans a movement out to several observers in order.
type MultiLedgerHooks []LedgerHooks

func NewMultiLedgerHooks(hooks ...LedgerHooks) MultiLedgerHooks {
	return hooks
}

func (h MultiLedgerHooks) AfterBalanceMoved(ctx sdk.Context, from, to sdk.AccAddress, amount sdk.Int) {
	for i := range h {
		h[i].AfterBalanceMoved(ctx, from, to, amount)
	}
}
