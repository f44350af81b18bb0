package types

import (
	sdk "github.com/hbtc-chain/govledger/types"
)

// LedgerKeeper is the balance source of delegated power.
type LedgerKeeper interface {
	GetBalance(ctx sdk.Context, addr sdk.AccAddress) sdk.Int
	IterateBalances(ctx sdk.Context, cb func(addr sdk.AccAddress, amount sdk.Int) (stop bool))
}
