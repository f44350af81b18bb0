package types

import (
	sdk "github.com/hbtc-chain/govledger/types"
	accesstypes "github.com/hbtc-chain/govledger/x/access/types"
)

// AccessKeeper gates invariant checks and halts the ledger when one breaks (noalias)
type AccessKeeper interface {
	AssertRole(ctx sdk.Context, role accesstypes.Role, account sdk.AccAddress) sdk.Error
	IsPaused(ctx sdk.Context) bool
	Pause(ctx sdk.Context, caller sdk.AccAddress) sdk.Error
}
