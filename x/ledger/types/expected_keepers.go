package types

import (
	sdk "github.com/hbtc-chain/govledger/types"
	accesstypes "github.com/hbtc-chain/govledger/x/access/types"
)

// AccessKeeper gates privileged and pausable operations.
type AccessKeeper interface {
	AssertRole(ctx sdk.Context, role accesstypes.Role, account sdk.AccAddress) sdk.Error
	AssertNotPaused(ctx sdk.Context) sdk.Error
}
