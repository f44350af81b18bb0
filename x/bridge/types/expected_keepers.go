package types

import (
	sdk "github.com/hbtc-chain/govledger/types"
	accesstypes "github.com/hbtc-chain/govledger/x/access/types"
)

// AccessKeeper gates bridge operations.
type AccessKeeper interface {
	AssertRole(ctx sdk.Context, role accesstypes.Role, account sdk.AccAddress) sdk.Error
	AssertNotPaused(ctx sdk.Context) sdk.Error
}

// LedgerKeeper moves the bridged value.
type LedgerKeeper interface {
	Transfer(ctx sdk.Context, from, to sdk.AccAddress, amount sdk.Int) sdk.Error
	TransferFrom(ctx sdk.Context, spender, from, to sdk.AccAddress, amount sdk.Int) sdk.Error
}
