package types

import (
	sdk "github.com/hbtc-chain/govledger/types"
	accesstypes "github.com/hbtc-chain/govledger/x/access/types"
	ledgertypes "github.com/hbtc-chain/govledger/x/ledger/types"
)

// AccessKeeper gates rescue operations.
type AccessKeeper interface {
	AssertRole(ctx sdk.Context, role accesstypes.Role, account sdk.AccAddress) sdk.Error
}

// LedgerKeeper handles rescues of the ledger's own unit.
type LedgerKeeper interface {
	GetParams(ctx sdk.Context) ledgertypes.Params
	Transfer(ctx sdk.Context, from, to sdk.AccAddress, amount sdk.Int) sdk.Error
}
