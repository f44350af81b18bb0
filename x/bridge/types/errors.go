package types

import (
	sdk "github.com/hbtc-chain/govledger/types"
)

const (
	DefaultCodespace sdk.CodespaceType = ModuleName

	CodeUnapprovedDestination sdk.CodeType = 101
	CodeAmountExceedsLimit    sdk.CodeType = 102
	CodeInvalidExternal       sdk.CodeType = 103
	CodeUnknownIntent         sdk.CodeType = 104
)

func ErrUnapprovedDestination(codespace sdk.CodespaceType, destination sdk.AccAddress) sdk.Error {
	return sdk.NewError(codespace, CodeUnapprovedDestination, "destination %s is not an approved bridge", destination)
}

func ErrAmountExceedsLimit(codespace sdk.CodespaceType, amount, limit sdk.Int) sdk.Error {
	return sdk.NewError(codespace, CodeAmountExceedsLimit, "amount %s exceeds the bridge limit %s", amount, limit)
}

func ErrInvalidExternal(codespace sdk.CodespaceType, reason string) sdk.Error {
	return sdk.NewError(codespace, CodeInvalidExternal, "invalid external address: %s", reason)
}

func ErrUnknownIntent(codespace sdk.CodespaceType, id string) sdk.Error {
	return sdk.NewError(codespace, CodeUnknownIntent, "no bridge intent %s", id)
}
