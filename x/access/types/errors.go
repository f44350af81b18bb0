package types

import (
	"fmt"

	sdk "github.com/hbtc-chain/govledger/types"
)

type CodeType = sdk.CodeType

const (
	DefaultCodespace sdk.CodespaceType = ModuleName

	CodeHalted      CodeType = 101
	CodeNotHalted   CodeType = 102
	CodeInvalidRole CodeType = 103
)

// ErrHalted is returned by every gated operation while the ledger is paused.
func ErrHalted(codespace sdk.CodespaceType) sdk.Error {
	return sdk.NewError(codespace, CodeHalted, "ledger is paused")
}

func ErrNotHalted(codespace sdk.CodespaceType) sdk.Error {
	return sdk.NewError(codespace, CodeNotHalted, "ledger is not paused")
}

func ErrInvalidRole(codespace sdk.CodespaceType, role Role) sdk.Error {
	return sdk.NewError(codespace, CodeInvalidRole, fmt.Sprintf("invalid role %d", byte(role)))
}

// ErrMissingRole is the Unauthorized error of a failed role check.
func ErrMissingRole(account sdk.AccAddress, role Role) sdk.Error {
	return sdk.ErrUnauthorized(fmt.Sprintf("account %s is missing role %s", account, role))
}
