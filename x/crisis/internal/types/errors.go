package types

import (
	sdk "github.com/hbtc-chain/govledger/types"
)

const (
	DefaultCodespace sdk.CodespaceType = ModuleName

	CodeUnknownInvariant sdk.CodeType = 101
)

func ErrUnknownInvariant(codespace sdk.CodespaceType) sdk.Error {
	return sdk.NewError(codespace, CodeUnknownInvariant, "unknown invariant")
}
