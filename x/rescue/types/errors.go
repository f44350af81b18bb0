package types

import (
	sdk "github.com/hbtc-chain/govledger/types"
)

const (
	DefaultCodespace sdk.CodespaceType = ModuleName

	CodeInvalidAsset sdk.CodeType = 101
)

func ErrInvalidAsset(codespace sdk.CodespaceType, asset string) sdk.Error {
	return sdk.NewError(codespace, CodeInvalidAsset, "invalid asset id %q", asset)
}
