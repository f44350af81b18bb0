package types

import (
	"fmt"

	sdk "github.com/hbtc-chain/govledger/types"
)

const (
	DefaultCodespace sdk.CodespaceType = ModuleName

	CodeInsufficientAllowance sdk.CodeType = 101
)

func ErrInsufficientAllowance(codespace sdk.CodespaceType, have, need sdk.Int) sdk.Error {
	return sdk.NewError(codespace, CodeInsufficientAllowance, fmt.Sprintf("allowance %s is less than %s", have, need))
}
