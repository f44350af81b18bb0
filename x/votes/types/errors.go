package types

import (
	"fmt"

	sdk "github.com/hbtc-chain/govledger/types"
)

const (
	DefaultCodespace sdk.CodespaceType = ModuleName

	CodeInvalidSignature sdk.CodeType = 101
	CodeNonceMismatch    sdk.CodeType = 102
	CodeExpired          sdk.CodeType = 103
	CodeInvalidQuery     sdk.CodeType = 104
)

func ErrInvalidSignature(codespace sdk.CodespaceType, reason string) sdk.Error {
	return sdk.NewError(codespace, CodeInvalidSignature, "invalid delegation signature: %s", reason)
}

func ErrNonceMismatch(codespace sdk.CodespaceType, expected, got uint64) sdk.Error {
	return sdk.NewError(codespace, CodeNonceMismatch, "expected nonce %d, got %d", expected, got)
}

func ErrExpired(codespace sdk.CodespaceType, expiry uint64, now int64) sdk.Error {
	return sdk.NewError(codespace, CodeExpired, "signature expired at %d, block time is %d", expiry, now)
}

// ErrInvalidQuery is returned for markers that are not strictly in the past.
func ErrInvalidQuery(codespace sdk.CodespaceType, marker uint64, height int64) sdk.Error {
	return sdk.NewError(codespace, CodeInvalidQuery, fmt.Sprintf("block %d is not yet determined at height %d", marker, height))
}
