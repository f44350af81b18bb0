package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// CodeType - code identifier within codespace
type CodeType uint32

// CodespaceType - codespace identifier
type CodespaceType string

// IsOK - is everything okay?
func (code CodeType) IsOK() bool {
	return code == CodeOK
}

// Root error codes. Modules define their own codes inside their codespace.
const (
	CodeOK                  CodeType = 0
	CodeInternal            CodeType = 1
	CodeTxDecode            CodeType = 2
	CodeInvalidSequence     CodeType = 3
	CodeUnauthorized        CodeType = 4
	CodeInsufficientBalance CodeType = 5
	CodeUnknownRequest      CodeType = 6
	CodeInvalidAddress      CodeType = 7
	CodeInvalidAmount       CodeType = 8
	CodeNoSignatures        CodeType = 9
	CodeReentrantCall       CodeType = 10
	CodeInvalidGenesis      CodeType = 11

	// CodespaceRoot is a codespace for error codes in this file only.
	// Notice that 0 is an "unset" codespace, which can be overridden with
	// Error.WithDefaultCodespace().
	CodespaceUndefined CodespaceType = ""
	CodespaceRoot      CodespaceType = "govledger"
)

func unknownCodeMsg(code CodeType) string {
	return fmt.Sprintf("unknown code %d", code)
}

// CodeToDefaultMsg returns the message used when an error is created
// without one.
func CodeToDefaultMsg(code CodeType) string {
	switch code {
	case CodeInternal:
		return "internal error"
	case CodeTxDecode:
		return "tx parse error"
	case CodeInvalidSequence:
		return "invalid sequence"
	case CodeUnauthorized:
		return "unauthorized"
	case CodeInsufficientBalance:
		return "insufficient balance"
	case CodeUnknownRequest:
		return "unknown request"
	case CodeInvalidAddress:
		return "invalid recipient"
	case CodeInvalidAmount:
		return "invalid amount"
	case CodeNoSignatures:
		return "no signatures supplied"
	case CodeReentrantCall:
		return "reentrant call"
	case CodeInvalidGenesis:
		return "invalid genesis state"
	default:
		return unknownCodeMsg(code)
	}
}

//----------------------------------------
// Error constructors

func ErrInternal(msg string) Error {
	return newErrorWithRootCodespace(CodeInternal, msg)
}
func ErrTxDecode(msg string) Error {
	return newErrorWithRootCodespace(CodeTxDecode, msg)
}
func ErrInvalidSequence(msg string) Error {
	return newErrorWithRootCodespace(CodeInvalidSequence, msg)
}
func ErrUnauthorized(msg string) Error {
	return newErrorWithRootCodespace(CodeUnauthorized, msg)
}
func ErrInsufficientBalance(msg string) Error {
	return newErrorWithRootCodespace(CodeInsufficientBalance, msg)
}
func ErrUnknownRequest(msg string) Error {
	return newErrorWithRootCodespace(CodeUnknownRequest, msg)
}

// ErrInvalidAddress is returned for the null account or a malformed one
// wherever a recipient is required.
func ErrInvalidAddress(msg string) Error {
	return newErrorWithRootCodespace(CodeInvalidAddress, msg)
}
func ErrInvalidAmount(msg string) Error {
	return newErrorWithRootCodespace(CodeInvalidAmount, msg)
}
func ErrNoSignatures(msg string) Error {
	return newErrorWithRootCodespace(CodeNoSignatures, msg)
}
func ErrReentrantCall(msg string) Error {
	return newErrorWithRootCodespace(CodeReentrantCall, msg)
}
func ErrInvalidGenesis(msg string) Error {
	return newErrorWithRootCodespace(CodeInvalidGenesis, msg)
}

//----------------------------------------
// Error & ledgerError

// Error is the error type returned by every state transition.
type Error interface {
	error

	// set codespace
	WithDefaultCodespace(CodespaceType) Error

	Code() CodeType
	Codespace() CodespaceType
	ABCILog() string
	Result() Result
	Cause() error
}

// NewError - create an error.
func NewError(codespace CodespaceType, code CodeType, format string, args ...interface{}) Error {
	return newError(codespace, code, format, args...)
}

func newErrorWithRootCodespace(code CodeType, format string, args ...interface{}) *ledgerError {
	return newError(CodespaceRoot, code, format, args...)
}

func newError(codespace CodespaceType, code CodeType, format string, args ...interface{}) *ledgerError {
	if format == "" {
		format = CodeToDefaultMsg(code)
	}
	return &ledgerError{
		codespace: codespace,
		code:      code,
		cause:     errors.Errorf(format, args...),
	}
}

type ledgerError struct {
	codespace CodespaceType
	code      CodeType
	cause     error
}

// Implements Error.
func (err *ledgerError) WithDefaultCodespace(cs CodespaceType) Error {
	codespace := err.codespace
	if codespace == CodespaceUndefined {
		codespace = cs
	}
	return &ledgerError{
		codespace: codespace,
		code:      err.code,
		cause:     err.cause,
	}
}

func (err *ledgerError) Error() string {
	return fmt.Sprintf(`ERROR:
Codespace: %s
Code: %d
Message: %#v
`, err.codespace, err.code, err.cause.Error())
}

// Implements Error.
func (err *ledgerError) Codespace() CodespaceType {
	return err.codespace
}

// Implements Error.
func (err *ledgerError) Code() CodeType {
	return err.code
}

// Cause returns the underlying message error, carrying its stack trace.
func (err *ledgerError) Cause() error {
	return err.cause
}

// ABCILog renders the error as a single JSON line.
func (err *ledgerError) ABCILog() string {
	jsonErr := humanReadableError{
		Codespace: err.codespace,
		Code:      err.code,
		Message:   err.cause.Error(),
	}

	var buff bytes.Buffer
	enc := json.NewEncoder(&buff)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(jsonErr); err != nil {
		panic(errors.Wrap(err, "failed to encode error log"))
	}

	return strings.TrimSpace(buff.String())
}

func (err *ledgerError) Result() Result {
	return Result{
		Code:      err.Code(),
		Codespace: err.Codespace(),
		Log:       err.ABCILog(),
	}
}

// ErrorFromResult rebuilds an Error from a failed Result.
func ErrorFromResult(res Result) Error {
	if res.IsOK() {
		return nil
	}
	var parsed humanReadableError
	msg := res.Log
	if json.Unmarshal([]byte(res.Log), &parsed) == nil && parsed.Message != "" {
		msg = parsed.Message
	}
	return NewError(res.Codespace, res.Code, "%s", msg)
}

// IsErrorCode reports whether err is an Error in the given codespace with the
// given code.
func IsErrorCode(err error, codespace CodespaceType, code CodeType) bool {
	e, ok := err.(Error)
	if !ok {
		return false
	}
	return e.Codespace() == codespace && e.Code() == code
}

// parses the error into an object-like struct for exporting
type humanReadableError struct {
	Codespace CodespaceType `json:"codespace"`
	Code      CodeType      `json:"code"`
	Message   string        `json:"message"`
}

// AppendMsgToErr appends the message to the end of the error's message.
func AppendMsgToErr(msg string, err string) string {
	msgIdx := strings.Index(err, "message\":\"")
	if msgIdx != -1 {
		errMsg := err[msgIdx+len("message\":\"") : len(err)-2]
		errMsg = fmt.Sprintf("%s; %s", errMsg, msg)
		return fmt.Sprintf("%s%s%s",
			err[:msgIdx+len("message\":\"")],
			errMsg,
			err[len(err)-2:],
		)
	}
	return fmt.Sprintf("%s; %s", msg, err)
}
