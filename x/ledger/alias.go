package ledger

import (
	"github.com/hbtc-chain/govledger/x/ledger/types"
)

const (
	ModuleName       = types.ModuleName
	StoreKey         = types.StoreKey
	RouterKey        = types.RouterKey
	QuerierRoute     = types.QuerierRoute
	DefaultCodespace = types.DefaultCodespace

	CodeInsufficientAllowance = types.CodeInsufficientAllowance

	EventTypeValueMoved = types.EventTypeValueMoved
	EventTypeApproval   = types.EventTypeApproval
)

type (
	GenesisState     = types.GenesisState
	Params           = types.Params
	Balance          = types.Balance
	Allowance        = types.Allowance
	LedgerHooks      = types.LedgerHooks
	MultiLedgerHooks = types.MultiLedgerHooks

	MsgMint         = types.MsgMint
	MsgBurn         = types.MsgBurn
	MsgTransfer     = types.MsgTransfer
	MsgTransferFrom = types.MsgTransferFrom
	MsgApprove      = types.MsgApprove
)

var (
	ModuleCdc           = types.ModuleCdc
	RegisterCodec       = types.RegisterCodec
	LedgerAddress       = types.LedgerAddress
	DefaultParams       = types.DefaultParams
	NewParams           = types.NewParams
	DefaultGenesisState = types.DefaultGenesisState
	NewGenesisState     = types.NewGenesisState
	ValidateGenesis     = types.ValidateGenesis
	NewMultiLedgerHooks = types.NewMultiLedgerHooks

	NewMsgMint         = types.NewMsgMint
	NewMsgBurn         = types.NewMsgBurn
	NewMsgTransfer     = types.NewMsgTransfer
	NewMsgTransferFrom = types.NewMsgTransferFrom
	NewMsgApprove      = types.NewMsgApprove
)
