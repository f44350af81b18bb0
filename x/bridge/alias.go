package bridge

import (
	"github.com/hbtc-chain/govledger/x/bridge/types"
)

const (
	ModuleName       = types.ModuleName
	StoreKey         = types.StoreKey
	RouterKey        = types.RouterKey
	QuerierRoute     = types.QuerierRoute
	DefaultCodespace = types.DefaultCodespace

	CodeUnapprovedDestination = types.CodeUnapprovedDestination
	CodeAmountExceedsLimit    = types.CodeAmountExceedsLimit
	CodeInvalidExternal       = types.CodeInvalidExternal
	CodeUnknownIntent         = types.CodeUnknownIntent
)

type (
	GenesisState     = types.GenesisState
	Intent           = types.Intent
	QueryResRegistry = types.QueryResRegistry

	MsgSetApprovedBridge  = types.MsgSetApprovedBridge
	MsgSetMaxBridgeAmount = types.MsgSetMaxBridgeAmount
	MsgBridgeTransfer     = types.MsgBridgeTransfer
	MsgBridgeTransferFrom = types.MsgBridgeTransferFrom
)

var (
	ModuleCdc           = types.ModuleCdc
	RegisterCodec       = types.RegisterCodec
	NewIntent           = types.NewIntent
	DefaultGenesisState = types.DefaultGenesisState
	NewGenesisState     = types.NewGenesisState
	ValidateGenesis     = types.ValidateGenesis

	NewMsgSetApprovedBridge  = types.NewMsgSetApprovedBridge
	NewMsgSetMaxBridgeAmount = types.NewMsgSetMaxBridgeAmount
	NewMsgBridgeTransfer     = types.NewMsgBridgeTransfer
	NewMsgBridgeTransferFrom = types.NewMsgBridgeTransferFrom
)
