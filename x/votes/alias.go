package votes

import (
	"github.com/hbtc-chain/govledger/x/votes/types"
)

const (
	ModuleName       = types.ModuleName
	StoreKey         = types.StoreKey
	RouterKey        = types.RouterKey
	QuerierRoute     = types.QuerierRoute
	DefaultCodespace = types.DefaultCodespace

	CodeInvalidSignature = types.CodeInvalidSignature
	CodeNonceMismatch    = types.CodeNonceMismatch
	CodeExpired          = types.CodeExpired
	CodeInvalidQuery     = types.CodeInvalidQuery
)

type (
	GenesisState       = types.GenesisState
	Params             = types.Params
	Checkpoint         = types.Checkpoint
	Checkpoints        = types.Checkpoints
	Delegation         = types.Delegation
	AccountCheckpoints = types.AccountCheckpoints
	Nonce              = types.Nonce
	Domain             = types.Domain

	MsgDelegate      = types.MsgDelegate
	MsgDelegateBySig = types.MsgDelegateBySig
)

var (
	ModuleCdc           = types.ModuleCdc
	RegisterCodec       = types.RegisterCodec
	DefaultParams       = types.DefaultParams
	NewParams           = types.NewParams
	NewCheckpoint       = types.NewCheckpoint
	NewDomain           = types.NewDomain
	SignDelegation      = types.SignDelegation
	DefaultGenesisState = types.DefaultGenesisState
	NewGenesisState     = types.NewGenesisState
	ValidateGenesis     = types.ValidateGenesis

	NewMsgDelegate      = types.NewMsgDelegate
	NewMsgDelegateBySig = types.NewMsgDelegateBySig
)
