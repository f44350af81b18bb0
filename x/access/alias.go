package access

import (
	"github.com/hbtc-chain/govledger/x/access/types"
)

const (
	ModuleName       = types.ModuleName
	StoreKey         = types.StoreKey
	RouterKey        = types.RouterKey
	QuerierRoute     = types.QuerierRoute
	DefaultCodespace = types.DefaultCodespace

	RoleDefaultAdmin = types.RoleDefaultAdmin
	RoleMinter       = types.RoleMinter
	RoleBurner       = types.RoleBurner
	RolePauser       = types.RolePauser
	RoleBridge       = types.RoleBridge
	RoleRescuer      = types.RoleRescuer

	CodeHalted      = types.CodeHalted
	CodeNotHalted   = types.CodeNotHalted
	CodeInvalidRole = types.CodeInvalidRole
)

type (
	Role         = types.Role
	RoleAdmin    = types.RoleAdmin
	RoleMember   = types.RoleMember
	GenesisState = types.GenesisState

	MsgGrantRole    = types.MsgGrantRole
	MsgRevokeRole   = types.MsgRevokeRole
	MsgRenounceRole = types.MsgRenounceRole
	MsgPause        = types.MsgPause
	MsgUnpause      = types.MsgUnpause
)

var (
	ModuleCdc           = types.ModuleCdc
	RegisterCodec       = types.RegisterCodec
	RoleFromString      = types.RoleFromString
	AllRoles            = types.AllRoles
	DefaultGenesisState = types.DefaultGenesisState
	NewGenesisState     = types.NewGenesisState
	ValidateGenesis     = types.ValidateGenesis
	ErrHalted           = types.ErrHalted

	NewMsgGrantRole    = types.NewMsgGrantRole
	NewMsgRevokeRole   = types.NewMsgRevokeRole
	NewMsgRenounceRole = types.NewMsgRenounceRole
	NewMsgPause        = types.NewMsgPause
	NewMsgUnpause      = types.NewMsgUnpause
)
