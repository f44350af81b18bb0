package types

import (
	sdk "github.com/hbtc-chain/govledger/types"
)

const (
	TypeMsgGrantRole    = "grant_role"
	TypeMsgRevokeRole   = "revoke_role"
	TypeMsgRenounceRole = "renounce_role"
	TypeMsgPause        = "pause"
	TypeMsgUnpause      = "unpause"
)

var (
	_ sdk.Msg = MsgGrantRole{}
	_ sdk.Msg = MsgRevokeRole{}
	_ sdk.Msg = MsgRenounceRole{}
	_ sdk.Msg = MsgPause{}
	_ sdk.Msg = MsgUnpause{}
)

func validateRoleMsg(sender, account sdk.AccAddress, role Role) sdk.Error {
	if sender.Empty() {
		return sdk.ErrInvalidAddress("sender address can not be empty")
	}
	if account.Empty() {
		return sdk.ErrInvalidAddress("account address can not be empty")
	}
	if !role.IsValid() {
		return ErrInvalidRole(DefaultCodespace, role)
	}
	return nil
}

// MsgGrantRole adds account to role. Sender must hold the role's admin role.
type MsgGrantRole struct {
	Sender  sdk.AccAddress `json:"sender"`
	Role    Role           `json:"role"`
	Account sdk.AccAddress `json:"account"`
}

func NewMsgGrantRole(sender sdk.AccAddress, role Role, account sdk.AccAddress) MsgGrantRole {
	return MsgGrantRole{Sender: sender, Role: role, Account: account}
}

func (msg MsgGrantRole) Route() string { return RouterKey }
func (msg MsgGrantRole) Type() string  { return TypeMsgGrantRole }
func (msg MsgGrantRole) ValidateBasic() sdk.Error {
	return validateRoleMsg(msg.Sender, msg.Account, msg.Role)
}
func (msg MsgGrantRole) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}
func (msg MsgGrantRole) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.Sender} }

// MsgRevokeRole removes account from role. Sender must hold the role's admin role.
type MsgRevokeRole struct {
	Sender  sdk.AccAddress `json:"sender"`
	Role    Role           `json:"role"`
	Account sdk.AccAddress `json:"account"`
}

func NewMsgRevokeRole(sender sdk.AccAddress, role Role, account sdk.AccAddress) MsgRevokeRole {
	return MsgRevokeRole{Sender: sender, Role: role, Account: account}
}

func (msg MsgRevokeRole) Route() string { return RouterKey }
func (msg MsgRevokeRole) Type() string  { return TypeMsgRevokeRole }
func (msg MsgRevokeRole) ValidateBasic() sdk.Error {
	return validateRoleMsg(msg.Sender, msg.Account, msg.Role)
}
func (msg MsgRevokeRole) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}
func (msg MsgRevokeRole) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.Sender} }

// MsgRenounceRole drops a role the sender holds. Account must equal Sender.
type MsgRenounceRole struct {
	Sender  sdk.AccAddress `json:"sender"`
	Role    Role           `json:"role"`
	Account sdk.AccAddress `json:"account"`
}

func NewMsgRenounceRole(sender sdk.AccAddress, role Role) MsgRenounceRole {
	return MsgRenounceRole{Sender: sender, Role: role, Account: sender}
}

func (msg MsgRenounceRole) Route() string { return RouterKey }
func (msg MsgRenounceRole) Type() string  { return TypeMsgRenounceRole }
func (msg MsgRenounceRole) ValidateBasic() sdk.Error {
	return validateRoleMsg(msg.Sender, msg.Account, msg.Role)
}
func (msg MsgRenounceRole) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}
func (msg MsgRenounceRole) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.Sender} }

// MsgPause halts every transfer-family operation.
type MsgPause struct {
	Sender sdk.AccAddress `json:"sender"`
}

func NewMsgPause(sender sdk.AccAddress) MsgPause { return MsgPause{Sender: sender} }

func (msg MsgPause) Route() string { return RouterKey }
func (msg MsgPause) Type() string  { return TypeMsgPause }
func (msg MsgPause) ValidateBasic() sdk.Error {
	if msg.Sender.Empty() {
		return sdk.ErrInvalidAddress("sender address can not be empty")
	}
	return nil
}
func (msg MsgPause) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}
func (msg MsgPause) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.Sender} }

// MsgUnpause lifts the halt.
type MsgUnpause struct {
	Sender sdk.AccAddress `json:"sender"`
}

func NewMsgUnpause(sender sdk.AccAddress) MsgUnpause { return MsgUnpause{Sender: sender} }

func (msg MsgUnpause) Route() string { return RouterKey }
func (msg MsgUnpause) Type() string  { return TypeMsgUnpause }
func (msg MsgUnpause) ValidateBasic() sdk.Error {
	if msg.Sender.Empty() {
		return sdk.ErrInvalidAddress("sender address can not be empty")
	}
	return nil
}
func (msg MsgUnpause) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}
func (msg MsgUnpause) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.Sender} }
