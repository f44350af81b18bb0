package types

import (
	sdk "github.com/hbtc-chain/govledger/types"
)

const (
	TypeMsgSetApprovedBridge  = "set_approved_bridge"
	TypeMsgSetMaxBridgeAmount = "set_max_bridge_amount"
	TypeMsgBridgeTransfer     = "bridge_transfer"
	TypeMsgBridgeTransferFrom = "bridge_transfer_from"
)

var (
	_ sdk.Msg = MsgSetApprovedBridge{}
	_ sdk.Msg = MsgSetMaxBridgeAmount{}
	_ sdk.Msg = MsgBridgeTransfer{}
	_ sdk.Msg = MsgBridgeTransferFrom{}
)

func validateAddress(addr sdk.AccAddress, what string) sdk.Error {
	if addr.Empty() {
		return sdk.ErrInvalidAddress(what + " address can not be empty")
	}
	if err := addr.Validate(); err != nil {
		return sdk.ErrInvalidAddress(what + ": " + err.Error())
	}
	return nil
}

//_____________________________________________________________________

// MsgSetApprovedBridge adds or removes an approved destination.
type MsgSetApprovedBridge struct {
	Admin    sdk.AccAddress `json:"admin"`
	Bridge   sdk.AccAddress `json:"bridge"`
	Approved bool           `json:"approved"`
}

func NewMsgSetApprovedBridge(admin, bridge sdk.AccAddress, approved bool) MsgSetApprovedBridge {
	return MsgSetApprovedBridge{Admin: admin, Bridge: bridge, Approved: approved}
}

func (msg MsgSetApprovedBridge) Route() string { return RouterKey }
func (msg MsgSetApprovedBridge) Type() string  { return TypeMsgSetApprovedBridge }

func (msg MsgSetApprovedBridge) ValidateBasic() sdk.Error {
	if err := validateAddress(msg.Admin, "admin"); err != nil {
		return err
	}
	return validateAddress(msg.Bridge, "bridge")
}

func (msg MsgSetApprovedBridge) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg MsgSetApprovedBridge) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.Admin} }

//_____________________________________________________________________

// MsgSetMaxBridgeAmount sets the largest amount a single bridge transfer may move.
type MsgSetMaxBridgeAmount struct {
	Admin  sdk.AccAddress `json:"admin"`
	Amount sdk.Int        `json:"amount"`
}

func NewMsgSetMaxBridgeAmount(admin sdk.AccAddress, amount sdk.Int) MsgSetMaxBridgeAmount {
	return MsgSetMaxBridgeAmount{Admin: admin, Amount: amount}
}

func (msg MsgSetMaxBridgeAmount) Route() string { return RouterKey }
func (msg MsgSetMaxBridgeAmount) Type() string  { return TypeMsgSetMaxBridgeAmount }

func (msg MsgSetMaxBridgeAmount) ValidateBasic() sdk.Error {
	if err := validateAddress(msg.Admin, "admin"); err != nil {
		return err
	}
	if msg.Amount.IsNegative() {
		return sdk.ErrInvalidAmount("bridge limit can not be negative")
	}
	return nil
}

func (msg MsgSetMaxBridgeAmount) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg MsgSetMaxBridgeAmount) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.Admin} }

//_____________________________________________________________________

// MsgBridgeTransfer moves value to an approved bridge and announces it.
type MsgBridgeTransfer struct {
	Sender          sdk.AccAddress `json:"sender"`
	Destination     sdk.AccAddress `json:"destination"`
	Amount          sdk.Int        `json:"amount"`
	ExternalAddress string         `json:"external_address"`
}

func NewMsgBridgeTransfer(sender, destination sdk.AccAddress, amount sdk.Int, external string) MsgBridgeTransfer {
	return MsgBridgeTransfer{Sender: sender, Destination: destination, Amount: amount, ExternalAddress: external}
}

func (msg MsgBridgeTransfer) Route() string { return RouterKey }
func (msg MsgBridgeTransfer) Type() string  { return TypeMsgBridgeTransfer }

func (msg MsgBridgeTransfer) ValidateBasic() sdk.Error {
	if err := validateAddress(msg.Sender, "sender"); err != nil {
		return err
	}
	if err := validateAddress(msg.Destination, "destination"); err != nil {
		return err
	}
	if msg.Amount.IsNegative() {
		return sdk.ErrInvalidAmount("bridge amount can not be negative")
	}
	return ValidateExternalAddress(msg.ExternalAddress)
}

func (msg MsgBridgeTransfer) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg MsgBridgeTransfer) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.Sender} }

//_____________________________________________________________________

// MsgBridgeTransferFrom bridges value out of Source using the signer's allowance.
type MsgBridgeTransferFrom struct {
	Spender         sdk.AccAddress `json:"spender"`
	Source          sdk.AccAddress `json:"source"`
	Destination     sdk.AccAddress `json:"destination"`
	Amount          sdk.Int        `json:"amount"`
	ExternalAddress string         `json:"external_address"`
}

func NewMsgBridgeTransferFrom(spender, source, destination sdk.AccAddress, amount sdk.Int, external string) MsgBridgeTransferFrom {
	return MsgBridgeTransferFrom{
		Spender:         spender,
		Source:          source,
		Destination:     destination,
		Amount:          amount,
		ExternalAddress: external,
	}
}

func (msg MsgBridgeTransferFrom) Route() string { return RouterKey }
func (msg MsgBridgeTransferFrom) Type() string  { return TypeMsgBridgeTransferFrom }

func (msg MsgBridgeTransferFrom) ValidateBasic() sdk.Error {
	if err := validateAddress(msg.Spender, "spender"); err != nil {
		return err
	}
	if err := validateAddress(msg.Source, "source"); err != nil {
		return err
	}
	if err := validateAddress(msg.Destination, "destination"); err != nil {
		return err
	}
	if msg.Amount.IsNegative() {
		return sdk.ErrInvalidAmount("bridge amount can not be negative")
	}
	return ValidateExternalAddress(msg.ExternalAddress)
}

func (msg MsgBridgeTransferFrom) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg MsgBridgeTransferFrom) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.Spender} }
