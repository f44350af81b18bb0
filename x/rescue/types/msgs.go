package types

import (
	sdk "github.com/hbtc-chain/govledger/types"
)

const (
	TypeMsgRescueNative       = "rescue_native"
	TypeMsgRescueForeignAsset = "rescue_foreign_asset"
)

var (
	_ sdk.Msg = MsgRescueNative{}
	_ sdk.Msg = MsgRescueForeignAsset{}
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

// MsgRescueNative sends everything the ledger holds of the native asset to To.
type MsgRescueNative struct {
	Rescuer sdk.AccAddress `json:"rescuer"`
	To      sdk.AccAddress `json:"to"`
}

func NewMsgRescueNative(rescuer, to sdk.AccAddress) MsgRescueNative {
	return MsgRescueNative{Rescuer: rescuer, To: to}
}

func (msg MsgRescueNative) Route() string { return RouterKey }
func (msg MsgRescueNative) Type() string  { return TypeMsgRescueNative }

func (msg MsgRescueNative) ValidateBasic() sdk.Error {
	if err := validateAddress(msg.Rescuer, "rescuer"); err != nil {
		return err
	}
	return validateAddress(msg.To, "recipient")
}

func (msg MsgRescueNative) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg MsgRescueNative) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.Rescuer} }

//_____________________________________________________________________

// MsgRescueForeignAsset sends Amount of AssetID held by the ledger to To.
type MsgRescueForeignAsset struct {
	Rescuer sdk.AccAddress `json:"rescuer"`
	AssetID string         `json:"asset_id"`
	To      sdk.AccAddress `json:"to"`
	Amount  sdk.Int        `json:"amount"`
}

func NewMsgRescueForeignAsset(rescuer sdk.AccAddress, asset string, to sdk.AccAddress, amount sdk.Int) MsgRescueForeignAsset {
	return MsgRescueForeignAsset{Rescuer: rescuer, AssetID: asset, To: to, Amount: amount}
}

func (msg MsgRescueForeignAsset) Route() string { return RouterKey }
func (msg MsgRescueForeignAsset) Type() string  { return TypeMsgRescueForeignAsset }

func (msg MsgRescueForeignAsset) ValidateBasic() sdk.Error {
	if err := validateAddress(msg.Rescuer, "rescuer"); err != nil {
		return err
	}
	if err := validateAddress(msg.To, "recipient"); err != nil {
		return err
	}
	if err := ValidateAssetID(msg.AssetID); err != nil {
		return err
	}
	if msg.Amount.IsNegative() {
		return sdk.ErrInvalidAmount("rescue amount can not be negative")
	}
	return nil
}

func (msg MsgRescueForeignAsset) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg MsgRescueForeignAsset) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.Rescuer} }
