package types

import (
	sdk "github.com/hbtc-chain/govledger/types"
)

const (
	TypeMsgMint         = "mint"
	TypeMsgBurn         = "burn"
	TypeMsgTransfer     = "transfer"
	TypeMsgTransferFrom = "transfer_from"
	TypeMsgApprove      = "approve"
)

var (
	_ sdk.Msg = MsgMint{}
	_ sdk.Msg = MsgBurn{}
	_ sdk.Msg = MsgTransfer{}
	_ sdk.Msg = MsgTransferFrom{}
	_ sdk.Msg = MsgApprove{}
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

// MsgMint creates Amount for To. Sender must hold the minter role.
type MsgMint struct {
	Sender sdk.AccAddress `json:"sender"`
	To     sdk.AccAddress `json:"to"`
	Amount sdk.Int        `json:"amount"`
}

func NewMsgMint(sender, to sdk.AccAddress, amount sdk.Int) MsgMint {
	return MsgMint{Sender: sender, To: to, Amount: amount}
}

func (msg MsgMint) Route() string { return RouterKey }
func (msg MsgMint) Type() string  { return TypeMsgMint }

func (msg MsgMint) ValidateBasic() sdk.Error {
	if err := validateAddress(msg.Sender, "sender"); err != nil {
		return err
	}
	if err := validateAddress(msg.To, "recipient"); err != nil {
		return err
	}
	if !msg.Amount.IsPositive() {
		return sdk.ErrInvalidAmount("mint amount must be positive")
	}
	return nil
}

func (msg MsgMint) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg MsgMint) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.Sender} }

//_____________________________________________________________________

// MsgBurn destroys Amount of the sender's own balance.
type MsgBurn struct {
	Sender sdk.AccAddress `json:"sender"`
	Amount sdk.Int        `json:"amount"`
}

func NewMsgBurn(sender sdk.AccAddress, amount sdk.Int) MsgBurn {
	return MsgBurn{Sender: sender, Amount: amount}
}

func (msg MsgBurn) Route() string { return RouterKey }
func (msg MsgBurn) Type() string  { return TypeMsgBurn }

func (msg MsgBurn) ValidateBasic() sdk.Error {
	if err := validateAddress(msg.Sender, "sender"); err != nil {
		return err
	}
	if !msg.Amount.IsPositive() {
		return sdk.ErrInvalidAmount("burn amount must be positive")
	}
	return nil
}

func (msg MsgBurn) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg MsgBurn) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.Sender} }

//_____________________________________________________________________

// MsgTransfer moves Amount from the signer to To.
type MsgTransfer struct {
	From   sdk.AccAddress `json:"from"`
	To     sdk.AccAddress `json:"to"`
	Amount sdk.Int        `json:"amount"`
}

func NewMsgTransfer(from, to sdk.AccAddress, amount sdk.Int) MsgTransfer {
	return MsgTransfer{From: from, To: to, Amount: amount}
}

func (msg MsgTransfer) Route() string { return RouterKey }
func (msg MsgTransfer) Type() string  { return TypeMsgTransfer }

func (msg MsgTransfer) ValidateBasic() sdk.Error {
	if err := validateAddress(msg.From, "sender"); err != nil {
		return err
	}
	if err := validateAddress(msg.To, "recipient"); err != nil {
		return err
	}
	if msg.Amount.IsNegative() {
		return sdk.ErrInvalidAmount("transfer amount can not be negative")
	}
	return nil
}

func (msg MsgTransfer) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg MsgTransfer) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }

//_____________________________________________________________________

// MsgTransferFrom spends an allowance granted by From to Spender.
type MsgTransferFrom struct {
	Spender sdk.AccAddress `json:"spender"`
	From    sdk.AccAddress `json:"from"`
	To      sdk.AccAddress `json:"to"`
	Amount  sdk.Int        `json:"amount"`
}

func NewMsgTransferFrom(spender, from, to sdk.AccAddress, amount sdk.Int) MsgTransferFrom {
	return MsgTransferFrom{Spender: spender, From: from, To: to, Amount: amount}
}

func (msg MsgTransferFrom) Route() string { return RouterKey }
func (msg MsgTransferFrom) Type() string  { return TypeMsgTransferFrom }

func (msg MsgTransferFrom) ValidateBasic() sdk.Error {
	if err := validateAddress(msg.Spender, "spender"); err != nil {
		return err
	}
	if err := validateAddress(msg.From, "owner"); err != nil {
		return err
	}
	if err := validateAddress(msg.To, "recipient"); err != nil {
		return err
	}
	if msg.Amount.IsNegative() {
		return sdk.ErrInvalidAmount("transfer amount can not be negative")
	}
	return nil
}

func (msg MsgTransferFrom) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg MsgTransferFrom) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.Spender} }

//_____________________________________________________________________

// MsgApprove sets the amount Spender may move out of Owner's balance.
type MsgApprove struct {
	Owner   sdk.AccAddress `json:"owner"`
	Spender sdk.AccAddress `json:"spender"`
	Amount  sdk.Int        `json:"amount"`
}

func NewMsgApprove(owner, spender sdk.AccAddress, amount sdk.Int) MsgApprove {
	return MsgApprove{Owner: owner, Spender: spender, Amount: amount}
}

func (msg MsgApprove) Route() string { return RouterKey }
func (msg MsgApprove) Type() string  { return TypeMsgApprove }

func (msg MsgApprove) ValidateBasic() sdk.Error {
	if err := validateAddress(msg.Owner, "owner"); err != nil {
		return err
	}
	if err := validateAddress(msg.Spender, "spender"); err != nil {
		return err
	}
	if msg.Amount.IsNegative() {
		return sdk.ErrInvalidAmount("allowance can not be negative")
	}
	return nil
}

func (msg MsgApprove) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg MsgApprove) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.Owner} }
