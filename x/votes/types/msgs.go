package types

import (
	"github.com/hbtc-chain/govledger/crypto"
	sdk "github.com/hbtc-chain/govledger/types"
)

const (
	TypeMsgDelegate      = "delegate"
	TypeMsgDelegateBySig = "delegate_by_sig"
)

var (
	_ sdk.Msg = MsgDelegate{}
	_ sdk.Msg = MsgDelegateBySig{}
)

// MsgDelegate points the delegator's voting power at Delegatee.
type MsgDelegate struct {
	Delegator sdk.AccAddress `json:"delegator"`
	Delegatee sdk.AccAddress `json:"delegatee"`
}

func NewMsgDelegate(delegator, delegatee sdk.AccAddress) MsgDelegate {
	return MsgDelegate{Delegator: delegator, Delegatee: delegatee}
}

func (msg MsgDelegate) Route() string { return RouterKey }
func (msg MsgDelegate) Type() string  { return TypeMsgDelegate }

func (msg MsgDelegate) ValidateBasic() sdk.Error {
	if msg.Delegator.Empty() {
		return sdk.ErrInvalidAddress("delegator address can not be empty")
	}
	if msg.Delegatee.Empty() {
		return sdk.ErrInvalidAddress("cannot delegate to the null account")
	}
	if err := msg.Delegatee.Validate(); err != nil {
		return sdk.ErrInvalidAddress(err.Error())
	}
	return nil
}

func (msg MsgDelegate) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg MsgDelegate) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.Delegator} }

//_____________________________________________________________________

// MsgDelegateBySig carries a delegation signed off-chain by the delegator.
// Submitter pays for and signs the envelope; the delegator is recovered from
// Signature.
type MsgDelegateBySig struct {
	Submitter sdk.AccAddress `json:"submitter"`
	Delegatee sdk.AccAddress `json:"delegatee"`
	Nonce     uint64         `json:"nonce"`
	Expiry    uint64         `json:"expiry"`
	Signature []byte         `json:"signature"`
}

func NewMsgDelegateBySig(submitter, delegatee sdk.AccAddress, nonce, expiry uint64, sig []byte) MsgDelegateBySig {
	return MsgDelegateBySig{
		Submitter: submitter,
		Delegatee: delegatee,
		Nonce:     nonce,
		Expiry:    expiry,
		Signature: sig,
	}
}

func (msg MsgDelegateBySig) Route() string { return RouterKey }
func (msg MsgDelegateBySig) Type() string  { return TypeMsgDelegateBySig }

func (msg MsgDelegateBySig) ValidateBasic() sdk.Error {
	if msg.Submitter.Empty() {
		return sdk.ErrInvalidAddress("submitter address can not be empty")
	}
	if msg.Delegatee.Empty() {
		return sdk.ErrInvalidAddress("cannot delegate to the null account")
	}
	if len(msg.Signature) != crypto.SignatureLength {
		return ErrInvalidSignature(DefaultCodespace, crypto.ErrSignatureLength.Error())
	}
	return nil
}

func (msg MsgDelegateBySig) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg MsgDelegateBySig) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.Submitter} }
