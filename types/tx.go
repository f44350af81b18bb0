package types

import (
	"encoding/json"
)

// StdTx is a single message signed by its first signer. Sequence is the
// signer's transaction counter and protects against replay of the envelope.
type StdTx struct {
	Msg       Msg    `json:"msg"`
	Sequence  uint64 `json:"sequence"`
	Signature []byte `json:"signature"`
}

func NewStdTx(msg Msg, sequence uint64, sig []byte) StdTx {
	return StdTx{Msg: msg, Sequence: sequence, Signature: sig}
}

// ValidateBasic checks the envelope and the message statelessly.
func (tx StdTx) ValidateBasic() Error {
	if tx.Msg == nil {
		return ErrTxDecode("tx carries no message")
	}
	if len(tx.Signature) == 0 {
		return ErrNoSignatures("")
	}
	if len(tx.Msg.GetSigners()) != 1 {
		return ErrUnauthorized("tx message must have exactly one signer")
	}
	return tx.Msg.ValidateBasic()
}

// StdSignDoc is the document a transaction signer signs over.
type StdSignDoc struct {
	ChainID  string          `json:"chain_id"`
	Sequence uint64          `json:"sequence"`
	Msg      json.RawMessage `json:"msg"`
}

// StdSignBytes returns the canonical bytes to sign for a transaction.
func StdSignBytes(chainID string, sequence uint64, msg Msg) []byte {
	bz, err := json.Marshal(StdSignDoc{
		ChainID:  chainID,
		Sequence: sequence,
		Msg:      json.RawMessage(msg.GetSignBytes()),
	})
	if err != nil {
		panic(err)
	}
	return MustSortJSON(bz)
}

// QuerySequencePath answers the next expected sequence of an account.
const QuerySequencePath = "app/sequence"

// QuerySequenceParams selects the account of a sequence query.
type QuerySequenceParams struct {
	Address AccAddress `json:"address"`
}

// QueryResSequence is the answer of a sequence query.
type QueryResSequence struct {
	Address  AccAddress `json:"address"`
	Sequence uint64     `json:"sequence"`
}
