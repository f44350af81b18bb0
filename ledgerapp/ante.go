package ledgerapp

import (
	"fmt"

	"github.com/hbtc-chain/govledger/codec"
	"github.com/hbtc-chain/govledger/crypto"
	sdk "github.com/hbtc-chain/govledger/types"
)

// Keys of the main store.
var (
	SequenceKeyPrefix = []byte{0x01}
	ChainIDKey        = []byte{0x02}
	LastBlockTimeKey  = []byte{0x03}
)

func SequenceKey(addr sdk.AccAddress) []byte {
	return append(append([]byte{}, SequenceKeyPrefix...), addr.Key()...)
}

// TxDecoder unmarshals the bytes of a broadcast transaction.
type TxDecoder func(txBytes []byte) (sdk.StdTx, sdk.Error)

// DefaultTxDecoder reads the amino JSON of a signed StdTx.
func DefaultTxDecoder(cdc *codec.Codec) TxDecoder {
	return func(txBytes []byte) (sdk.StdTx, sdk.Error) {
		var tx sdk.StdTx
		if len(txBytes) == 0 {
			return tx, sdk.ErrTxDecode("tx bytes are empty")
		}
		if err := cdc.UnmarshalJSON(txBytes, &tx); err != nil {
			return tx, sdk.ErrTxDecode(err.Error())
		}
		return tx, nil
	}
}

// AnteHandler authenticates a transaction before its message runs.
type AnteHandler func(ctx sdk.Context, tx sdk.StdTx) sdk.Error

// NewAnteHandler checks the envelope, the signer's sequence and the
// signature, then consumes the sequence. The signature covers the keccak
// digest of StdSignBytes for the chain of ctx.
func (app *LedgerApp) NewAnteHandler() AnteHandler {
	return func(ctx sdk.Context, tx sdk.StdTx) sdk.Error {
		if err := tx.ValidateBasic(); err != nil {
			return err
		}

		signer := tx.Msg.GetSigners()[0]
		expected := app.GetSequence(ctx, signer)
		if tx.Sequence != expected {
			return sdk.ErrInvalidSequence(fmt.Sprintf("invalid sequence for %s: expected %d, got %d", signer, expected, tx.Sequence))
		}

		hash := crypto.Keccak256(sdk.StdSignBytes(ctx.ChainID(), tx.Sequence, tx.Msg))
		recovered, err := crypto.RecoverAddress(hash, tx.Signature)
		if err != nil {
			return sdk.ErrUnauthorized(fmt.Sprintf("signature verification failed: %v", err))
		}
		if !recovered.Equals(signer) {
			return sdk.ErrUnauthorized(fmt.Sprintf("signature of %s does not match signer %s", recovered, signer))
		}

		app.setSequence(ctx, signer, expected+1)
		return nil
	}
}

// GetSequence returns the next sequence expected from addr.
func (app *LedgerApp) GetSequence(ctx sdk.Context, addr sdk.AccAddress) uint64 {
	return sdk.BigEndianToUint64(ctx.KVStore(app.keys[MainStoreKey]).Get(SequenceKey(addr)))
}

func (app *LedgerApp) setSequence(ctx sdk.Context, addr sdk.AccAddress, seq uint64) {
	ctx.KVStore(app.keys[MainStoreKey]).Set(SequenceKey(addr), sdk.Uint64ToBigEndian(seq))
}
