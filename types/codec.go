package types

import "github.com/hbtc-chain/govledger/codec"

// RegisterCodec registers the sdk message type.
func RegisterCodec(cdc *codec.Codec) {
	cdc.RegisterInterface((*Msg)(nil), nil)
	cdc.RegisterConcrete(StdTx{}, "govledger/StdTx", nil)
}
