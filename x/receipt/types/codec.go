package types

import (
	"github.com/hbtc-chain/govledger/codec"
)

var ModuleCdc = codec.New()

func init() {
	RegisterCodec(ModuleCdc)
	ModuleCdc.Seal()
}

// RegisterCodec is a no-op; receipts hold no interface values.
func RegisterCodec(cdc *codec.Codec) {}
