package types

import (
	"github.com/hbtc-chain/govledger/codec"
)

// ModuleCdc is the codec for the module
var ModuleCdc = codec.New()

func init() {
	RegisterCodec(ModuleCdc)
	ModuleCdc.Seal()
}

// RegisterCodec registers concrete types on the Amino codec
func RegisterCodec(cdc *codec.Codec) {
	cdc.RegisterConcrete(MsgDelegate{}, "govledger/votes/MsgDelegate", nil)
	cdc.RegisterConcrete(MsgDelegateBySig{}, "govledger/votes/MsgDelegateBySig", nil)
}
