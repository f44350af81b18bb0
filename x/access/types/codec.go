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
	cdc.RegisterConcrete(MsgGrantRole{}, "govledger/access/MsgGrantRole", nil)
	cdc.RegisterConcrete(MsgRevokeRole{}, "govledger/access/MsgRevokeRole", nil)
	cdc.RegisterConcrete(MsgRenounceRole{}, "govledger/access/MsgRenounceRole", nil)
	cdc.RegisterConcrete(MsgPause{}, "govledger/access/MsgPause", nil)
	cdc.RegisterConcrete(MsgUnpause{}, "govledger/access/MsgUnpause", nil)
}
