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
	cdc.RegisterConcrete(MsgSetApprovedBridge{}, "govledger/bridge/MsgSetApprovedBridge", nil)
	cdc.RegisterConcrete(MsgSetMaxBridgeAmount{}, "govledger/bridge/MsgSetMaxBridgeAmount", nil)
	cdc.RegisterConcrete(MsgBridgeTransfer{}, "govledger/bridge/MsgBridgeTransfer", nil)
	cdc.RegisterConcrete(MsgBridgeTransferFrom{}, "govledger/bridge/MsgBridgeTransferFrom", nil)
}
