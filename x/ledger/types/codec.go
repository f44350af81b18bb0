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
	cdc.RegisterConcrete(MsgMint{}, "govledger/ledger/MsgMint", nil)
	cdc.RegisterConcrete(MsgBurn{}, "govledger/ledger/MsgBurn", nil)
	cdc.RegisterConcrete(MsgTransfer{}, "govledger/ledger/MsgTransfer", nil)
	cdc.RegisterConcrete(MsgTransferFrom{}, "govledger/ledger/MsgTransferFrom", nil)
	cdc.RegisterConcrete(MsgApprove{}, "govledger/ledger/MsgApprove", nil)
}
