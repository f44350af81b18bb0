package rescue

import (
	ledgertypes "github.com/hbtc-chain/govledger/x/ledger/types"
	"github.com/hbtc-chain/govledger/x/rescue/types"
)

const (
	ModuleName       = types.ModuleName
	StoreKey         = types.StoreKey
	RouterKey        = types.RouterKey
	QuerierRoute     = types.QuerierRoute
	DefaultCodespace = types.DefaultCodespace
	NativeAsset      = types.NativeAsset

	CodeInvalidAsset = types.CodeInvalidAsset
)

type (
	GenesisState = types.GenesisState
	Holding      = types.Holding

	MsgRescueNative       = types.MsgRescueNative
	MsgRescueForeignAsset = types.MsgRescueForeignAsset
)

var (
	ModuleCdc           = types.ModuleCdc
	RegisterCodec       = types.RegisterCodec
	NewHolding          = types.NewHolding
	DefaultGenesisState = types.DefaultGenesisState
	NewGenesisState     = types.NewGenesisState
	ValidateGenesis     = types.ValidateGenesis

	NewMsgRescueNative       = types.NewMsgRescueNative
	NewMsgRescueForeignAsset = types.NewMsgRescueForeignAsset

	// LedgerAddress holds every custody record awaiting rescue.
	LedgerAddress = ledgertypes.LedgerAddress
)
