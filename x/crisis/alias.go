package crisis

import (
	"github.com/hbtc-chain/govledger/x/crisis/internal/keeper"
	"github.com/hbtc-chain/govledger/x/crisis/internal/types"
)

const (
	ModuleName       = types.ModuleName
	RouterKey        = types.RouterKey
	DefaultCodespace = types.DefaultCodespace

	CodeUnknownInvariant = types.CodeUnknownInvariant
	EventTypeInvariant   = types.EventTypeInvariant
)

var (
	RegisterCodec         = types.RegisterCodec
	ModuleCdc             = types.ModuleCdc
	NewMsgVerifyInvariant = types.NewMsgVerifyInvariant
	NewInvarRoute         = types.NewInvarRoute
	ErrUnknownInvariant   = types.ErrUnknownInvariant
	NewKeeper             = keeper.NewKeeper
)

type (
	MsgVerifyInvariant = types.MsgVerifyInvariant
	InvarRoute         = types.InvarRoute
	Keeper             = keeper.Keeper
)
