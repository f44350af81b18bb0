package bridge

import (
	"fmt"

	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/bridge/types"
)

// NewHandler returns a handler for "bridge" type messages.
func NewHandler(k Keeper) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) sdk.Result {
		ctx = ctx.WithEventManager(sdk.NewEventManager())

		switch msg := msg.(type) {
		case types.MsgSetApprovedBridge:
			return handleMsgSetApprovedBridge(ctx, k, msg)
		case types.MsgSetMaxBridgeAmount:
			return handleMsgSetMaxBridgeAmount(ctx, k, msg)
		case types.MsgBridgeTransfer:
			return handleMsgBridgeTransfer(ctx, k, msg)
		case types.MsgBridgeTransferFrom:
			return handleMsgBridgeTransferFrom(ctx, k, msg)

		default:
			errMsg := fmt.Sprintf("Unrecognized bridge Msg type: %v", msg.Type())
			return sdk.ErrUnknownRequest(errMsg).Result()
		}
	}
}

func handleMsgSetApprovedBridge(ctx sdk.Context, k Keeper, msg types.MsgSetApprovedBridge) sdk.Result {
	ctx.Logger().Info("handleMsgSetApprovedBridge", "msg", msg)
	if err := k.SetApprovedBridge(ctx, msg.Admin, msg.Bridge, msg.Approved); err != nil {
		return err.Result()
	}
	return messageResult(ctx, msg.Admin, nil)
}

func handleMsgSetMaxBridgeAmount(ctx sdk.Context, k Keeper, msg types.MsgSetMaxBridgeAmount) sdk.Result {
	ctx.Logger().Info("handleMsgSetMaxBridgeAmount", "msg", msg)
	if err := k.SetMaxBridgeAmount(ctx, msg.Admin, msg.Amount); err != nil {
		return err.Result()
	}
	return messageResult(ctx, msg.Admin, nil)
}

func handleMsgBridgeTransfer(ctx sdk.Context, k Keeper, msg types.MsgBridgeTransfer) sdk.Result {
	ctx.Logger().Info("handleMsgBridgeTransfer", "msg", msg)
	in, err := k.BridgeTransfer(ctx, msg.Sender, msg.Destination, msg.Amount, msg.ExternalAddress)
	if err != nil {
		return err.Result()
	}
	return messageResult(ctx, msg.Sender, []byte(in.ID))
}

func handleMsgBridgeTransferFrom(ctx sdk.Context, k Keeper, msg types.MsgBridgeTransferFrom) sdk.Result {
	ctx.Logger().Info("handleMsgBridgeTransferFrom", "msg", msg)
	in, err := k.BridgeTransferFrom(ctx, msg.Spender, msg.Source, msg.Destination, msg.Amount, msg.ExternalAddress)
	if err != nil {
		return err.Result()
	}
	return messageResult(ctx, msg.Spender, []byte(in.ID))
}

func messageResult(ctx sdk.Context, sender sdk.AccAddress, data []byte) sdk.Result {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeValueCategory),
			sdk.NewAttribute(sdk.AttributeKeySender, sender.String()),
		),
	)
	return sdk.Result{Data: data, Events: ctx.EventManager().Events()}
}
