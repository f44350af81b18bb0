package rescue

import (
	"fmt"

	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/rescue/types"
)

// NewHandler returns a handler for "rescue" type messages.
func NewHandler(k Keeper) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) sdk.Result {
		ctx = ctx.WithEventManager(sdk.NewEventManager())

		switch msg := msg.(type) {
		case types.MsgRescueNative:
			return handleMsgRescueNative(ctx, k, msg)
		case types.MsgRescueForeignAsset:
			return handleMsgRescueForeignAsset(ctx, k, msg)

		default:
			errMsg := fmt.Sprintf("Unrecognized rescue Msg type: %v", msg.Type())
			return sdk.ErrUnknownRequest(errMsg).Result()
		}
	}
}

func handleMsgRescueNative(ctx sdk.Context, k Keeper, msg types.MsgRescueNative) sdk.Result {
	ctx.Logger().Info("handleMsgRescueNative", "msg", msg)
	if _, err := k.RescueNative(ctx, msg.Rescuer, msg.To); err != nil {
		return err.Result()
	}
	return messageResult(ctx, msg.Rescuer)
}

func handleMsgRescueForeignAsset(ctx sdk.Context, k Keeper, msg types.MsgRescueForeignAsset) sdk.Result {
	ctx.Logger().Info("handleMsgRescueForeignAsset", "msg", msg)
	if err := k.RescueForeignAsset(ctx, msg.Rescuer, msg.AssetID, msg.To, msg.Amount); err != nil {
		return err.Result()
	}
	return messageResult(ctx, msg.Rescuer)
}

func messageResult(ctx sdk.Context, sender sdk.AccAddress) sdk.Result {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeValueCategory),
			sdk.NewAttribute(sdk.AttributeKeySender, sender.String()),
		),
	)
	return sdk.Result{Events: ctx.EventManager().Events()}
}
