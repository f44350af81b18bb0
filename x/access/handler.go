package access

import (
	"fmt"

	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/access/types"
)

// NewHandler returns a handler for "access" type messages.
func NewHandler(keeper Keeper) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) sdk.Result {
		ctx = ctx.WithEventManager(sdk.NewEventManager())
		switch msg := msg.(type) {
		case types.MsgGrantRole:
			return handleMsgGrantRole(ctx, keeper, msg)
		case types.MsgRevokeRole:
			return handleMsgRevokeRole(ctx, keeper, msg)
		case types.MsgRenounceRole:
			return handleMsgRenounceRole(ctx, keeper, msg)
		case types.MsgPause:
			return handleMsgPause(ctx, keeper, msg)
		case types.MsgUnpause:
			return handleMsgUnpause(ctx, keeper, msg)

		default:
			errMsg := fmt.Sprintf("Unrecognized access Msg type: %v", msg.Type())
			return sdk.ErrUnknownRequest(errMsg).Result()
		}
	}
}

func handleMsgGrantRole(ctx sdk.Context, keeper Keeper, msg types.MsgGrantRole) sdk.Result {
	ctx.Logger().Info("handleMsgGrantRole", "msg", msg)
	if err := keeper.GrantRole(ctx, msg.Sender, msg.Role, msg.Account); err != nil {
		return err.Result()
	}
	return withMessageEvent(ctx, msg.Sender)
}

func handleMsgRevokeRole(ctx sdk.Context, keeper Keeper, msg types.MsgRevokeRole) sdk.Result {
	ctx.Logger().Info("handleMsgRevokeRole", "msg", msg)
	if err := keeper.RevokeRole(ctx, msg.Sender, msg.Role, msg.Account); err != nil {
		return err.Result()
	}
	return withMessageEvent(ctx, msg.Sender)
}

func handleMsgRenounceRole(ctx sdk.Context, keeper Keeper, msg types.MsgRenounceRole) sdk.Result {
	ctx.Logger().Info("handleMsgRenounceRole", "msg", msg)
	if err := keeper.RenounceRole(ctx, msg.Sender, msg.Role, msg.Account); err != nil {
		return err.Result()
	}
	return withMessageEvent(ctx, msg.Sender)
}

func handleMsgPause(ctx sdk.Context, keeper Keeper, msg types.MsgPause) sdk.Result {
	ctx.Logger().Info("handleMsgPause", "msg", msg)
	if err := keeper.Pause(ctx, msg.Sender); err != nil {
		return err.Result()
	}
	return withMessageEvent(ctx, msg.Sender)
}

func handleMsgUnpause(ctx sdk.Context, keeper Keeper, msg types.MsgUnpause) sdk.Result {
	ctx.Logger().Info("handleMsgUnpause", "msg", msg)
	if err := keeper.Unpause(ctx, msg.Sender); err != nil {
		return err.Result()
	}
	return withMessageEvent(ctx, msg.Sender)
}

func withMessageEvent(ctx sdk.Context, sender sdk.AccAddress) sdk.Result {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeValueCategory),
			sdk.NewAttribute(sdk.AttributeKeySender, sender.String()),
		),
	)
	return sdk.Result{Events: ctx.EventManager().Events()}
}
