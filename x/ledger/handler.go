package ledger

import (
	"fmt"

	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/ledger/types"
)

// NewHandler returns a handler for "ledger" type messages.
func NewHandler(k Keeper) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) sdk.Result {
		ctx = ctx.WithEventManager(sdk.NewEventManager())

		switch msg := msg.(type) {
		case types.MsgMint:
			return handleMsgMint(ctx, k, msg)
		case types.MsgBurn:
			return handleMsgBurn(ctx, k, msg)
		case types.MsgTransfer:
			return handleMsgTransfer(ctx, k, msg)
		case types.MsgTransferFrom:
			return handleMsgTransferFrom(ctx, k, msg)
		case types.MsgApprove:
			return handleMsgApprove(ctx, k, msg)

		default:
			errMsg := fmt.Sprintf("Unrecognized ledger Msg type: %v", msg.Type())
			return sdk.ErrUnknownRequest(errMsg).Result()
		}
	}
}

func handleMsgMint(ctx sdk.Context, k Keeper, msg types.MsgMint) sdk.Result {
	ctx.Logger().Info("handleMsgMint", "msg", msg)
	if err := k.Mint(ctx, msg.Sender, msg.To, msg.Amount); err != nil {
		return err.Result()
	}
	return messageResult(ctx, msg.Sender)
}

func handleMsgBurn(ctx sdk.Context, k Keeper, msg types.MsgBurn) sdk.Result {
	ctx.Logger().Info("handleMsgBurn", "msg", msg)
	if err := k.BurnSelf(ctx, msg.Sender, msg.Amount); err != nil {
		return err.Result()
	}
	return messageResult(ctx, msg.Sender)
}

func handleMsgTransfer(ctx sdk.Context, k Keeper, msg types.MsgTransfer) sdk.Result {
	ctx.Logger().Info("handleMsgTransfer", "msg", msg)
	if err := k.Transfer(ctx, msg.From, msg.To, msg.Amount); err != nil {
		return err.Result()
	}
	return messageResult(ctx, msg.From)
}

func handleMsgTransferFrom(ctx sdk.Context, k Keeper, msg types.MsgTransferFrom) sdk.Result {
	ctx.Logger().Info("handleMsgTransferFrom", "msg", msg)
	if err := k.TransferFrom(ctx, msg.Spender, msg.From, msg.To, msg.Amount); err != nil {
		return err.Result()
	}
	return messageResult(ctx, msg.Spender)
}

func handleMsgApprove(ctx sdk.Context, k Keeper, msg types.MsgApprove) sdk.Result {
	ctx.Logger().Info("handleMsgApprove", "msg", msg)
	if err := k.Approve(ctx, msg.Owner, msg.Spender, msg.Amount); err != nil {
		return err.Result()
	}
	return messageResult(ctx, msg.Owner)
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
