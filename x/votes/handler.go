package votes

import (
	"fmt"

	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/votes/types"
)

// NewHandler returns a handler for "votes" type messages.
func NewHandler(k Keeper) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) sdk.Result {
		ctx = ctx.WithEventManager(sdk.NewEventManager())

		switch msg := msg.(type) {
		case types.MsgDelegate:
			return handleMsgDelegate(ctx, k, msg)
		case types.MsgDelegateBySig:
			return handleMsgDelegateBySig(ctx, k, msg)

		default:
			errMsg := fmt.Sprintf("Unrecognized votes Msg type: %v", msg.Type())
			return sdk.ErrUnknownRequest(errMsg).Result()
		}
	}
}

func handleMsgDelegate(ctx sdk.Context, k Keeper, msg types.MsgDelegate) sdk.Result {
	ctx.Logger().Info("handleMsgDelegate", "msg", msg)
	if err := k.Delegate(ctx, msg.Delegator, msg.Delegatee); err != nil {
		return err.Result()
	}
	return messageResult(ctx, msg.Delegator)
}

func handleMsgDelegateBySig(ctx sdk.Context, k Keeper, msg types.MsgDelegateBySig) sdk.Result {
	ctx.Logger().Info("handleMsgDelegateBySig", "delegatee", msg.Delegatee, "nonce", msg.Nonce, "expiry", msg.Expiry)
	signer, err := k.DelegateBySig(ctx, msg.Delegatee, msg.Nonce, msg.Expiry, msg.Signature)
	if err != nil {
		return err.Result()
	}
	ctx.Logger().Info("signed delegation applied", "delegator", signer, "submitter", msg.Submitter)
	return messageResult(ctx, msg.Submitter)
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
