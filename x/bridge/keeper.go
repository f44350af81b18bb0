package bridge

import (
	"fmt"
	"strconv"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/hbtc-chain/govledger/codec"
	sdk "github.com/hbtc-chain/govledger/types"
	accesstypes "github.com/hbtc-chain/govledger/x/access/types"
	"github.com/hbtc-chain/govledger/x/bridge/types"
)

// Keeper holds the bridge registry and the emitted intents.
type Keeper struct {
	storeKey  sdk.StoreKey
	cdc       *codec.Codec
	ak        types.AccessKeeper
	lk        types.LedgerKeeper
	codespace sdk.CodespaceType
}

func NewKeeper(cdc *codec.Codec, key sdk.StoreKey, ak types.AccessKeeper, lk types.LedgerKeeper, codespace sdk.CodespaceType) Keeper {
	return Keeper{
		storeKey:  key,
		cdc:       cdc,
		ak:        ak,
		lk:        lk,
		codespace: codespace,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

func (k Keeper) Codespace() sdk.CodespaceType {
	return k.codespace
}

//______________________________________________________________________
// registry

func (k Keeper) IsApproved(ctx sdk.Context, destination sdk.AccAddress) bool {
	return ctx.KVStore(k.storeKey).Has(types.ApprovedKey(destination))
}

func (k Keeper) setApproved(ctx sdk.Context, destination sdk.AccAddress, approved bool) {
	store := ctx.KVStore(k.storeKey)
	if approved {
		store.Set(types.ApprovedKey(destination), []byte{0x01})
	} else {
		store.Delete(types.ApprovedKey(destination))
	}
}

// GetApprovedBridges lists the approved destinations in key order.
func (k Keeper) GetApprovedBridges(ctx sdk.Context) []sdk.AccAddress {
	iter := sdk.KVStorePrefixIterator(ctx.KVStore(k.storeKey), types.ApprovedKeyPrefix)
	defer iter.Close()

	var addrs []sdk.AccAddress
	for ; iter.Valid(); iter.Next() {
		addrs = append(addrs, sdk.AccAddress(append([]byte{}, iter.Key()[len(types.ApprovedKeyPrefix):]...)))
	}
	return addrs
}

func (k Keeper) GetMaxTransferAmount(ctx sdk.Context) sdk.Int {
	bz := ctx.KVStore(k.storeKey).Get(types.MaxAmountKey)
	if bz == nil {
		return sdk.ZeroInt()
	}
	var v sdk.Int
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &v)
	return v
}

func (k Keeper) setMaxTransferAmount(ctx sdk.Context, amount sdk.Int) {
	ctx.KVStore(k.storeKey).Set(types.MaxAmountKey, k.cdc.MustMarshalBinaryLengthPrefixed(amount))
}

// SetApprovedBridge adds or removes destination from the approved set.
func (k Keeper) SetApprovedBridge(ctx sdk.Context, caller, destination sdk.AccAddress, approved bool) sdk.Error {
	if err := k.ak.AssertRole(ctx, accesstypes.RoleDefaultAdmin, caller); err != nil {
		return err
	}
	if destination.Empty() {
		return sdk.ErrInvalidAddress("null account cannot be a bridge")
	}
	k.setApproved(ctx, destination, approved)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBridgeApprovalSet,
			sdk.NewAttribute(types.AttributeKeyDestination, destination.String()),
			sdk.NewAttribute(types.AttributeKeyApproved, strconv.FormatBool(approved)),
		),
	)
	return nil
}

// SetMaxBridgeAmount sets the per-transfer limit.
func (k Keeper) SetMaxBridgeAmount(ctx sdk.Context, caller sdk.AccAddress, amount sdk.Int) sdk.Error {
	if err := k.ak.AssertRole(ctx, accesstypes.RoleDefaultAdmin, caller); err != nil {
		return err
	}
	if amount.IsNegative() {
		return sdk.ErrInvalidAmount("bridge limit can not be negative")
	}
	k.setMaxTransferAmount(ctx, amount)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBridgeLimitSet,
			sdk.NewAttribute(types.AttributeKeyLimit, amount.String()),
		),
	)
	return nil
}

//______________________________________________________________________
// transfers

// BridgeTransfer moves amount from sender to an approved destination and
// records the intent.
func (k Keeper) BridgeTransfer(ctx sdk.Context, sender, destination sdk.AccAddress, amount sdk.Int, external string) (types.Intent, sdk.Error) {
	if err := k.checkTransfer(ctx, sender, destination, amount, external); err != nil {
		return types.Intent{}, err
	}
	if err := k.lk.Transfer(ctx, sender, destination, amount); err != nil {
		return types.Intent{}, err
	}
	return k.emitIntent(ctx, sender, sender, destination, amount, external), nil
}

// BridgeTransferFrom bridges value out of source, spending the allowance
// source granted to spender. It runs the same checks as BridgeTransfer.
func (k Keeper) BridgeTransferFrom(ctx sdk.Context, spender, source, destination sdk.AccAddress, amount sdk.Int, external string) (types.Intent, sdk.Error) {
	if err := k.checkTransfer(ctx, spender, destination, amount, external); err != nil {
		return types.Intent{}, err
	}
	if err := k.lk.TransferFrom(ctx, spender, source, destination, amount); err != nil {
		return types.Intent{}, err
	}
	return k.emitIntent(ctx, source, spender, destination, amount, external), nil
}

func (k Keeper) checkTransfer(ctx sdk.Context, operator, destination sdk.AccAddress, amount sdk.Int, external string) sdk.Error {
	if err := k.ak.AssertRole(ctx, accesstypes.RoleBridge, operator); err != nil {
		return err
	}
	if err := k.ak.AssertNotPaused(ctx); err != nil {
		return err
	}
	if !k.IsApproved(ctx, destination) {
		return types.ErrUnapprovedDestination(k.codespace, destination)
	}
	if limit := k.GetMaxTransferAmount(ctx); amount.GT(limit) {
		return types.ErrAmountExceedsLimit(k.codespace, amount, limit)
	}
	if err := types.ValidateExternalAddress(external); err != nil {
		return err
	}
	return nil
}

//______________________________________________________________________
// intents

func (k Keeper) nextIntentSequence(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.storeKey)
	seq := sdk.BigEndianToUint64(store.Get(types.IntentSequenceKey))
	store.Set(types.IntentSequenceKey, sdk.Uint64ToBigEndian(seq+1))
	return seq
}

func (k Keeper) setIntent(ctx sdk.Context, in types.Intent) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.IntentKey(in.Sequence), k.cdc.MustMarshalBinaryLengthPrefixed(in))
	store.Set(types.IntentIDKey(in.ID), sdk.Uint64ToBigEndian(in.Sequence))
}

// GetIntent looks an intent up by ID.
func (k Keeper) GetIntent(ctx sdk.Context, id string) (types.Intent, bool) {
	store := ctx.KVStore(k.storeKey)
	seq := store.Get(types.IntentIDKey(id))
	if seq == nil {
		return types.Intent{}, false
	}
	bz := store.Get(types.IntentKey(sdk.BigEndianToUint64(seq)))
	if bz == nil {
		return types.Intent{}, false
	}
	var in types.Intent
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &in)
	return in, true
}

// IterateIntents walks intents in emission order.
func (k Keeper) IterateIntents(ctx sdk.Context, cb func(in types.Intent) (stop bool)) {
	iter := sdk.KVStorePrefixIterator(ctx.KVStore(k.storeKey), types.IntentKeyPrefix)
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		var in types.Intent
		k.cdc.MustUnmarshalBinaryLengthPrefixed(iter.Value(), &in)
		if cb(in) {
			return
		}
	}
}

func (k Keeper) emitIntent(ctx sdk.Context, sender, operator, destination sdk.AccAddress, amount sdk.Int, external string) types.Intent {
	in := types.NewIntent(k.nextIntentSequence(ctx), sender, operator, destination, amount,
		external, ctx.ChainID(), ctx.BlockHeight())
	k.setIntent(ctx, in)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBridgeIntent,
			sdk.NewAttribute(types.AttributeKeySender, sender.String()),
			sdk.NewAttribute(types.AttributeKeyOperator, operator.String()),
			sdk.NewAttribute(types.AttributeKeyDestination, destination.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyExternalAddress, external),
			sdk.NewAttribute(types.AttributeKeyIntentID, in.ID),
			sdk.NewAttribute(types.AttributeKeyIntentHash, in.Hash),
		),
	)
	k.Logger(ctx).Info("bridge intent", "id", in.ID, "sender", sender, "destination", destination, "amount", amount)
	return in
}
