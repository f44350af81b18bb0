package rescue

import (
	"fmt"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/hbtc-chain/govledger/codec"
	sdk "github.com/hbtc-chain/govledger/types"
	accesstypes "github.com/hbtc-chain/govledger/x/access/types"
	ledgertypes "github.com/hbtc-chain/govledger/x/ledger/types"
	"github.com/hbtc-chain/govledger/x/rescue/types"
)

// Keeper records assets that reached the ledger address and releases them
// to a rescuer-chosen recipient.
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
// custody

func (k Keeper) GetCustody(ctx sdk.Context, asset string, holder sdk.AccAddress) sdk.Int {
	bz := ctx.KVStore(k.storeKey).Get(types.CustodyKey(asset, holder))
	if bz == nil {
		return sdk.ZeroInt()
	}
	var v sdk.Int
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &v)
	return v
}

func (k Keeper) setCustody(ctx sdk.Context, asset string, holder sdk.AccAddress, amount sdk.Int) {
	store := ctx.KVStore(k.storeKey)
	if amount.IsZero() {
		store.Delete(types.CustodyKey(asset, holder))
		return
	}
	store.Set(types.CustodyKey(asset, holder), k.cdc.MustMarshalBinaryLengthPrefixed(amount))
}

// IterateHoldings walks custody records ordered by asset then holder.
func (k Keeper) IterateHoldings(ctx sdk.Context, cb func(h types.Holding) (stop bool)) {
	iter := sdk.KVStorePrefixIterator(ctx.KVStore(k.storeKey), types.CustodyKeyPrefix)
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		asset, holder := types.SplitCustodyKey(iter.Key())
		var amount sdk.Int
		k.cdc.MustUnmarshalBinaryLengthPrefixed(iter.Value(), &amount)
		if cb(types.NewHolding(asset, holder, amount)) {
			return
		}
	}
}

// Receive credits the ledger address with amount of asset.
func (k Keeper) Receive(ctx sdk.Context, asset string, amount sdk.Int) sdk.Error {
	if err := types.ValidateAssetID(asset); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return sdk.ErrInvalidAmount("received amount must be positive")
	}
	held, ok := k.GetCustody(ctx, asset, ledgertypes.LedgerAddress).SafeAdd(amount)
	if !ok {
		return sdk.ErrInvalidAmount("custody would exceed 2^256-1")
	}
	k.setCustody(ctx, asset, ledgertypes.LedgerAddress, held)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAssetReceived,
			sdk.NewAttribute(types.AttributeKeyAsset, asset),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

//______________________________________________________________________
// rescues

// RescueNative releases the whole native custody of the ledger address to to.
func (k Keeper) RescueNative(ctx sdk.Context, caller, to sdk.AccAddress) (sdk.Int, sdk.Error) {
	if err := k.ak.AssertRole(ctx, accesstypes.RoleRescuer, caller); err != nil {
		return sdk.Int{}, err
	}
	if to.Empty() {
		return sdk.Int{}, sdk.ErrInvalidAddress("cannot rescue to the null account")
	}
	amount := k.GetCustody(ctx, types.NativeAsset, ledgertypes.LedgerAddress)
	if err := k.release(ctx, types.NativeAsset, to, amount); err != nil {
		return sdk.Int{}, err
	}
	k.emitRescued(ctx, caller, types.NativeAsset, to, amount)
	return amount, nil
}

// RescueForeignAsset releases amount of asset to to. The ledger's own unit is
// moved through the ledger, so the pause gate and the vote hooks apply.
func (k Keeper) RescueForeignAsset(ctx sdk.Context, caller sdk.AccAddress, asset string, to sdk.AccAddress, amount sdk.Int) sdk.Error {
	if err := k.ak.AssertRole(ctx, accesstypes.RoleRescuer, caller); err != nil {
		return err
	}
	if err := types.ValidateAssetID(asset); err != nil {
		return err
	}
	if to.Empty() {
		return sdk.ErrInvalidAddress("cannot rescue to the null account")
	}
	if amount.IsNegative() {
		return sdk.ErrInvalidAmount("rescue amount can not be negative")
	}

	if asset == k.lk.GetParams(ctx).Symbol {
		if err := k.lk.Transfer(ctx, ledgertypes.LedgerAddress, to, amount); err != nil {
			return err
		}
	} else if err := k.release(ctx, asset, to, amount); err != nil {
		return err
	}
	k.emitRescued(ctx, caller, asset, to, amount)
	return nil
}

func (k Keeper) release(ctx sdk.Context, asset string, to sdk.AccAddress, amount sdk.Int) sdk.Error {
	held := k.GetCustody(ctx, asset, ledgertypes.LedgerAddress)
	if held.LT(amount) {
		return sdk.ErrInsufficientBalance(fmt.Sprintf("ledger holds %s %s, less than %s", held, asset, amount))
	}
	k.setCustody(ctx, asset, ledgertypes.LedgerAddress, held.Sub(amount))
	k.setCustody(ctx, asset, to, k.GetCustody(ctx, asset, to).Add(amount))
	return nil
}

func (k Keeper) emitRescued(ctx sdk.Context, rescuer sdk.AccAddress, asset string, to sdk.AccAddress, amount sdk.Int) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAssetRescued,
			sdk.NewAttribute(types.AttributeKeyRescuer, rescuer.String()),
			sdk.NewAttribute(types.AttributeKeyAsset, asset),
			sdk.NewAttribute(types.AttributeKeyTo, to.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	k.Logger(ctx).Info("asset rescued", "asset", asset, "to", to, "amount", amount)
}
