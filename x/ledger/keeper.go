package ledger

import (
	"fmt"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/hbtc-chain/govledger/codec"
	sdk "github.com/hbtc-chain/govledger/types"
	accesstypes "github.com/hbtc-chain/govledger/x/access/types"
	"github.com/hbtc-chain/govledger/x/ledger/types"
)

// Keeper holds balances, total supply and allowances.
type Keeper struct {
	storeKey  sdk.StoreKey
	cdc       *codec.Codec
	ak        types.AccessKeeper
	hooks     types.LedgerHooks
	codespace sdk.CodespaceType
}

func NewKeeper(cdc *codec.Codec, key sdk.StoreKey, ak types.AccessKeeper, codespace sdk.CodespaceType) Keeper {
	return Keeper{
		storeKey:  key,
		cdc:       cdc,
		ak:        ak,
		codespace: codespace,
	}
}

// SetHooks installs the balance observers. It may only be called once.
func (k *Keeper) SetHooks(lh types.LedgerHooks) *Keeper {
	if k.hooks != nil {
		panic("cannot set ledger hooks twice")
	}
	k.hooks = lh
	return k
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

func (k Keeper) Codespace() sdk.CodespaceType {
	return k.codespace
}

//______________________________________________________________________
// raw state

func (k Keeper) getInt(ctx sdk.Context, key []byte) sdk.Int {
	bz := ctx.KVStore(k.storeKey).Get(key)
	if bz == nil {
		return sdk.ZeroInt()
	}
	var v sdk.Int
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &v)
	return v
}

// setInt deletes zero entries so iteration only sees live state.
func (k Keeper) setInt(ctx sdk.Context, key []byte, v sdk.Int) {
	store := ctx.KVStore(k.storeKey)
	if v.IsZero() {
		store.Delete(key)
		return
	}
	store.Set(key, k.cdc.MustMarshalBinaryLengthPrefixed(v))
}

func (k Keeper) GetBalance(ctx sdk.Context, addr sdk.AccAddress) sdk.Int {
	return k.getInt(ctx, types.BalanceKey(addr))
}

func (k Keeper) setBalance(ctx sdk.Context, addr sdk.AccAddress, amount sdk.Int) {
	k.setInt(ctx, types.BalanceKey(addr), amount)
}

func (k Keeper) GetSupply(ctx sdk.Context) sdk.Int {
	return k.getInt(ctx, types.SupplyKey)
}

func (k Keeper) setSupply(ctx sdk.Context, supply sdk.Int) {
	k.setInt(ctx, types.SupplyKey, supply)
}

func (k Keeper) GetAllowance(ctx sdk.Context, owner, spender sdk.AccAddress) sdk.Int {
	return k.getInt(ctx, types.AllowanceKey(owner, spender))
}

func (k Keeper) setAllowance(ctx sdk.Context, owner, spender sdk.AccAddress, amount sdk.Int) {
	k.setInt(ctx, types.AllowanceKey(owner, spender), amount)
}

func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	bz := ctx.KVStore(k.storeKey).Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}
	var p types.Params
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &p)
	return p
}

func (k Keeper) SetParams(ctx sdk.Context, p types.Params) {
	ctx.KVStore(k.storeKey).Set(types.ParamsKey, k.cdc.MustMarshalBinaryLengthPrefixed(p))
}

// IterateBalances visits every non-zero balance in address order until cb
// returns true.
func (k Keeper) IterateBalances(ctx sdk.Context, cb func(addr sdk.AccAddress, amount sdk.Int) (stop bool)) {
	iter := sdk.KVStorePrefixIterator(ctx.KVStore(k.storeKey), types.BalanceKeyPrefix)
	defer iter.Close()

	for ; iter.Valid(); iter.Next() {
		addr := sdk.AccAddress(append([]byte{}, iter.Key()[len(types.BalanceKeyPrefix):]...))
		var amount sdk.Int
		k.cdc.MustUnmarshalBinaryLengthPrefixed(iter.Value(), &amount)
		if cb(addr, amount) {
			return
		}
	}
}

// IterateAllowances visits every non-zero allowance.
func (k Keeper) IterateAllowances(ctx sdk.Context, cb func(a types.Allowance) (stop bool)) {
	iter := sdk.KVStorePrefixIterator(ctx.KVStore(k.storeKey), types.AllowanceKeyPrefix)
	defer iter.Close()

	for ; iter.Valid(); iter.Next() {
		key := iter.Key()[len(types.AllowanceKeyPrefix):]
		var amount sdk.Int
		k.cdc.MustUnmarshalBinaryLengthPrefixed(iter.Value(), &amount)
		a := types.Allowance{
			Owner:   sdk.AccAddress(append([]byte{}, key[:sdk.AddrLen]...)),
			Spender: sdk.AccAddress(append([]byte{}, key[sdk.AddrLen:]...)),
			Amount:  amount,
		}
		if cb(a) {
			return
		}
	}
}

//______________________________________________________________________
// state transitions

// Mint creates amount for to and grows the supply.
func (k Keeper) Mint(ctx sdk.Context, caller, to sdk.AccAddress, amount sdk.Int) sdk.Error {
	if err := k.ak.AssertRole(ctx, accesstypes.RoleMinter, caller); err != nil {
		return err
	}
	if err := k.ak.AssertNotPaused(ctx); err != nil {
		return err
	}
	if to.Empty() {
		return sdk.ErrInvalidAddress("cannot mint to the null account")
	}
	if !amount.IsPositive() {
		return sdk.ErrInvalidAmount("mint amount must be positive")
	}

	supply, ok := k.GetSupply(ctx).SafeAdd(amount)
	if !ok {
		return sdk.ErrInvalidAmount("total supply would exceed 2^256-1")
	}
	k.setSupply(ctx, supply)
	k.setBalance(ctx, to, k.GetBalance(ctx, to).Add(amount))

	k.Logger(ctx).Info("minted", "to", to, "amount", amount)
	k.afterMove(ctx, sdk.AccAddress{}, to, amount)
	return nil
}

// BurnSelf destroys amount of the caller's own balance.
func (k Keeper) BurnSelf(ctx sdk.Context, caller sdk.AccAddress, amount sdk.Int) sdk.Error {
	if err := k.ak.AssertRole(ctx, accesstypes.RoleBurner, caller); err != nil {
		return err
	}
	if err := k.ak.AssertNotPaused(ctx); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return sdk.ErrInvalidAmount("burn amount must be positive")
	}
	balance := k.GetBalance(ctx, caller)
	if balance.LT(amount) {
		return sdk.ErrInsufficientBalance(fmt.Sprintf("balance %s is less than %s", balance, amount))
	}

	k.setBalance(ctx, caller, balance.Sub(amount))
	k.setSupply(ctx, k.GetSupply(ctx).Sub(amount))

	k.Logger(ctx).Info("burned", "from", caller, "amount", amount)
	k.afterMove(ctx, caller, sdk.AccAddress{}, amount)
	return nil
}

// Transfer moves amount from from to to.
func (k Keeper) Transfer(ctx sdk.Context, from, to sdk.AccAddress, amount sdk.Int) sdk.Error {
	if err := k.ak.AssertNotPaused(ctx); err != nil {
		return err
	}
	return k.move(ctx, from, to, amount)
}

// TransferFrom moves amount on behalf of from and consumes spender's allowance.
func (k Keeper) TransferFrom(ctx sdk.Context, spender, from, to sdk.AccAddress, amount sdk.Int) sdk.Error {
	if err := k.ak.AssertNotPaused(ctx); err != nil {
		return err
	}
	if err := k.SpendAllowance(ctx, from, spender, amount); err != nil {
		return err
	}
	return k.move(ctx, from, to, amount)
}

// SpendAllowance lowers the allowance owner granted to spender by amount.
func (k Keeper) SpendAllowance(ctx sdk.Context, owner, spender sdk.AccAddress, amount sdk.Int) sdk.Error {
	allowance := k.GetAllowance(ctx, owner, spender)
	if allowance.LT(amount) {
		return types.ErrInsufficientAllowance(k.codespace, allowance, amount)
	}
	k.setAllowance(ctx, owner, spender, allowance.Sub(amount))
	return nil
}

// Approve sets the allowance. It works while paused.
func (k Keeper) Approve(ctx sdk.Context, owner, spender sdk.AccAddress, amount sdk.Int) sdk.Error {
	if spender.Empty() {
		return sdk.ErrInvalidAddress("cannot approve the null account")
	}
	if amount.IsNegative() {
		return sdk.ErrInvalidAmount("allowance can not be negative")
	}
	k.setAllowance(ctx, owner, spender, amount)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeApproval,
			sdk.NewAttribute(types.AttributeKeyOwner, owner.String()),
			sdk.NewAttribute(types.AttributeKeySpender, spender.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

func (k Keeper) move(ctx sdk.Context, from, to sdk.AccAddress, amount sdk.Int) sdk.Error {
	if to.Empty() {
		return sdk.ErrInvalidAddress("cannot transfer to the null account")
	}
	if amount.IsNegative() {
		return sdk.ErrInvalidAmount("transfer amount can not be negative")
	}
	balance := k.GetBalance(ctx, from)
	if balance.LT(amount) {
		return sdk.ErrInsufficientBalance(fmt.Sprintf("balance %s is less than %s", balance, amount))
	}

	k.setBalance(ctx, from, balance.Sub(amount))
	k.setBalance(ctx, to, k.GetBalance(ctx, to).Add(amount))

	k.afterMove(ctx, from, to, amount)
	return nil
}

func (k Keeper) afterMove(ctx sdk.Context, from, to sdk.AccAddress, amount sdk.Int) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeValueMoved,
			sdk.NewAttribute(types.AttributeKeyFrom, from.String()),
			sdk.NewAttribute(types.AttributeKeyTo, to.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	if k.hooks != nil {
		k.hooks.AfterBalanceMoved(ctx, from, to, amount)
	}
}
