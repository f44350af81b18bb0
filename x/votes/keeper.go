package votes

import (
	"fmt"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/hbtc-chain/govledger/codec"
	"github.com/hbtc-chain/govledger/crypto"
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/votes/types"
)

// Keeper tracks delegate pointers, per-account checkpoint histories and the
// nonces of signed delegations.
type Keeper struct {
	storeKey  sdk.StoreKey
	cdc       *codec.Codec
	lk        types.LedgerKeeper
	codespace sdk.CodespaceType
}

func NewKeeper(cdc *codec.Codec, key sdk.StoreKey, lk types.LedgerKeeper, codespace sdk.CodespaceType) Keeper {
	return Keeper{
		storeKey:  key,
		cdc:       cdc,
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

// Domain returns the signing domain for the chain ctx runs on.
func (k Keeper) Domain(ctx sdk.Context) types.Domain {
	return types.NewDomain(k.GetParams(ctx), ctx.ChainID())
}

//______________________________________________________________________
// delegate pointers

// GetDelegate returns the delegatee of delegator, the null account if none.
func (k Keeper) GetDelegate(ctx sdk.Context, delegator sdk.AccAddress) sdk.AccAddress {
	bz := ctx.KVStore(k.storeKey).Get(types.DelegateKey(delegator))
	if bz == nil {
		return sdk.AccAddress{}
	}
	return sdk.AccAddress(append([]byte{}, bz...))
}

func (k Keeper) setDelegatePointer(ctx sdk.Context, delegator, delegatee sdk.AccAddress) {
	ctx.KVStore(k.storeKey).Set(types.DelegateKey(delegator), delegatee.Key())
}

// IterateDelegations walks every (delegator, delegatee) pointer.
func (k Keeper) IterateDelegations(ctx sdk.Context, cb func(delegator, delegatee sdk.AccAddress) (stop bool)) {
	iter := sdk.KVStorePrefixIterator(ctx.KVStore(k.storeKey), types.DelegateKeyPrefix)
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		delegator := sdk.AccAddress(append([]byte{}, iter.Key()[len(types.DelegateKeyPrefix):]...))
		if cb(delegator, sdk.AccAddress(append([]byte{}, iter.Value()...))) {
			return
		}
	}
}

//______________________________________________________________________
// nonces

// GetNonce returns the next nonce a signed delegation of account must carry.
func (k Keeper) GetNonce(ctx sdk.Context, account sdk.AccAddress) uint64 {
	return sdk.BigEndianToUint64(ctx.KVStore(k.storeKey).Get(types.NonceKey(account)))
}

func (k Keeper) setNonce(ctx sdk.Context, account sdk.AccAddress, nonce uint64) {
	ctx.KVStore(k.storeKey).Set(types.NonceKey(account), sdk.Uint64ToBigEndian(nonce))
}

// IterateNonces walks every account that has consumed a nonce.
func (k Keeper) IterateNonces(ctx sdk.Context, cb func(account sdk.AccAddress, nonce uint64) (stop bool)) {
	iter := sdk.KVStorePrefixIterator(ctx.KVStore(k.storeKey), types.NonceKeyPrefix)
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		account := sdk.AccAddress(append([]byte{}, iter.Key()[len(types.NonceKeyPrefix):]...))
		if cb(account, sdk.BigEndianToUint64(iter.Value())) {
			return
		}
	}
}

//______________________________________________________________________
// delegation

// Delegate points the voting power of delegator's balance at delegatee.
func (k Keeper) Delegate(ctx sdk.Context, delegator, delegatee sdk.AccAddress) sdk.Error {
	return k.delegate(ctx, delegator, delegatee)
}

// DelegateBySig delegates on behalf of the account that signed the
// authorization. The signature, the nonce and the expiry are checked in that
// order. It returns the recovered delegator.
func (k Keeper) DelegateBySig(ctx sdk.Context, delegatee sdk.AccAddress, nonce, expiry uint64, sig []byte) (sdk.AccAddress, sdk.Error) {
	digest := k.Domain(ctx).DelegationDigest(delegatee, nonce, expiry)
	signer, err := crypto.RecoverAddress(digest, sig)
	if err != nil {
		return nil, types.ErrInvalidSignature(k.codespace, err.Error())
	}
	if signer.Empty() {
		return nil, types.ErrInvalidSignature(k.codespace, "recovered the null account")
	}

	current := k.GetNonce(ctx, signer)
	if nonce != current {
		return nil, types.ErrNonceMismatch(k.codespace, current, nonce)
	}

	// block times before the epoch count as zero
	now := ctx.BlockTime().Unix()
	if now < 0 {
		now = 0
	}
	if uint64(now) > expiry {
		return nil, types.ErrExpired(k.codespace, expiry, now)
	}
	if err := k.validateDelegatee(delegatee); err != nil {
		return nil, err
	}

	k.setNonce(ctx, signer, current+1)
	return signer, k.delegate(ctx, signer, delegatee)
}

func (k Keeper) validateDelegatee(delegatee sdk.AccAddress) sdk.Error {
	if delegatee.Empty() {
		return sdk.ErrInvalidAddress("cannot delegate to the null account")
	}
	if err := delegatee.Validate(); err != nil {
		return sdk.ErrInvalidAddress(err.Error())
	}
	return nil
}

func (k Keeper) delegate(ctx sdk.Context, delegator, delegatee sdk.AccAddress) sdk.Error {
	if err := k.validateDelegatee(delegatee); err != nil {
		return err
	}

	old := k.GetDelegate(ctx, delegator)
	if old.Equals(delegatee) {
		return nil
	}
	k.setDelegatePointer(ctx, delegator, delegatee)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDelegateChanged,
			sdk.NewAttribute(types.AttributeKeyDelegator, delegator.String()),
			sdk.NewAttribute(types.AttributeKeyFromDelegate, old.String()),
			sdk.NewAttribute(types.AttributeKeyToDelegate, delegatee.String()),
		),
	)
	k.Logger(ctx).Info("delegate changed", "delegator", delegator, "from", old, "to", delegatee)

	k.moveDelegates(ctx, old, delegatee, k.lk.GetBalance(ctx, delegator))
	return nil
}

// moveDelegates shifts amount of power from src to dst. A null side is skipped.
func (k Keeper) moveDelegates(ctx sdk.Context, src, dst sdk.AccAddress, amount sdk.Int) {
	if src.Equals(dst) || !amount.IsPositive() {
		return
	}
	if !src.Empty() {
		old := k.GetCurrentVotes(ctx, src)
		updated := old.Sub(amount)
		if updated.IsNegative() {
			panic(fmt.Sprintf("votes of %s underflow: %s - %s", src, old, amount))
		}
		k.writeCheckpoint(ctx, src, old, updated)
	}
	if !dst.Empty() {
		old := k.GetCurrentVotes(ctx, dst)
		k.writeCheckpoint(ctx, dst, old, old.Add(amount))
	}
}

//______________________________________________________________________
// checkpoints

// GetBaseHeight returns the block marker of this chain's genesis. Markers
// continue the numbering of the chain the state was exported from.
func (k Keeper) GetBaseHeight(ctx sdk.Context) uint64 {
	return sdk.BigEndianToUint64(ctx.KVStore(k.storeKey).Get(types.BaseHeightKey))
}

func (k Keeper) setBaseHeight(ctx sdk.Context, base uint64) {
	ctx.KVStore(k.storeKey).Set(types.BaseHeightKey, sdk.Uint64ToBigEndian(base))
}

// BlockMarker returns the checkpoint marker of the block ctx runs in.
func (k Keeper) BlockMarker(ctx sdk.Context) uint64 {
	base := k.GetBaseHeight(ctx)
	if ctx.BlockHeight() <= 0 {
		return base
	}
	return base + uint64(ctx.BlockHeight())
}

// NumCheckpoints returns the length of account's history.
func (k Keeper) NumCheckpoints(ctx sdk.Context, account sdk.AccAddress) uint32 {
	return sdk.BigEndianToUint32(ctx.KVStore(k.storeKey).Get(types.NumCheckpointsKey(account)))
}

func (k Keeper) setNumCheckpoints(ctx sdk.Context, account sdk.AccAddress, n uint32) {
	ctx.KVStore(k.storeKey).Set(types.NumCheckpointsKey(account), sdk.Uint32ToBigEndian(n))
}

func (k Keeper) getCheckpoint(ctx sdk.Context, account sdk.AccAddress, index uint32) types.Checkpoint {
	bz := ctx.KVStore(k.storeKey).Get(types.CheckpointKey(account, index))
	if bz == nil {
		panic(fmt.Sprintf("missing checkpoint %d of %s", index, account))
	}
	var c types.Checkpoint
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &c)
	return c
}

func (k Keeper) setCheckpoint(ctx sdk.Context, account sdk.AccAddress, index uint32, c types.Checkpoint) {
	ctx.KVStore(k.storeKey).Set(types.CheckpointKey(account, index), k.cdc.MustMarshalBinaryLengthPrefixed(c))
}

// GetCheckpoints returns the full history of account, oldest first.
func (k Keeper) GetCheckpoints(ctx sdk.Context, account sdk.AccAddress) types.Checkpoints {
	n := k.NumCheckpoints(ctx, account)
	cs := make(types.Checkpoints, 0, n)
	for i := uint32(0); i < n; i++ {
		cs = append(cs, k.getCheckpoint(ctx, account, i))
	}
	return cs
}

// IterateCheckpointAccounts walks every account that has a history.
func (k Keeper) IterateCheckpointAccounts(ctx sdk.Context, cb func(account sdk.AccAddress, n uint32) (stop bool)) {
	iter := sdk.KVStorePrefixIterator(ctx.KVStore(k.storeKey), types.NumCheckpointsKeyPrefix)
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		account := sdk.AccAddress(append([]byte{}, iter.Key()[len(types.NumCheckpointsKeyPrefix):]...))
		if cb(account, sdk.BigEndianToUint32(iter.Value())) {
			return
		}
	}
}

// writeCheckpoint records updated as the power of account at the current
// height. A second write in the same block overwrites the first.
func (k Keeper) writeCheckpoint(ctx sdk.Context, account sdk.AccAddress, old, updated sdk.Int) {
	height := k.BlockMarker(ctx)
	n := k.NumCheckpoints(ctx, account)

	if n > 0 && k.getCheckpoint(ctx, account, n-1).FromBlock == height {
		k.setCheckpoint(ctx, account, n-1, types.NewCheckpoint(height, updated))
	} else {
		k.setCheckpoint(ctx, account, n, types.NewCheckpoint(height, updated))
		k.setNumCheckpoints(ctx, account, n+1)
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePowerChanged,
			sdk.NewAttribute(types.AttributeKeyAccount, account.String()),
			sdk.NewAttribute(types.AttributeKeyPrevious, old.String()),
			sdk.NewAttribute(types.AttributeKeyCurrent, updated.String()),
		),
	)
}

// GetCurrentVotes returns the latest power of account.
func (k Keeper) GetCurrentVotes(ctx sdk.Context, account sdk.AccAddress) sdk.Int {
	n := k.NumCheckpoints(ctx, account)
	if n == 0 {
		return sdk.ZeroInt()
	}
	return k.getCheckpoint(ctx, account, n-1).Votes
}

// GetPriorVotes returns the power account held at the end of block. Only
// markers strictly before the current block are determined.
func (k Keeper) GetPriorVotes(ctx sdk.Context, account sdk.AccAddress, block uint64) (sdk.Int, sdk.Error) {
	current := k.BlockMarker(ctx)
	if block >= current {
		return sdk.Int{}, types.ErrInvalidQuery(k.codespace, block, int64(current))
	}

	n := k.NumCheckpoints(ctx, account)
	if n == 0 {
		return sdk.ZeroInt(), nil
	}

	if last := k.getCheckpoint(ctx, account, n-1); last.FromBlock <= block {
		return last.Votes, nil
	}
	if k.getCheckpoint(ctx, account, 0).FromBlock > block {
		return sdk.ZeroInt(), nil
	}

	lower, upper := uint32(0), n-1
	for upper > lower {
		center := upper - (upper-lower)/2
		cp := k.getCheckpoint(ctx, account, center)
		switch {
		case cp.FromBlock == block:
			return cp.Votes, nil
		case cp.FromBlock < block:
			lower = center
		default:
			upper = center - 1
		}
	}
	return k.getCheckpoint(ctx, account, lower).Votes, nil
}
