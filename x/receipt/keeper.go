package receipt

import (
	"github.com/hbtc-chain/govledger/codec"
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/receipt/types"
)

// Keeper persists the receipts of delivered messages.
type Keeper struct {
	storeKey sdk.StoreKey
	cdc      *codec.Codec
}

func NewKeeper(cdc *codec.Codec, key sdk.StoreKey) Keeper {
	return Keeper{
		storeKey: key,
		cdc:      cdc,
	}
}

// NewReceipt builds the receipt of msg from its delivery result.
func (k Keeper) NewReceipt(msg sdk.Msg, result sdk.Result) Receipt {
	var sender sdk.AccAddress
	if signers := msg.GetSigners(); len(signers) > 0 {
		sender = signers[0]
	}
	return Receipt{
		Route:  msg.Route(),
		Type:   msg.Type(),
		Sender: sender,
		Events: sdk.StringifyEvents(result.Events),
	}
}

// SaveReceipt appends the receipt of msg to the log of the current height.
// Failed results are never recorded.
func (k Keeper) SaveReceipt(ctx sdk.Context, msg sdk.Msg, result sdk.Result) (Receipt, bool) {
	if !result.IsOK() {
		return Receipt{}, false
	}
	rc := k.NewReceipt(msg, result)
	rc.Height = ctx.BlockHeight()
	rc.Index = k.nextIndex(ctx, rc.Height)
	k.setReceipt(ctx, rc)
	return rc, true
}

func (k Keeper) nextIndex(ctx sdk.Context, height int64) uint32 {
	store := ctx.KVStore(k.storeKey)
	idx := sdk.BigEndianToUint32(store.Get(types.HeightCountKey(height)))
	store.Set(types.HeightCountKey(height), sdk.Uint32ToBigEndian(idx+1))
	if height > k.LatestHeight(ctx) {
		store.Set(types.LatestHeightKey, sdk.Uint64ToBigEndian(uint64(height)))
	}
	return idx
}

func (k Keeper) setReceipt(ctx sdk.Context, rc Receipt) {
	ctx.KVStore(k.storeKey).Set(types.ReceiptKey(rc.Height, rc.Index), k.cdc.MustMarshalBinaryLengthPrefixed(rc))
}

// GetReceipts returns the receipts of height in delivery order.
func (k Keeper) GetReceipts(ctx sdk.Context, height int64) []Receipt {
	iter := sdk.KVStorePrefixIterator(ctx.KVStore(k.storeKey), types.HeightPrefix(height))
	defer iter.Close()

	receipts := []Receipt{}
	for ; iter.Valid(); iter.Next() {
		var rc Receipt
		k.cdc.MustUnmarshalBinaryLengthPrefixed(iter.Value(), &rc)
		receipts = append(receipts, rc)
	}
	return receipts
}

// LatestHeight is the last height that recorded a receipt.
func (k Keeper) LatestHeight(ctx sdk.Context) int64 {
	return int64(sdk.BigEndianToUint64(ctx.KVStore(k.storeKey).Get(types.LatestHeightKey)))
}

func (k Keeper) IterateReceipts(ctx sdk.Context, cb func(rc Receipt) (stop bool)) {
	iter := sdk.KVStorePrefixIterator(ctx.KVStore(k.storeKey), types.ReceiptKeyPrefix)
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		var rc Receipt
		k.cdc.MustUnmarshalBinaryLengthPrefixed(iter.Value(), &rc)
		if cb(rc) {
			return
		}
	}
}
