package receipt

import (
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/receipt/types"
)

func InitGenesis(ctx sdk.Context, k Keeper, data GenesisState) {
	store := ctx.KVStore(k.storeKey)
	for _, rc := range data.Receipts {
		k.setReceipt(ctx, rc)
		store.Set(types.HeightCountKey(rc.Height), sdk.Uint32ToBigEndian(rc.Index+1))
		store.Set(types.LatestHeightKey, sdk.Uint64ToBigEndian(uint64(rc.Height)))
	}
}

func ExportGenesis(ctx sdk.Context, k Keeper) GenesisState {
	var receipts []Receipt
	k.IterateReceipts(ctx, func(rc Receipt) bool {
		receipts = append(receipts, rc)
		return false
	})
	return types.NewGenesisState(receipts)
}
