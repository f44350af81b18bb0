package bridge

import (
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/bridge/types"
)

// InitGenesis loads the registry and the intent log.
func InitGenesis(ctx sdk.Context, k Keeper, data GenesisState) {
	for _, addr := range data.ApprovedBridges {
		k.setApproved(ctx, addr, true)
	}
	k.setMaxTransferAmount(ctx, data.MaxTransferAmount)

	var next uint64
	for _, in := range data.Intents {
		k.setIntent(ctx, in)
		if in.Sequence >= next {
			next = in.Sequence + 1
		}
	}
	ctx.KVStore(k.storeKey).Set(types.IntentSequenceKey, sdk.Uint64ToBigEndian(next))
}

// ExportGenesis returns the bridge state.
func ExportGenesis(ctx sdk.Context, k Keeper) GenesisState {
	var intents []types.Intent
	k.IterateIntents(ctx, func(in types.Intent) bool {
		intents = append(intents, in)
		return false
	})
	return types.NewGenesisState(k.GetApprovedBridges(ctx), k.GetMaxTransferAmount(ctx), intents)
}
