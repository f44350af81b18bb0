package rescue

import (
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/rescue/types"
)

func InitGenesis(ctx sdk.Context, k Keeper, data GenesisState) {
	for _, h := range data.Holdings {
		k.setCustody(ctx, h.Asset, h.Holder, h.Amount)
	}
}

func ExportGenesis(ctx sdk.Context, k Keeper) GenesisState {
	var holdings []types.Holding
	k.IterateHoldings(ctx, func(h types.Holding) bool {
		holdings = append(holdings, h)
		return false
	})
	return types.NewGenesisState(holdings)
}
