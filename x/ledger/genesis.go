package ledger

import (
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/ledger/types"
)

// InitGenesis sets params, balances and allowances. Supply is the sum of
// balances and no hooks run.
func InitGenesis(ctx sdk.Context, k Keeper, data GenesisState) {
	k.SetParams(ctx, data.Params)

	supply := sdk.ZeroInt()
	for _, b := range data.Balances {
		k.setBalance(ctx, b.Address, b.Amount)
		supply = supply.Add(b.Amount)
	}
	k.setSupply(ctx, supply)

	for _, a := range data.Allowances {
		k.setAllowance(ctx, a.Owner, a.Spender, a.Amount)
	}
}

// ExportGenesis returns the ledger state.
func ExportGenesis(ctx sdk.Context, k Keeper) GenesisState {
	var balances []types.Balance
	k.IterateBalances(ctx, func(addr sdk.AccAddress, amount sdk.Int) bool {
		balances = append(balances, types.Balance{Address: addr, Amount: amount})
		return false
	})

	var allowances []types.Allowance
	k.IterateAllowances(ctx, func(a types.Allowance) bool {
		allowances = append(allowances, a)
		return false
	})

	return types.NewGenesisState(k.GetParams(ctx), balances, allowances)
}
