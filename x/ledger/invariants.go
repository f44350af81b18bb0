package ledger

import (
	"fmt"

	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/ledger/types"
)

// RegisterInvariants registers the ledger module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "total-supply", TotalSupplyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "nonnegative-balances", NonnegativeBalancesInvariant(k))
}

// AllInvariants runs all invariants of the ledger module.
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := TotalSupplyInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return NonnegativeBalancesInvariant(k)(ctx)
	}
}

// TotalSupplyInvariant checks that the sum of balances equals the supply.
func TotalSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		sum := sdk.ZeroInt()
		k.IterateBalances(ctx, func(_ sdk.AccAddress, amount sdk.Int) bool {
			sum = sum.Add(amount)
			return false
		})

		supply := k.GetSupply(ctx)
		broken := !sum.Equal(supply)
		return sdk.FormatInvariant(types.ModuleName, "total supply",
			fmt.Sprintf("\tsum of balances: %s\n\ttotal supply:    %s\n", sum, supply)), broken
	}
}

// NonnegativeBalancesInvariant checks that no balance went below zero.
func NonnegativeBalancesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var msg string
		var count int

		k.IterateBalances(ctx, func(addr sdk.AccAddress, amount sdk.Int) bool {
			if amount.IsNegative() {
				count++
				msg += fmt.Sprintf("\t%s has a negative balance of %s\n", addr, amount)
			}
			return false
		})
		broken := count != 0

		return sdk.FormatInvariant(types.ModuleName, "nonnegative balances",
			fmt.Sprintf("found %d accounts with a negative balance\n%s", count, msg)), broken
	}
}
