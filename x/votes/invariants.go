package votes

import (
	"fmt"
	"sort"

	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/votes/types"
)

// RegisterInvariants registers the votes module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "delegated-power", DelegatedPowerInvariant(k))
	ir.RegisterRoute(types.ModuleName, "checkpoint-order", CheckpointOrderInvariant(k))
}

// AllInvariants runs all invariants of the votes module.
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := CheckpointOrderInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return DelegatedPowerInvariant(k)(ctx)
	}
}

// DelegatedPowerInvariant checks that the latest power of every account equals
// the summed balances of the accounts delegating to it.
func DelegatedPowerInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		expected := delegatedSums(ctx, k)

		var msg string
		var count int
		check := func(account sdk.AccAddress) {
			want, ok := expected[account.String()]
			if !ok {
				want = sdk.ZeroInt()
			}
			if got := k.GetCurrentVotes(ctx, account); !got.Equal(want) {
				count++
				msg += fmt.Sprintf("\t%s has %s votes, delegated balances sum to %s\n", account, got, want)
			}
		}

		k.IterateCheckpointAccounts(ctx, func(account sdk.AccAddress, _ uint32) bool {
			check(account)
			delete(expected, account.String())
			return false
		})
		remaining := make([]string, 0, len(expected))
		for addr := range expected {
			remaining = append(remaining, addr)
		}
		sort.Strings(remaining)
		for _, addr := range remaining {
			if want := expected[addr]; want.IsPositive() {
				count++
				msg += fmt.Sprintf("\t%s has no checkpoints, delegated balances sum to %s\n", addr, want)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(types.ModuleName, "delegated power",
			fmt.Sprintf("found %d accounts with mismatched power\n%s", count, msg)), broken
	}
}

// CheckpointOrderInvariant checks that every history strictly increases.
func CheckpointOrderInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var msg string
		var count int
		k.IterateCheckpointAccounts(ctx, func(account sdk.AccAddress, _ uint32) bool {
			if err := k.GetCheckpoints(ctx, account).Validate(); err != nil {
				count++
				msg += fmt.Sprintf("\t%s: %v\n", account, err)
			}
			return false
		})

		broken := count != 0
		return sdk.FormatInvariant(types.ModuleName, "checkpoint order",
			fmt.Sprintf("found %d unordered histories\n%s", count, msg)), broken
	}
}

func delegatedSums(ctx sdk.Context, k Keeper) map[string]sdk.Int {
	sums := make(map[string]sdk.Int)
	k.IterateDelegations(ctx, func(delegator, delegatee sdk.AccAddress) bool {
		key := delegatee.String()
		sum, ok := sums[key]
		if !ok {
			sum = sdk.ZeroInt()
		}
		sums[key] = sum.Add(k.lk.GetBalance(ctx, delegator))
		return false
	})
	return sums
}
