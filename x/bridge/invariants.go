package bridge

import (
	"fmt"

	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/bridge/types"
)

// RegisterInvariants registers the bridge module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "intent-log", IntentLogInvariant(k))
}

// IntentLogInvariant checks that stored intents are contiguous from zero,
// carry their own hash and are reachable through the ID index.
func IntentLogInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var msg string
		var count int
		var next uint64
		k.IterateIntents(ctx, func(in types.Intent) bool {
			if in.Sequence != next {
				count++
				msg += fmt.Sprintf("\tintent %s has sequence %d, expected %d\n", in.ID, in.Sequence, next)
			}
			next = in.Sequence + 1
			if in.ComputeHash().String() != in.Hash {
				count++
				msg += fmt.Sprintf("\tintent %s hash mismatch\n", in.ID)
			}
			if _, ok := k.GetIntent(ctx, in.ID); !ok {
				count++
				msg += fmt.Sprintf("\tintent %s missing from the id index\n", in.ID)
			}
			return false
		})

		broken := count != 0
		return sdk.FormatInvariant(types.ModuleName, "intent log",
			fmt.Sprintf("found %d broken intents\n%s", count, msg)), broken
	}
}
