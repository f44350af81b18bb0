package votes

import (
	"sort"

	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/votes/types"
)

// InitGenesis loads pointers, histories and nonces. Blocks of the new chain
// are marked from BaseHeight on. Any delegatee whose latest power disagrees
// with the balances delegated to it gets a reconciling checkpoint at the
// genesis marker, so the ledger genesis must run first.
func InitGenesis(ctx sdk.Context, k Keeper, data GenesisState) {
	k.SetParams(ctx, data.Params)
	k.setBaseHeight(ctx, data.BaseHeight)

	for _, d := range data.Delegations {
		k.setDelegatePointer(ctx, d.Delegator, d.Delegatee)
	}
	for _, ac := range data.Checkpoints {
		for i, c := range ac.Checkpoints {
			k.setCheckpoint(ctx, ac.Account, uint32(i), c)
		}
		k.setNumCheckpoints(ctx, ac.Account, uint32(len(ac.Checkpoints)))
	}
	for _, n := range data.Nonces {
		k.setNonce(ctx, n.Account, n.Nonce)
	}

	sums := delegatedSums(ctx, k)
	addrs := make([]string, 0, len(sums))
	for addr := range sums {
		addrs = append(addrs, addr)
	}
	sort.Strings(addrs)
	for _, addr := range addrs {
		account := sdk.MustAccAddressFromHex(addr)
		current := k.GetCurrentVotes(ctx, account)
		if !current.Equal(sums[addr]) {
			k.writeCheckpoint(ctx, account, current, sums[addr])
		}
	}
}

// ExportGenesis returns the votes state. The base height is the marker of
// the last finished block, or the latest checkpoint if that is later.
func ExportGenesis(ctx sdk.Context, k Keeper) GenesisState {
	base := k.GetBaseHeight(ctx)
	if ctx.BlockHeight() > 0 {
		base = k.BlockMarker(ctx) - 1
	}
	var delegations []types.Delegation
	k.IterateDelegations(ctx, func(delegator, delegatee sdk.AccAddress) bool {
		delegations = append(delegations, types.Delegation{Delegator: delegator, Delegatee: delegatee})
		return false
	})

	var checkpoints []types.AccountCheckpoints
	k.IterateCheckpointAccounts(ctx, func(account sdk.AccAddress, _ uint32) bool {
		history := k.GetCheckpoints(ctx, account)
		if n := len(history); n > 0 && history[n-1].FromBlock > base {
			base = history[n-1].FromBlock
		}
		checkpoints = append(checkpoints, types.AccountCheckpoints{
			Account:     account,
			Checkpoints: history,
		})
		return false
	})

	var nonces []types.Nonce
	k.IterateNonces(ctx, func(account sdk.AccAddress, nonce uint64) bool {
		nonces = append(nonces, types.Nonce{Account: account, Nonce: nonce})
		return false
	})

	gs := types.NewGenesisState(k.GetParams(ctx), delegations, checkpoints, nonces)
	gs.BaseHeight = base
	return gs
}
