package votes

import (
	"fmt"

	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/hbtc-chain/govledger/codec"
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/votes/types"
)

// NewQuerier returns the votes module querier.
func NewQuerier(k Keeper) sdk.Querier {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) ([]byte, sdk.Error) {
		switch path[0] {
		case types.QueryPriorVotes:
			return queryPriorVotes(ctx, req, k)
		case types.QueryCurrentVotes:
			return queryAccount(ctx, req, k, func(a sdk.AccAddress) interface{} { return k.GetCurrentVotes(ctx, a) })
		case types.QueryCheckpoints:
			return queryAccount(ctx, req, k, func(a sdk.AccAddress) interface{} { return k.GetCheckpoints(ctx, a) })
		case types.QueryDelegate:
			return queryAccount(ctx, req, k, func(a sdk.AccAddress) interface{} { return k.GetDelegate(ctx, a) })
		case types.QueryNonce:
			return queryAccount(ctx, req, k, func(a sdk.AccAddress) interface{} { return k.GetNonce(ctx, a) })
		case types.QueryDomain:
			return marshal(k, k.Domain(ctx))
		default:
			return nil, sdk.ErrUnknownRequest("unknown votes query endpoint")
		}
	}
}

func queryPriorVotes(ctx sdk.Context, req abci.RequestQuery, k Keeper) ([]byte, sdk.Error) {
	var params types.QueryPriorVotesParams
	if err := k.cdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, sdk.ErrInternal(fmt.Sprintf("failed to parse params: %s", err))
	}
	votes, err := k.GetPriorVotes(ctx, params.Account, params.Block)
	if err != nil {
		return nil, err
	}
	return marshal(k, votes)
}

func queryAccount(ctx sdk.Context, req abci.RequestQuery, k Keeper, get func(sdk.AccAddress) interface{}) ([]byte, sdk.Error) {
	var params types.QueryAccountParams
	if err := k.cdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, sdk.ErrInternal(fmt.Sprintf("failed to parse params: %s", err))
	}
	return marshal(k, get(params.Account))
}

func marshal(k Keeper, v interface{}) ([]byte, sdk.Error) {
	bz, err := codec.MarshalJSONIndent(k.cdc, v)
	if err != nil {
		return nil, sdk.ErrInternal(sdk.AppendMsgToErr("could not marshal result to JSON", err.Error()))
	}
	return bz, nil
}
