package bridge

import (
	"fmt"

	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/hbtc-chain/govledger/codec"
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/bridge/types"
)

const defaultIntentsLimit = 100

// NewQuerier returns the bridge module querier.
func NewQuerier(k Keeper) sdk.Querier {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) ([]byte, sdk.Error) {
		switch path[0] {
		case types.QueryRegistry:
			return queryRegistry(ctx, k)
		case types.QueryIntent:
			return queryIntent(ctx, req, k)
		case types.QueryIntents:
			return queryIntents(ctx, req, k)
		default:
			return nil, sdk.ErrUnknownRequest("unknown bridge query endpoint")
		}
	}
}

func queryRegistry(ctx sdk.Context, k Keeper) ([]byte, sdk.Error) {
	return marshal(k, types.QueryResRegistry{
		ApprovedBridges:   k.GetApprovedBridges(ctx),
		MaxTransferAmount: k.GetMaxTransferAmount(ctx),
	})
}

func queryIntent(ctx sdk.Context, req abci.RequestQuery, k Keeper) ([]byte, sdk.Error) {
	var params types.QueryIntentParams
	if err := k.cdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, sdk.ErrInternal(fmt.Sprintf("failed to parse params: %s", err))
	}
	in, ok := k.GetIntent(ctx, params.ID)
	if !ok {
		return nil, types.ErrUnknownIntent(k.codespace, params.ID)
	}
	return marshal(k, in)
}

// queryIntents pages through intents in emission order. Page starts at 1.
func queryIntents(ctx sdk.Context, req abci.RequestQuery, k Keeper) ([]byte, sdk.Error) {
	var params types.QueryIntentsParams
	if err := k.cdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, sdk.ErrInternal(fmt.Sprintf("failed to parse params: %s", err))
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = defaultIntentsLimit
	}

	skip := (params.Page - 1) * params.Limit
	intents := make([]types.Intent, 0, params.Limit)
	k.IterateIntents(ctx, func(in types.Intent) bool {
		if skip > 0 {
			skip--
			return false
		}
		intents = append(intents, in)
		return len(intents) >= params.Limit
	})
	return marshal(k, intents)
}

func marshal(k Keeper, v interface{}) ([]byte, sdk.Error) {
	bz, err := codec.MarshalJSONIndent(k.cdc, v)
	if err != nil {
		return nil, sdk.ErrInternal(sdk.AppendMsgToErr("could not marshal result to JSON", err.Error()))
	}
	return bz, nil
}
