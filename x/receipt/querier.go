package receipt

import (
	"fmt"

	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/hbtc-chain/govledger/codec"
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/receipt/types"
)

func NewQuerier(k Keeper) sdk.Querier {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) ([]byte, sdk.Error) {
		switch path[0] {
		case types.QueryReceipts:
			var params types.QueryReceiptsParams
			if err := k.cdc.UnmarshalJSON(req.Data, &params); err != nil {
				return nil, sdk.ErrInternal(fmt.Sprintf("failed to parse params: %s", err))
			}
			return marshal(k, k.GetReceipts(ctx, params.Height))
		case types.QueryLatest:
			return marshal(k, k.GetReceipts(ctx, k.LatestHeight(ctx)))
		default:
			return nil, sdk.ErrUnknownRequest("unknown receipt query endpoint")
		}
	}
}

func marshal(k Keeper, v interface{}) ([]byte, sdk.Error) {
	bz, err := codec.MarshalJSONIndent(k.cdc, v)
	if err != nil {
		return nil, sdk.ErrInternal(sdk.AppendMsgToErr("could not marshal result to JSON", err.Error()))
	}
	return bz, nil
}
