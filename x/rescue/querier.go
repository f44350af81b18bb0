package rescue

import (
	"fmt"

	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/hbtc-chain/govledger/codec"
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/rescue/types"
)

// NewQuerier returns the rescue module querier.
func NewQuerier(k Keeper) sdk.Querier {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) ([]byte, sdk.Error) {
		switch path[0] {
		case types.QueryCustody:
			return queryCustody(ctx, req, k)
		case types.QueryHoldings:
			return queryHoldings(ctx, k)
		default:
			return nil, sdk.ErrUnknownRequest("unknown rescue query endpoint")
		}
	}
}

// queryCustody defaults the holder to the ledger address.
func queryCustody(ctx sdk.Context, req abci.RequestQuery, k Keeper) ([]byte, sdk.Error) {
	var params types.QueryCustodyParams
	if err := k.cdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, sdk.ErrInternal(fmt.Sprintf("failed to parse params: %s", err))
	}
	if err := types.ValidateAssetID(params.Asset); err != nil {
		return nil, err
	}
	holder := params.Holder
	if holder.Empty() {
		holder = LedgerAddress
	}
	return marshal(k, k.GetCustody(ctx, params.Asset, holder))
}

func queryHoldings(ctx sdk.Context, k Keeper) ([]byte, sdk.Error) {
	holdings := []types.Holding{}
	k.IterateHoldings(ctx, func(h types.Holding) bool {
		holdings = append(holdings, h)
		return false
	})
	return marshal(k, holdings)
}

func marshal(k Keeper, v interface{}) ([]byte, sdk.Error) {
	bz, err := codec.MarshalJSONIndent(k.cdc, v)
	if err != nil {
		return nil, sdk.ErrInternal(sdk.AppendMsgToErr("could not marshal result to JSON", err.Error()))
	}
	return bz, nil
}
