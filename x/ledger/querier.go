package ledger

import (
	"fmt"

	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/hbtc-chain/govledger/codec"
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/ledger/types"
)

// NewQuerier returns the ledger module querier.
func NewQuerier(k Keeper) sdk.Querier {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) ([]byte, sdk.Error) {
		switch path[0] {
		case types.QueryBalance:
			return queryBalance(ctx, req, k)
		case types.QuerySupply:
			return marshal(k, k.GetSupply(ctx))
		case types.QueryAllowance:
			return queryAllowance(ctx, req, k)
		case types.QueryParams:
			return marshal(k, k.GetParams(ctx))
		default:
			return nil, sdk.ErrUnknownRequest("unknown ledger query endpoint")
		}
	}
}

func queryBalance(ctx sdk.Context, req abci.RequestQuery, k Keeper) ([]byte, sdk.Error) {
	var params types.QueryBalanceParams
	if err := k.cdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, sdk.ErrInternal(fmt.Sprintf("failed to parse params: %s", err))
	}
	return marshal(k, k.GetBalance(ctx, params.Address))
}

func queryAllowance(ctx sdk.Context, req abci.RequestQuery, k Keeper) ([]byte, sdk.Error) {
	var params types.QueryAllowanceParams
	if err := k.cdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, sdk.ErrInternal(fmt.Sprintf("failed to parse params: %s", err))
	}
	return marshal(k, k.GetAllowance(ctx, params.Owner, params.Spender))
}

func marshal(k Keeper, v interface{}) ([]byte, sdk.Error) {
	bz, err := codec.MarshalJSONIndent(k.cdc, v)
	if err != nil {
		return nil, sdk.ErrInternal(sdk.AppendMsgToErr("could not marshal result to JSON", err.Error()))
	}
	return bz, nil
}
