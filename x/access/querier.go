package access

import (
	"fmt"

	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/hbtc-chain/govledger/codec"
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/access/types"
)

// NewQuerier returns the access module querier.
func NewQuerier(keeper Keeper) sdk.Querier {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) ([]byte, sdk.Error) {
		switch path[0] {
		case types.QueryRole:
			return queryRole(ctx, req, keeper)
		case types.QueryHasRole:
			return queryHasRole(ctx, req, keeper)
		case types.QueryPaused:
			return codec.MustMarshalJSONIndent(keeper.cdc, keeper.IsPaused(ctx)), nil
		case types.QueryAdmins:
			return queryAdmins(ctx, keeper)
		default:
			return nil, sdk.ErrUnknownRequest("unknown access query endpoint")
		}
	}
}

func queryRole(ctx sdk.Context, req abci.RequestQuery, keeper Keeper) ([]byte, sdk.Error) {
	var params types.QueryRoleParams
	if err := keeper.cdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, sdk.ErrInternal(fmt.Sprintf("failed to parse params: %s", err))
	}
	if !params.Role.IsValid() {
		return nil, types.ErrInvalidRole(keeper.codespace, params.Role)
	}

	res := types.QueryResRole{
		Role:    params.Role,
		Admin:   keeper.GetRoleAdmin(ctx, params.Role),
		Members: keeper.GetRoleMembers(ctx, params.Role),
	}
	bz, err := codec.MarshalJSONIndent(keeper.cdc, res)
	if err != nil {
		return nil, sdk.ErrInternal(sdk.AppendMsgToErr("could not marshal result to JSON", err.Error()))
	}
	return bz, nil
}

func queryHasRole(ctx sdk.Context, req abci.RequestQuery, keeper Keeper) ([]byte, sdk.Error) {
	var params types.QueryHasRoleParams
	if err := keeper.cdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, sdk.ErrInternal(fmt.Sprintf("failed to parse params: %s", err))
	}
	if !params.Role.IsValid() {
		return nil, types.ErrInvalidRole(keeper.codespace, params.Role)
	}

	return codec.MustMarshalJSONIndent(keeper.cdc, keeper.HasRole(ctx, params.Role, params.Account)), nil
}

func queryAdmins(ctx sdk.Context, keeper Keeper) ([]byte, sdk.Error) {
	admins := make([]types.RoleAdmin, 0, len(types.AllRoles))
	for _, role := range types.AllRoles {
		admins = append(admins, types.RoleAdmin{Role: role, Admin: keeper.GetRoleAdmin(ctx, role)})
	}
	bz, err := codec.MarshalJSONIndent(keeper.cdc, admins)
	if err != nil {
		return nil, sdk.ErrInternal(sdk.AppendMsgToErr("could not marshal result to JSON", err.Error()))
	}
	return bz, nil
}
