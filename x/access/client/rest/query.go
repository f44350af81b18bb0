package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hbtc-chain/govledger/client"
	"github.com/hbtc-chain/govledger/client/context"
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/types/rest"
	"github.com/hbtc-chain/govledger/x/access/types"
)

// RegisterRoutes registers access module REST handlers on the provided router.
func RegisterRoutes(cliCtx context.CLIContext, r *mux.Router) {
	r.HandleFunc("/access/roles/{role}", roleHandlerFn(cliCtx)).Methods("GET")
	r.HandleFunc("/access/roles/{role}/{address}", hasRoleHandlerFn(cliCtx)).Methods("GET")
	r.HandleFunc("/access/admins", queryHandlerFn(cliCtx, types.QueryAdmins)).Methods("GET")
	r.HandleFunc("/access/paused", queryHandlerFn(cliCtx, types.QueryPaused)).Methods("GET")
}

func roleHandlerFn(cliCtx context.CLIContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role, err := types.RoleFromString(mux.Vars(r)["role"])
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		query(w, r, cliCtx, types.QueryRole, types.QueryRoleParams{Role: role})
	}
}

func hasRoleHandlerFn(cliCtx context.CLIContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		role, err := types.RoleFromString(vars["role"])
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		account, err := sdk.AccAddressFromHex(vars["address"])
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		query(w, r, cliCtx, types.QueryHasRole, types.QueryHasRoleParams{Role: role, Account: account})
	}
}

func queryHandlerFn(cliCtx context.CLIContext, endpoint string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query(w, r, cliCtx, endpoint, nil)
	}
}

func query(w http.ResponseWriter, r *http.Request, cliCtx context.CLIContext, endpoint string, params interface{}) {
	cliCtx, ok := rest.ParseQueryHeightOrReturnBadRequest(w, cliCtx, r)
	if !ok {
		return
	}

	var bz []byte
	if params != nil {
		var err error
		bz, err = cliCtx.Codec.MarshalJSON(params)
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	res, height, err := cliCtx.QueryWithData(client.ModuleQueryRoute(types.QuerierRoute, endpoint), bz)
	if err != nil {
		rest.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	cliCtx = cliCtx.WithHeight(height)
	rest.PostProcessResponse(w, cliCtx, res)
}
