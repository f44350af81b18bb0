package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hbtc-chain/govledger/client"
	"github.com/hbtc-chain/govledger/client/context"
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/types/rest"
	"github.com/hbtc-chain/govledger/x/ledger/types"
)

// RegisterRoutes registers ledger REST handlers on the provided router.
func RegisterRoutes(cliCtx context.CLIContext, r *mux.Router) {
	r.HandleFunc("/ledger/balances/{address}", balanceHandlerFn(cliCtx)).Methods("GET")
	r.HandleFunc("/ledger/allowances/{owner}/{spender}", allowanceHandlerFn(cliCtx)).Methods("GET")
	r.HandleFunc("/ledger/supply", queryHandlerFn(cliCtx, types.QuerySupply)).Methods("GET")
	r.HandleFunc("/ledger/params", queryHandlerFn(cliCtx, types.QueryParams)).Methods("GET")
}

func balanceHandlerFn(cliCtx context.CLIContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		addr, err := sdk.AccAddressFromHex(mux.Vars(r)["address"])
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		query(w, r, cliCtx, types.QueryBalance, types.NewQueryBalanceParams(addr))
	}
}

func allowanceHandlerFn(cliCtx context.CLIContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		owner, err := sdk.AccAddressFromHex(vars["owner"])
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		spender, err := sdk.AccAddressFromHex(vars["spender"])
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		query(w, r, cliCtx, types.QueryAllowance, types.NewQueryAllowanceParams(owner, spender))
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
