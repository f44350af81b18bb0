package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hbtc-chain/govledger/client"
	"github.com/hbtc-chain/govledger/client/context"
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/types/rest"
	"github.com/hbtc-chain/govledger/x/rescue/types"
)

// RegisterRoutes registers rescue REST handlers on the provided router.
func RegisterRoutes(cliCtx context.CLIContext, r *mux.Router) {
	r.HandleFunc("/rescue/holdings", holdingsHandlerFn(cliCtx)).Methods("GET")
	r.HandleFunc("/rescue/custody/{asset}", custodyHandlerFn(cliCtx)).Methods("GET")
}

// custodyHandlerFn takes an optional ?holder= address.
func custodyHandlerFn(cliCtx context.CLIContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		holder, err := sdk.AccAddressFromHex(r.FormValue("holder"))
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		query(w, r, cliCtx, types.QueryCustody, types.NewQueryCustodyParams(mux.Vars(r)["asset"], holder))
	}
}

func holdingsHandlerFn(cliCtx context.CLIContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query(w, r, cliCtx, types.QueryHoldings, nil)
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
