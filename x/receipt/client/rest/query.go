package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hbtc-chain/govledger/client"
	"github.com/hbtc-chain/govledger/client/context"
	"github.com/hbtc-chain/govledger/types/rest"
	"github.com/hbtc-chain/govledger/x/receipt/types"
)

// RegisterRoutes registers receipt REST handlers on the provided router.
func RegisterRoutes(cliCtx context.CLIContext, r *mux.Router) {
	r.HandleFunc("/receipt/events/latest", latestHandlerFn(cliCtx)).Methods("GET")
	r.HandleFunc("/receipt/events/{height}", receiptsHandlerFn(cliCtx)).Methods("GET")
}

func receiptsHandlerFn(cliCtx context.CLIContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		height, ok := rest.ParseInt64OrReturnBadRequest(w, mux.Vars(r)["height"])
		if !ok {
			return
		}
		bz, err := cliCtx.Codec.MarshalJSON(types.NewQueryReceiptsParams(height))
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		query(w, r, cliCtx, types.QueryReceipts, bz)
	}
}

func latestHandlerFn(cliCtx context.CLIContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query(w, r, cliCtx, types.QueryLatest, nil)
	}
}

func query(w http.ResponseWriter, r *http.Request, cliCtx context.CLIContext, endpoint string, bz []byte) {
	cliCtx, ok := rest.ParseQueryHeightOrReturnBadRequest(w, cliCtx, r)
	if !ok {
		return
	}
	res, height, err := cliCtx.QueryWithData(client.ModuleQueryRoute(types.QuerierRoute, endpoint), bz)
	if err != nil {
		rest.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	cliCtx = cliCtx.WithHeight(height)
	rest.PostProcessResponse(w, cliCtx, res)
}
