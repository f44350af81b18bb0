package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hbtc-chain/govledger/client"
	"github.com/hbtc-chain/govledger/client/context"
	"github.com/hbtc-chain/govledger/types/rest"
	"github.com/hbtc-chain/govledger/x/bridge/types"
)

// RegisterRoutes registers bridge REST handlers on the provided router.
func RegisterRoutes(cliCtx context.CLIContext, r *mux.Router) {
	r.HandleFunc("/bridge/registry", registryHandlerFn(cliCtx)).Methods("GET")
	r.HandleFunc("/bridge/intents", intentsHandlerFn(cliCtx)).Methods("GET")
	r.HandleFunc("/bridge/intents/{id}", intentHandlerFn(cliCtx)).Methods("GET")
}

func registryHandlerFn(cliCtx context.CLIContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query(w, r, cliCtx, types.QueryRegistry, nil)
	}
}

func intentHandlerFn(cliCtx context.CLIContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query(w, r, cliCtx, types.QueryIntent, types.QueryIntentParams{ID: mux.Vars(r)["id"]})
	}
}

// intentsHandlerFn serves ?page=&limit= over the intent log.
func intentsHandlerFn(cliCtx context.CLIContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var page, limit int64 = 1, 0
		var ok bool
		if s := r.FormValue("page"); s != "" {
			if page, ok = rest.ParseInt64OrReturnBadRequest(w, s); !ok {
				return
			}
		}
		if s := r.FormValue("limit"); s != "" {
			if limit, ok = rest.ParseInt64OrReturnBadRequest(w, s); !ok {
				return
			}
		}
		query(w, r, cliCtx, types.QueryIntents, types.NewQueryIntentsParams(int(page), int(limit)))
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
