package rest

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hbtc-chain/govledger/client"
	"github.com/hbtc-chain/govledger/client/context"
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/types/rest"
	"github.com/hbtc-chain/govledger/x/votes/types"
)

// RegisterRoutes registers votes REST handlers on the provided router.
func RegisterRoutes(cliCtx context.CLIContext, r *mux.Router) {
	r.HandleFunc("/votes/{address}/prior/{block}", priorVotesHandlerFn(cliCtx)).Methods("GET")
	r.HandleFunc("/votes/{address}/current", accountHandlerFn(cliCtx, types.QueryCurrentVotes)).Methods("GET")
	r.HandleFunc("/votes/{address}/checkpoints", accountHandlerFn(cliCtx, types.QueryCheckpoints)).Methods("GET")
	r.HandleFunc("/votes/{address}/delegate", accountHandlerFn(cliCtx, types.QueryDelegate)).Methods("GET")
	r.HandleFunc("/votes/{address}/nonce", accountHandlerFn(cliCtx, types.QueryNonce)).Methods("GET")
	r.HandleFunc("/votes/domain", domainHandlerFn(cliCtx)).Methods("GET")
}

func priorVotesHandlerFn(cliCtx context.CLIContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		account, err := sdk.AccAddressFromHex(vars["address"])
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		block, err := strconv.ParseUint(vars["block"], 10, 64)
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		query(w, r, cliCtx, types.QueryPriorVotes, types.NewQueryPriorVotesParams(account, block))
	}
}

func accountHandlerFn(cliCtx context.CLIContext, endpoint string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account, err := sdk.AccAddressFromHex(mux.Vars(r)["address"])
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		query(w, r, cliCtx, endpoint, types.NewQueryAccountParams(account))
	}
}

func domainHandlerFn(cliCtx context.CLIContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query(w, r, cliCtx, types.QueryDomain, nil)
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
