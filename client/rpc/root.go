package rpc

import (
	"github.com/gorilla/mux"

	"github.com/hbtc-chain/govledger/client/context"
)

// Register REST endpoints
func RegisterRPCRoutes(cliCtx context.CLIContext, r *mux.Router) {
	r.HandleFunc("/node_info", NodeInfoRequestHandlerFn(cliCtx)).Methods("GET")
	r.HandleFunc("/blocks/latest", NodeInfoRequestHandlerFn(cliCtx)).Methods("GET")
}
