package client

import (
	"github.com/gorilla/mux"

	"github.com/hbtc-chain/govledger/client/context"
	"github.com/hbtc-chain/govledger/client/rpc"
)

// Register routes
func RegisterRoutes(cliCtx context.CLIContext, r *mux.Router) {
	rpc.RegisterRPCRoutes(cliCtx, r)
}
