package server

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/hbtc-chain/govledger/client"
	"github.com/hbtc-chain/govledger/client/context"
	"github.com/hbtc-chain/govledger/ledgerapp"
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/types/rest"
)

// NewRESTRouter serves the node endpoints the CLI talks to, the module query
// routes and, when gatherer is set, the prometheus metrics.
func NewRESTRouter(cliCtx context.CLIContext, gatherer prometheus.Gatherer) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/query", queryRequestHandlerFn(cliCtx)).Methods("POST")
	r.HandleFunc("/txs", broadcastTxRequestHandlerFn(cliCtx)).Methods("POST")
	client.RegisterRoutes(cliCtx, r)
	ledgerapp.ModuleBasics.RegisterRESTRoutes(cliCtx, r)
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

func queryRequestHandlerFn(cliCtx context.CLIContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req context.QueryRequest
		if !readJSON(w, r, &req) {
			return
		}
		value, height, err := cliCtx.Node.Query(req.Path, req.Data, req.Height)
		res := context.QueryResponse{Value: value, Height: height}
		if err != nil {
			sdkErr, ok := err.(sdk.Error)
			if !ok {
				rest.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
				return
			}
			res.Code, res.Codespace, res.Log = sdkErr.Code(), sdkErr.Codespace(), sdkErr.ABCILog()
		}
		rest.WriteJSON(w, res)
	}
}

func broadcastTxRequestHandlerFn(cliCtx context.CLIContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req context.BroadcastRequest
		if !readJSON(w, r, &req) {
			return
		}
		res, err := cliCtx.Node.BroadcastTx(req.Tx)
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		rest.WriteJSON(w, res)
	}
}

func readJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return false
	}
	if err := json.Unmarshal(body, v); err != nil {
		rest.WriteErrorResponse(w, http.StatusBadRequest, "failed to decode JSON payload: "+err.Error())
		return false
	}
	return true
}

// RESTServer is the HTTP listener of a node.
type RESTServer struct {
	srv    *http.Server
	logger log.Logger
}

func NewRESTServer(listen string, handler http.Handler, logger log.Logger) *RESTServer {
	return &RESTServer{
		srv: &http.Server{
			Addr:         listen,
			Handler:      handler,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		logger: logger.With("module", "rest-server"),
	}
}

// Start listens in the background. errc receives the error that stopped the
// listener, if any.
func (s *RESTServer) Start(errc chan<- error) {
	go func() {
		s.logger.Info("starting REST server", "listen", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
	}()
}

func (s *RESTServer) Stop() error {
	return s.srv.Close()
}
