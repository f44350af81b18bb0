package ledgerapp

import (
	"fmt"

	sdk "github.com/hbtc-chain/govledger/types"
)

type router struct {
	routes map[string]sdk.Handler
}

var _ sdk.Router = (*router)(nil)

// NewRouter returns a reference to a new router.
func NewRouter() sdk.Router {
	return &router{
		routes: make(map[string]sdk.Handler),
	}
}

// AddRoute adds a route path to the router with a given handler. The route
// must be alphanumeric and may be registered once.
func (rtr *router) AddRoute(path string, h sdk.Handler) sdk.Router {
	if !sdk.IsAlphaNumeric(path) {
		panic("route expressions can only contain alphanumeric characters")
	}
	if _, ok := rtr.routes[path]; ok {
		panic(fmt.Sprintf("route %s has already been initialized", path))
	}

	rtr.routes[path] = h
	return rtr
}

// Route returns a handler for a given route path, nil when none is registered.
func (rtr *router) Route(path string) sdk.Handler {
	return rtr.routes[path]
}

type queryRouter struct {
	routes map[string]sdk.Querier
}

var _ sdk.QueryRouter = (*queryRouter)(nil)

// NewQueryRouter returns a reference to a new query router.
func NewQueryRouter() sdk.QueryRouter {
	return &queryRouter{
		routes: make(map[string]sdk.Querier),
	}
}

func (qrt *queryRouter) AddRoute(path string, q sdk.Querier) sdk.QueryRouter {
	if !sdk.IsAlphaNumeric(path) {
		panic("route expressions can only contain alphanumeric characters")
	}
	if _, ok := qrt.routes[path]; ok {
		panic(fmt.Sprintf("route %s has already been initialized", path))
	}

	qrt.routes[path] = q
	return qrt
}

func (qrt *queryRouter) Route(path string) sdk.Querier {
	return qrt.routes[path]
}
