package keeper

import (
	"fmt"
	"time"

	"github.com/tendermint/tendermint/libs/log"

	sdk "github.com/hbtc-chain/govledger/types"
	accesstypes "github.com/hbtc-chain/govledger/x/access/types"
	"github.com/hbtc-chain/govledger/x/crisis/internal/types"
)

// Keeper - crisis keeper
type Keeper struct {
	routes         []types.InvarRoute
	invCheckPeriod uint
	ak             types.AccessKeeper
}

// NewKeeper creates a new Keeper object. An invCheckPeriod of zero disables
// the per-block assertion.
func NewKeeper(ak types.AccessKeeper, invCheckPeriod uint) Keeper {
	return Keeper{
		routes:         []types.InvarRoute{},
		invCheckPeriod: invCheckPeriod,
		ak:             ak,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// register routes for the
func (k *Keeper) RegisterRoute(moduleName, route string, invar sdk.Invariant) {
	invarRoute := types.NewInvarRoute(moduleName, route, invar)
	k.routes = append(k.routes, invarRoute)
}

// Routes - return the keeper's invariant routes
func (k Keeper) Routes() []types.InvarRoute {
	return k.routes
}

// Invariants returns all the registered Crisis keeper invariants.
func (k Keeper) Invariants() []sdk.Invariant {
	var invars []sdk.Invariant
	for _, route := range k.routes {
		invars = append(invars, route.Invar)
	}
	return invars
}

// Route looks up a registered invariant by its full route.
func (k Keeper) Route(fullRoute string) (types.InvarRoute, bool) {
	for _, route := range k.routes {
		if route.FullRoute() == fullRoute {
			return route, true
		}
	}
	return types.InvarRoute{}, false
}

// AssertInvariants asserts all registered invariants. If any invariant fails,
// the method panics.
func (k Keeper) AssertInvariants(ctx sdk.Context) {
	logger := k.Logger(ctx)

	start := time.Now()
	invarRoutes := k.Routes()
	for _, ir := range invarRoutes {
		if res, stop := ir.Invar(ctx); stop {
			panic(fmt.Errorf("invariant broken: %s\n"+
				"\tCRITICAL please submit the following transaction:\n"+
				"\t\t govledgerd tx crisis invariant-broken %v %v", res, ir.ModuleName, ir.Route))
		}
	}

	diff := time.Since(start)
	logger.Info("asserted all invariants", "duration", diff, "height", ctx.BlockHeight())
}

// InvCheckPeriod returns the invariant checks period.
func (k Keeper) InvCheckPeriod() uint { return k.invCheckPeriod }

// VerifyInvariant runs one invariant on behalf of a pauser. A broken
// invariant pauses the ledger.
func (k Keeper) VerifyInvariant(ctx sdk.Context, caller sdk.AccAddress, fullRoute string) (bool, sdk.Error) {
	if err := k.ak.AssertRole(ctx, accesstypes.RolePauser, caller); err != nil {
		return false, err
	}
	route, ok := k.Route(fullRoute)
	if !ok {
		return false, types.ErrUnknownInvariant(types.DefaultCodespace)
	}

	res, broken := route.Invar(ctx)
	if !broken {
		return false, nil
	}
	k.Logger(ctx).Error("invariant broken", "route", fullRoute, "report", res, "caller", caller)
	if !k.ak.IsPaused(ctx) {
		if err := k.ak.Pause(ctx, caller); err != nil {
			return true, err
		}
	}
	return true, nil
}
