package crisis

import (
	"encoding/json"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/hbtc-chain/govledger/client/context"
	"github.com/hbtc-chain/govledger/codec"
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/types/module"
	"github.com/hbtc-chain/govledger/x/crisis/client/cli"
)

var (
	_ module.AppModule      = AppModule{}
	_ module.AppModuleBasic = AppModuleBasic{}
)

// app module basics object
type AppModuleBasic struct{}

// module name
func (AppModuleBasic) Name() string {
	return ModuleName
}

// register module codec
func (AppModuleBasic) RegisterCodec(cdc *codec.Codec) {
	RegisterCodec(cdc)
}

// crisis keeps no state of its own
func (AppModuleBasic) DefaultGenesis() json.RawMessage {
	return json.RawMessage("{}")
}

func (AppModuleBasic) ValidateGenesis(_ json.RawMessage) error {
	return nil
}

// register rest routes
func (AppModuleBasic) RegisterRESTRoutes(_ context.CLIContext, _ *mux.Router) {}

// get the root tx command of this module
func (AppModuleBasic) GetTxCmd(cdc *codec.Codec) *cobra.Command {
	return cli.GetTxCmd(cdc)
}

// get the root query command of this module
func (AppModuleBasic) GetQueryCmd(_ *codec.Codec) *cobra.Command { return nil }

//___________________________

// AppModule runs the invariant registry
type AppModule struct {
	AppModuleBasic
	keeper *Keeper
}

// NewAppModule creates a new AppModule object. The keeper is shared with the
// module manager, which registers every other module's invariants on it.
func NewAppModule(keeper *Keeper) AppModule {
	return AppModule{
		AppModuleBasic: AppModuleBasic{},
		keeper:         keeper,
	}
}

// register invariants
func (AppModule) RegisterInvariants(_ sdk.InvariantRegistry) {}

// module message route name
func (AppModule) Route() string {
	return RouterKey
}

// module handler
func (am AppModule) NewHandler() sdk.Handler {
	return NewHandler(*am.keeper)
}

// module querier route name
func (AppModule) QuerierRoute() string { return "" }

// module querier
func (AppModule) NewQuerierHandler() sdk.Querier { return nil }

// module init-genesis
func (AppModule) InitGenesis(_ sdk.Context, _ json.RawMessage) {}

// module export genesis
func (am AppModule) ExportGenesis(_ sdk.Context) json.RawMessage {
	return am.DefaultGenesis()
}

// module begin-block
func (AppModule) BeginBlock(_ sdk.Context, _ abci.RequestBeginBlock) {}

// EndBlock asserts every registered invariant each InvCheckPeriod blocks.
func (am AppModule) EndBlock(ctx sdk.Context, _ abci.RequestEndBlock) {
	period := int64(am.keeper.InvCheckPeriod())
	if period == 0 || ctx.BlockHeight()%period != 0 {
		return
	}
	am.keeper.AssertInvariants(ctx)
}
