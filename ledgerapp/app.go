package ledgerapp

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/pkg/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	dbm "github.com/tendermint/tm-db"

	"github.com/hbtc-chain/govledger/codec"
	"github.com/hbtc-chain/govledger/store"
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/types/module"
	"github.com/hbtc-chain/govledger/x/access"
	"github.com/hbtc-chain/govledger/x/bridge"
	"github.com/hbtc-chain/govledger/x/crisis"
	"github.com/hbtc-chain/govledger/x/ledger"
	"github.com/hbtc-chain/govledger/x/receipt"
	"github.com/hbtc-chain/govledger/x/rescue"
	"github.com/hbtc-chain/govledger/x/votes"
)

const (
	appName = "GovLedgerApp"

	// MainStoreKey holds the signer sequences and the chain metadata.
	MainStoreKey = "main"
)

var (
	// default home directories for the application CLI
	DefaultCLIHome = os.ExpandEnv("$HOME/.govledgercli")

	// default home directories for the application daemon
	DefaultNodeHome = os.ExpandEnv("$HOME/.govledger")

	// The module BasicManager is in charge of setting up basic,
	// non-dependant module elements, such as codec registration
	// and genesis verification.
	ModuleBasics = module.NewBasicManager(
		access.AppModuleBasic{},
		ledger.AppModuleBasic{},
		votes.AppModuleBasic{},
		bridge.AppModuleBasic{},
		rescue.AppModuleBasic{},
		receipt.AppModuleBasic{},
		crisis.AppModuleBasic{},
	)
)

// custom tx codec
func MakeCodec() *codec.Codec {
	var cdc = codec.New()
	ModuleBasics.RegisterCodec(cdc)
	sdk.RegisterCodec(cdc)
	codec.RegisterCrypto(cdc)
	return cdc
}

// GenesisState is the app_state of a genesis file, keyed by module name.
type GenesisState map[string]json.RawMessage

// NewDefaultGenesisState returns the default genesis of every module.
func NewDefaultGenesisState() GenesisState {
	return ModuleBasics.DefaultGenesis()
}

// LedgerApp is the state machine. It runs one block at a time: BeginBlock,
// any number of DeliverTx, EndBlock, Commit.
type LedgerApp struct {
	logger log.Logger
	name   string
	db     dbm.DB
	cms    sdk.CommitMultiStore
	cdc    *codec.Codec

	invCheckPeriod uint

	// keys to access the substores
	keys map[string]*sdk.KVStoreKey

	router      sdk.Router
	queryRouter sdk.QueryRouter
	txDecoder   TxDecoder
	anteHandler AnteHandler
	metrics     *Metrics

	// mtx serialises block production against queries
	mtx sync.RWMutex
	// busy is set while a transaction executes
	busy uint32

	// deliverCtx is the context of the block being built, valid between
	// BeginBlock and Commit.
	deliverCtx *sdk.Context

	// keepers
	accessKeeper  access.Keeper
	ledgerKeeper  ledger.Keeper
	votesKeeper   votes.Keeper
	bridgeKeeper  bridge.Keeper
	rescueKeeper  rescue.Keeper
	receiptKeeper receipt.Keeper
	crisisKeeper  crisis.Keeper

	// the module manager
	mm *module.Manager
}

// NewLedgerApp returns a reference to an initialized LedgerApp loaded at the
// latest committed version of db.
func NewLedgerApp(logger log.Logger, db dbm.DB, invCheckPeriod uint, metrics *Metrics) (*LedgerApp, error) {
	cdc := MakeCodec()

	keys := make(map[string]*sdk.KVStoreKey)
	for _, name := range []string{MainStoreKey, access.StoreKey, ledger.StoreKey, votes.StoreKey,
		bridge.StoreKey, rescue.StoreKey, receipt.StoreKey} {
		keys[name] = sdk.NewKVStoreKey(name)
	}

	app := &LedgerApp{
		logger:         logger.With("module", "ledgerapp"),
		name:           appName,
		db:             db,
		cms:            store.NewCommitMultiStore(db),
		cdc:            cdc,
		invCheckPeriod: invCheckPeriod,
		keys:           keys,
		router:         NewRouter(),
		queryRouter:    NewQueryRouter(),
		txDecoder:      DefaultTxDecoder(cdc),
		metrics:        metrics,
	}

	// add keepers
	app.accessKeeper = access.NewKeeper(cdc, keys[access.StoreKey], access.DefaultCodespace)
	app.ledgerKeeper = ledger.NewKeeper(cdc, keys[ledger.StoreKey], app.accessKeeper, ledger.DefaultCodespace)
	app.votesKeeper = votes.NewKeeper(cdc, keys[votes.StoreKey], app.ledgerKeeper, votes.DefaultCodespace)

	// register the ledger hooks
	// NOTE: keepers built below copy ledgerKeeper and must see the hooks
	app.ledgerKeeper.SetHooks(app.votesKeeper.Hooks())

	app.bridgeKeeper = bridge.NewKeeper(cdc, keys[bridge.StoreKey], app.accessKeeper, app.ledgerKeeper, bridge.DefaultCodespace)
	app.rescueKeeper = rescue.NewKeeper(cdc, keys[rescue.StoreKey], app.accessKeeper, app.ledgerKeeper, rescue.DefaultCodespace)
	app.receiptKeeper = receipt.NewKeeper(cdc, keys[receipt.StoreKey])
	app.crisisKeeper = crisis.NewKeeper(app.accessKeeper, invCheckPeriod)

	// NOTE: Any module instantiated in the module manager that is later modified
	// must be passed by reference here.
	app.mm = module.NewManager(
		access.NewAppModule(app.accessKeeper),
		ledger.NewAppModule(app.ledgerKeeper),
		votes.NewAppModule(app.votesKeeper),
		bridge.NewAppModule(app.bridgeKeeper),
		rescue.NewAppModule(app.rescueKeeper),
		receipt.NewAppModule(app.receiptKeeper),
		crisis.NewAppModule(&app.crisisKeeper),
	)

	// NOTE: votes must follow ledger, delegated power is derived from balances.
	app.mm.SetOrderInitGenesis(access.ModuleName, ledger.ModuleName, votes.ModuleName,
		bridge.ModuleName, rescue.ModuleName, receipt.ModuleName, crisis.ModuleName)
	app.mm.SetOrderExportGenesis(access.ModuleName, ledger.ModuleName, votes.ModuleName,
		bridge.ModuleName, rescue.ModuleName, receipt.ModuleName, crisis.ModuleName)
	app.mm.SetOrderEndBlockers(crisis.ModuleName)

	app.mm.RegisterInvariants(&app.crisisKeeper)
	app.mm.RegisterRoutes(app.router, app.queryRouter)

	app.anteHandler = app.NewAnteHandler()

	// initialize stores
	for _, key := range keys {
		app.cms.MountStoreWithDB(key, sdk.StoreTypeDB, nil)
	}
	if err := app.cms.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "failed to load latest version")
	}
	if metrics != nil {
		metrics.committed(app.LastBlockHeight())
	}
	return app, nil
}

// Name returns the name of the application.
func (app *LedgerApp) Name() string { return app.name }

// Codec returns the codec the application decodes transactions with.
func (app *LedgerApp) Codec() *codec.Codec { return app.cdc }

// Logger returns the application logger.
func (app *LedgerApp) Logger() log.Logger { return app.logger }

// LastBlockHeight returns the height of the last committed block.
func (app *LedgerApp) LastBlockHeight() int64 {
	return app.cms.LastCommitID().Version
}

// LastCommitID returns the version and hash of the last committed block.
func (app *LedgerApp) LastCommitID() sdk.CommitID {
	return app.cms.LastCommitID()
}

// application updates every begin block
func (app *LedgerApp) BeginBlocker(ctx sdk.Context, req abci.RequestBeginBlock) abci.ResponseBeginBlock {
	return app.mm.BeginBlock(ctx, req)
}

// application updates every end block
func (app *LedgerApp) EndBlocker(ctx sdk.Context, req abci.RequestEndBlock) abci.ResponseEndBlock {
	return app.mm.EndBlock(ctx, req)
}

// application update at chain initialization
func (app *LedgerApp) InitChainer(ctx sdk.Context, req abci.RequestInitChain) abci.ResponseInitChain {
	var genesisState GenesisState
	app.cdc.MustUnmarshalJSON(req.AppStateBytes, &genesisState)
	app.mm.InitGenesis(ctx, genesisState)
	return abci.ResponseInitChain{}
}

// ExportAppState returns the genesis of every module at the last committed
// height.
func (app *LedgerApp) ExportAppState() (json.RawMessage, error) {
	app.mtx.RLock()
	defer app.mtx.RUnlock()

	ctx, _ := app.queryContext()
	genState := app.mm.ExportGenesis(ctx)
	return codec.MarshalJSONIndent(app.cdc, genState)
}

// ChainID returns the chain the application was initialised for.
func (app *LedgerApp) ChainID() string {
	return string(app.cms.GetKVStore(app.keys[MainStoreKey]).Get(ChainIDKey))
}
