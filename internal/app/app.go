package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/niksmo/storefront/internal/core/service"
)

type stores struct {
	catalog  *service.Catalog
	auth     *service.Auth
	cart     *service.Cart
	wishlist *service.Wishlist
	checkout *service.Checkout
	orders   *service.Orders
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	kv         storage.KV
	stores     stores
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initStorage()
	app.initStores()
	app.initHTTPServer()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initStorage() {
	const op = "App.initStorage"

	kv, err := storage.Open(app.cfg.StoragePath)
	if err != nil {
		app.fallDown(op, err)
	}
	app.kv = kv
}

// initStores loads the fixtures, constructs each store once and
// restores its persisted slice of state.
func (app *App) initStores() {
	const op = "App.initStores"

	fixtures, err := storage.LoadFixtures(app.cfg.FixturesDir)
	if err != nil {
		app.fallDown(op, err)
	}

	catalog := service.NewCatalog(fixtures.Products, fixtures.Categories)
	auth := service.NewAuth(app.kv, fixtures.Users, app.cfg.LoginLatency)
	cart := service.NewCart(app.kv, catalog)
	wishlist := service.NewWishlist(app.kv, catalog, cart)
	orders := service.NewOrders(app.kv)
	checkout := service.NewCheckout(
		auth, cart, orders, app.cfg.CheckoutLatency,
	)

	for _, load := range []func() error{
		auth.Load, cart.Load, wishlist.Load, orders.Load,
	} {
		if err := load(); err != nil {
			app.fallDown(op, err)
		}
	}

	app.stores = stores{
		catalog:  catalog,
		auth:     auth,
		cart:     cart,
		wishlist: wishlist,
		checkout: checkout,
		orders:   orders,
	}
}

func (app *App) initHTTPServer() {
	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, app.stores.catalog, app.stores.auth)
	httphandler.RegisterAuth(mux, app.stores.auth)
	httphandler.RegisterCart(mux, app.stores.cart)
	httphandler.RegisterWishlist(mux, app.stores.wishlist)
	httphandler.RegisterCheckout(mux, app.stores.checkout, app.stores.auth)
	httphandler.RegisterOrders(mux, app.stores.orders, app.stores.auth)

	handler := httphandler.RequestID(httphandler.AllowJSON(mux))
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.kv.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
