package app

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/adapter"
	"github.com/niksmo/storefront/internal/adapter/fakestore"
	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/adapter/kafka"
	"github.com/niksmo/storefront/internal/core/cart"
	"github.com/niksmo/storefront/internal/core/catalog"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/niksmo/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

const registryTimeout = 10 * time.Second

type App struct {
	ctx        context.Context
	cfg        config.Config
	source     fakestore.Client
	cartStore  *cart.Store
	cartEvents *kafka.CartEventEmitter
	service    service.Service
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initOutboundAdapters()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	catalogCfg := app.cfg.Catalog
	source, err := fakestore.NewClient(
		fakestore.BaseURLOpt(catalogCfg.BaseURL),
		fakestore.HTTPClientOpt(&http.Client{Timeout: catalogCfg.Timeout}),
		fakestore.RetryOpt(catalogCfg.RetryAttempts, catalogCfg.RetryDelay),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.source = source

	app.initCartEvents()
}

func (app *App) initCartEvents() {
	const op = "App.initCartEvents"
	log := slog.With("op", op)

	brokerCfg := app.cfg.Broker
	if len(brokerCfg.SeedBrokers) == 0 {
		log.Info("no seed brokers configured, cart events are disabled")
		return
	}

	var tlsConfig *tls.Config
	if brokerCfg.TLS.Enabled() {
		var err error
		tlsConfig, err = adapter.MakeTLSConfig(
			brokerCfg.TLS.CAFile, brokerCfg.TLS.CertFile, brokerCfg.TLS.KeyFile,
		)
		if err != nil {
			app.fallDown(op, err)
		}
	}

	srOpts := []sr.ClientOpt{sr.URLs(brokerCfg.SchemaRegistryURLs...)}
	if tlsConfig != nil {
		srOpts = append(srOpts, sr.HTTPClient(&http.Client{
			Timeout:   registryTimeout,
			Transport: &http.Transport{TLSClientConfig: tlsConfig},
		}))
	}
	srClient, err := sr.NewClient(srOpts...)
	if err != nil {
		app.fallDown(op, err)
	}

	topic := brokerCfg.Topics.CartEvents
	serde, err := schema.NewSerdeCartEventV1(
		app.ctx,
		schema.TopicSubjectOpt(topic),
		schema.SchemaIdentifierOpt(schema.NewSchemaCreater(srClient)),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	emitter, err := kafka.NewCartEventEmitter(
		brokerCfg.SeedBrokers, topic, serde, tlsConfig,
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.cartEvents = emitter
	log.Info("cart events are enabled", "topic", topic)
}

func (app *App) initCoreService() {
	app.cartStore = cart.NewStore()

	var events port.CartEventEmitter
	if app.cartEvents != nil {
		events = app.cartEvents
	}

	app.service = service.New(
		app.source,
		catalog.NewColorizer(nil),
		app.cartStore,
		events,
	)
}

func (app *App) initInboundAdapters() {
	serverCfg := app.cfg.HTTPServer

	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, app.service)
	httphandler.RegisterCart(mux, app.service)
	httphandler.RegisterHealth(mux)

	handler := httphandler.LogRequests(httphandler.AllowJSON(mux))
	app.httpServer = httphandler.NewHTTPServer(
		serverCfg.Addr,
		handler,
		httphandler.ServerTimeouts{
			Handler:    serverCfg.HandlerTimeout,
			ReadHeader: serverCfg.ReadHeaderTimeout,
			Idle:       serverCfg.IdleTimeout,
		},
	)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running", "addr", app.cfg.HTTPServer.Addr)
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.cartStore.Close()
	if app.cartEvents != nil {
		app.cartEvents.Close()
	}

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
