package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/TrenchGarden_Go/internal/catalog"
	"github.com/osse101/TrenchGarden_Go/internal/concurrency"
	"github.com/osse101/TrenchGarden_Go/internal/config"
	"github.com/osse101/TrenchGarden_Go/internal/discord"
	"github.com/osse101/TrenchGarden_Go/internal/event"
	"github.com/osse101/TrenchGarden_Go/internal/garden"
	"github.com/osse101/TrenchGarden_Go/internal/growth"
	"github.com/osse101/TrenchGarden_Go/internal/scheduler"
	"github.com/osse101/TrenchGarden_Go/internal/server"
	"github.com/osse101/TrenchGarden_Go/internal/shop"
	"github.com/osse101/TrenchGarden_Go/internal/sse"
	"github.com/osse101/TrenchGarden_Go/internal/tracing"
	"github.com/osse101/TrenchGarden_Go/internal/visit"
	"github.com/osse101/TrenchGarden_Go/internal/wallet"
	"github.com/osse101/TrenchGarden_Go/internal/worker"
)

// App is the fully wired service: storage, event plumbing, game services,
// background jobs and the HTTP server
type App struct {
	Server    *server.Server
	Storage   *Storage
	Bus       *event.MemoryBus
	Publisher *event.ResilientPublisher
	Hub       *sse.Hub
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
	Notifier  *discord.Notifier

	GardenService garden.Service
	GrowthService growth.Service

	shutdownTracing func(context.Context) error
}

// New builds every component from cfg and starts the background machinery.
// The HTTP server is created but not started.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	shutdownTracing, err := tracing.Setup(ctx, cfg.OTelEndpoint, cfg.ServiceName, cfg.Version)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSetupTracing, err)
	}
	if cfg.OTelEndpoint != "" {
		slog.Info(LogMsgTracingInitialized, "endpoint", cfg.OTelEndpoint)
	}

	cat, err := catalog.New(cfg.CatalogPath)
	if err != nil {
		_ = shutdownTracing(ctx)
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	store, err := OpenStorage(ctx, cfg)
	if err != nil {
		_ = shutdownTracing(ctx)
		return nil, err
	}

	bus, publisher, err := InitializeEventSystem(cfg)
	if err != nil {
		_ = store.Close()
		_ = shutdownTracing(ctx)
		return nil, err
	}

	locks := concurrency.NewLockManager()

	growthSvc := growth.NewService(store.Gardens, cat, locks, publisher)
	gardenSvc := garden.NewService(store.Gardens, cat, growthSvc, locks, publisher)
	shopSvc := shop.NewService(store.Gardens, cat, locks, publisher)
	visitSvc := visit.NewService(store.Gardens, growthSvc, cfg.FeaturedCacheTTL)
	walletSvc := wallet.NewService(store.Gardens, locks, publisher, cfg.WalletConnectDelay)

	hub := sse.NewHub()
	hub.Start()

	notifier := RegisterEventHandlers(EventHandlerDependencies{
		EventBus:      bus,
		GardenService: gardenSvc,
		VisitService:  visitSvc,
		Hub:           hub,
		Config:        cfg,
	})

	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(JobNameGrowthTick, cfg.GrowthTickInterval, growth.NewJob(growthSvc))
	slog.Info(LogMsgBackgroundJobsUp, "workers", cfg.WorkerCount, "growth_tick", cfg.GrowthTickInterval)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
	}, server.Services{
		Store:   store.Gardens,
		Catalog: cat,
		Garden:  gardenSvc,
		Shop:    shopSvc,
		Visit:   visitSvc,
		Wallet:  walletSvc,
		Hub:     hub,
	})

	return &App{
		Server:          srv,
		Storage:         store,
		Bus:             bus,
		Publisher:       publisher,
		Hub:             hub,
		Pool:            pool,
		Scheduler:       sched,
		Notifier:        notifier,
		GardenService:   gardenSvc,
		GrowthService:   growthSvc,
		shutdownTracing: shutdownTracing,
	}, nil
}
