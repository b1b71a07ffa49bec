package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/craftlab/internal/catalog"
	"github.com/osse101/craftlab/internal/config"
	"github.com/osse101/craftlab/internal/crafting"
	"github.com/osse101/craftlab/internal/event"
	"github.com/osse101/craftlab/internal/metrics"
	"github.com/osse101/craftlab/internal/naming"
	"github.com/osse101/craftlab/internal/repository"
	"github.com/osse101/craftlab/internal/stats"
)

// App is the fully wired engine and its supporting services
type App struct {
	Config   *config.Config
	Catalog  *catalog.Catalog
	Store    repository.Recipes
	Bus      event.Bus
	Metrics  *metrics.Metrics
	Stats    stats.Service
	Engine   *crafting.Engine
	Resolver naming.Resolver
}

// New wires an App from cfg. The logger is expected to be set up already.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	slog.Debug(LogMsgStarting, "environment", cfg.Environment)

	c, err := LoadCatalog(ctx, cfg)
	if err != nil {
		return nil, err
	}
	slog.Debug(LogMsgCatalogReady, "recipes", c.Len())

	store := InitializeRepositories(c)
	bus := InitializeEventSystem()
	m := metrics.New()
	statsService := stats.NewService(store)

	RegisterEventHandlers(EventHandlerDependencies{
		EventBus:     bus,
		Metrics:      m,
		StatsService: statsService,
	})

	engine, err := crafting.NewEngine(c, store, bus, crafting.Options{
		Strategy:  crafting.Strategy(cfg.MatchStrategy),
		CacheSize: cfg.MatchCacheSize,
		Delay:     cfg.CraftDelay(),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateEngine, err)
	}

	return &App{
		Config:   cfg,
		Catalog:  c,
		Store:    store,
		Bus:      bus,
		Metrics:  m,
		Stats:    statsService,
		Engine:   engine,
		Resolver: naming.NewResolver(c.Ingredients()),
	}, nil
}
