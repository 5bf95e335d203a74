package app

import (
	"context"
	"fmt"
	"log/slog"

	"ArticlesExplorer/internal/catalog"
	"ArticlesExplorer/internal/config"
	"ArticlesExplorer/internal/httpapi"
	"ArticlesExplorer/internal/infrastructure/storage"
	"ArticlesExplorer/internal/interaction"
	"ArticlesExplorer/internal/logging"
	"ArticlesExplorer/internal/ports"
	"ArticlesExplorer/internal/search"
	"ArticlesExplorer/internal/tui"
	"ArticlesExplorer/internal/usecase"
)

// Application wires configs to the catalog, storage and the two front ends.
type Application struct {
	cfg     config.Config
	logger  *slog.Logger
	catalog *catalog.Catalog
	kv      ports.KeyValueStore
	views   *usecase.Views
}

// New loads the catalog and opens the configured storage backend.
// Callers own the result and must Close it.
func New(ctx context.Context, cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	c, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	baseLogger.Debug("catalog loaded", "articles", c.Len(), "path", cfg.Catalog.Path)

	kv, err := storage.DefaultRegistry().Open(ctx, cfg.Storage, baseLogger.With("component", "storage"))
	if err != nil {
		return nil, err
	}
	baseLogger.Debug("storage opened", "backend", cfg.Storage.Backend)

	views := usecase.NewViews(usecase.ViewsDeps{
		Catalog: c,
		Logger:  baseLogger.With("component", "views"),
	})

	return &Application{cfg: cfg, logger: baseLogger, catalog: c, kv: kv, views: views}, nil
}

func loadCatalog(cfg config.CatalogConfig) (*catalog.Catalog, error) {
	if cfg.Path == "" {
		return catalog.Default(), nil
	}
	c, err := catalog.LoadFile(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return c, nil
}

// Catalog returns the loaded catalog.
func (a *Application) Catalog() *catalog.Catalog {
	return a.catalog
}

// Views returns the page use cases.
func (a *Application) Views() *usecase.Views {
	return a.views
}

// SearchOptions returns the configured surface tuning.
func (a *Application) SearchOptions() search.Options {
	return search.Options{
		MinQueryLength: a.cfg.Search.MinQueryLength,
		PreviewLimit:   a.cfg.Search.PreviewLimit,
	}
}

// State returns the local viewer's interaction store, already loaded.
func (a *Application) State(ctx context.Context) *interaction.Store {
	state := interaction.NewStore(a.kv,
		interaction.WithNamespace(a.cfg.Storage.Namespace),
		interaction.WithLogger(a.logger.With("component", "interaction")))
	state.Load(ctx)
	return state
}

// Server builds the HTTP front end.
func (a *Application) Server() (*httpapi.Server, error) {
	return httpapi.New(httpapi.Deps{
		Catalog:    a.catalog,
		Views:      a.views,
		State:      a.kv,
		Search:     a.SearchOptions(),
		CookieName: a.cfg.Server.CookieName,
		Namespace:  a.cfg.Storage.Namespace,
		Logger:     a.logger.With("component", "http"),
	})
}

// Serve runs the HTTP front end until ctx is cancelled.
func (a *Application) Serve(ctx context.Context) error {
	srv, err := a.Server()
	if err != nil {
		return err
	}
	return srv.Run(ctx, a.cfg.Server.Addr)
}

// Browser builds the terminal front end for the local viewer.
func (a *Application) Browser(ctx context.Context, glamourStyle string) (tui.Model, error) {
	return tui.New(ctx, tui.Deps{
		Catalog:      a.catalog,
		Views:        a.views,
		State:        a.State(ctx),
		Search:       a.SearchOptions(),
		GlamourStyle: glamourStyle,
	})
}

// Close releases the storage backend.
func (a *Application) Close() error {
	if a.kv == nil {
		return nil
	}
	return a.kv.Close()
}
