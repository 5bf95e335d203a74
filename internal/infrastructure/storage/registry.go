package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ArticlesExplorer/internal/config"
	"ArticlesExplorer/internal/ports"
)

// ErrUnknownBackend is returned when a backend name has no registered factory.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Factory opens a key-value backend from configuration.
type Factory func(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (ports.KeyValueStore, error)

// Registry keeps a mapping from backend names to their factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

// DefaultRegistry returns a registry with every built-in backend.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(config.BackendMemory, func(context.Context, config.StorageConfig, *slog.Logger) (ports.KeyValueStore, error) {
		return NewMemoryStore(), nil
	})
	r.Register(config.BackendFile, func(_ context.Context, cfg config.StorageConfig, logger *slog.Logger) (ports.KeyValueStore, error) {
		return OpenFileStore(cfg.Path, logger)
	})
	r.Register(config.BackendSQLite, func(ctx context.Context, cfg config.StorageConfig, _ *slog.Logger) (ports.KeyValueStore, error) {
		return OpenSQLite(ctx, cfg.DSN)
	})
	r.Register(config.BackendPostgres, func(ctx context.Context, cfg config.StorageConfig, _ *slog.Logger) (ports.KeyValueStore, error) {
		return OpenPostgres(ctx, cfg.DSN)
	})
	r.Register(config.BackendRedis, func(ctx context.Context, cfg config.StorageConfig, _ *slog.Logger) (ports.KeyValueStore, error) {
		return OpenRedis(ctx, cfg.Redis)
	})
	return r
}

// Register adds or replaces a backend factory.
func (r *Registry) Register(name string, factory Factory) {
	if r.factories == nil {
		r.factories = map[string]Factory{}
	}
	r.factories[name] = factory
}

// Resolve returns a factory by name or an error if it is absent.
func (r *Registry) Resolve(name string) (Factory, error) {
	if factory, ok := r.factories[name]; ok {
		return factory, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, name)
}

// Open resolves cfg.Backend and opens it.
func (r *Registry) Open(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (ports.KeyValueStore, error) {
	factory, err := r.Resolve(cfg.Backend)
	if err != nil {
		return nil, err
	}

	store, err := factory(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", cfg.Backend, err)
	}
	return store, nil
}
