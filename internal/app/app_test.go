package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ArticlesExplorer/internal/config"
	"ArticlesExplorer/internal/infrastructure/storage"
	"ArticlesExplorer/internal/logging"
)

func memoryConfig() config.Config {
	cfg := config.Default()
	cfg.Storage.Backend = config.BackendMemory
	return cfg
}

func TestNewWiresDefaultCatalog(t *testing.T) {
	a, err := New(context.Background(), memoryConfig(), logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	assert.Equal(t, 6, a.Catalog().Len())
	assert.Equal(t, 2, a.SearchOptions().MinQueryLength)
	assert.Equal(t, 5, a.SearchOptions().PreviewLimit)

	srv, err := a.Server()
	require.NoError(t, err)
	assert.NotNil(t, srv.Handler())

	_, err = a.Browser(context.Background(), "notty")
	require.NoError(t, err)
}

func TestStateIsSharedThroughStorage(t *testing.T) {
	cfg := memoryConfig()
	cfg.Storage.Backend = config.BackendFile
	cfg.Storage.Path = filepath.Join(t.TempDir(), "state.json")
	ctx := context.Background()

	a, err := New(ctx, cfg, logging.Discard())
	require.NoError(t, err)

	_, err = a.Views().OpenArticle(ctx, a.State(ctx), "microbes-adaptation")
	require.NoError(t, err)
	require.NoError(t, a.Close())

	b, err := New(ctx, cfg, logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	assert.True(t, b.State(ctx).IsRead("microbes-adaptation"))
}

func TestNewLoadsCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`articles:
  - id: one
    title: One
    description: d
    abstract: a
    topic: Plants
    year: 2020
    authors: [A]
    keywords: [k]
    sections:
      background: b
      methods: m
      results: r
      discussion: d
      conclusion: c
`), 0o600))

	cfg := memoryConfig()
	cfg.Catalog.Path = path
	a, err := New(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	assert.Equal(t, 1, a.Catalog().Len())
}

func TestNewFailsOnBadCatalogOrBackend(t *testing.T) {
	cfg := memoryConfig()
	cfg.Catalog.Path = filepath.Join(t.TempDir(), "missing.yaml")
	_, err := New(context.Background(), cfg, logging.Discard())
	assert.Error(t, err)

	cfg = memoryConfig()
	cfg.Storage.Backend = "etcd"
	_, err = New(context.Background(), cfg, logging.Discard())
	assert.ErrorIs(t, err, storage.ErrUnknownBackend)
}
