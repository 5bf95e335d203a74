package storage

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ArticlesExplorer/internal/config"
	"ArticlesExplorer/internal/logging"
	"ArticlesExplorer/internal/ports"
)

// exerciseStore checks the behaviour every backend must share.
func exerciseStore(t *testing.T, store ports.KeyValueStore) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "readArticles")
	require.NoError(t, err)
	assert.False(t, ok, "fresh store must not report a value")

	require.NoError(t, store.Set(ctx, "readArticles", `["a"]`))
	require.NoError(t, store.Set(ctx, "readArticles", `["a","b"]`))
	require.NoError(t, store.Set(ctx, "highlightedArticles", `[]`))

	v, ok, err := store.Get(ctx, "readArticles")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `["a","b"]`, v)

	v, ok, err = store.Get(ctx, "highlightedArticles")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[]`, v)
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	exerciseStore(t, store)
	require.NoError(t, store.Close())
}

func TestFileStorePersistsAcrossOpens(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "state.json")
	store, err := OpenFileStore(path, logging.Discard())
	require.NoError(t, err)
	exerciseStore(t, store)

	reopened, err := OpenFileStore(path, logging.Discard())
	require.NoError(t, err)
	v, ok, err := reopened.Get(context.Background(), "readArticles")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `["a","b"]`, v)
}

func TestFileStoreCorruptFileStartsEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store, err := OpenFileStore(path, logging.Discard())
	require.NoError(t, err)

	_, ok, err := store.Get(context.Background(), "readArticles")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(context.Background(), "readArticles", `["x"]`))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `readArticles`)
}

func TestFileStoreRequiresPath(t *testing.T) {
	t.Parallel()

	_, err := OpenFileStore("", nil)
	require.Error(t, err)
}

func TestSQLiteStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "state.db")

	store, err := OpenSQLite(ctx, dsn)
	require.NoError(t, err)
	exerciseStore(t, store)
	require.NoError(t, store.Close())

	reopened, err := OpenSQLite(ctx, dsn)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.Get(ctx, "readArticles")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `["a","b"]`, v)
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx := context.Background()
	store, err := OpenRedis(ctx, config.RedisConfig{Addr: addr, DB: 15})
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.client.FlushDB(ctx).Err())

	exerciseStore(t, store)
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reg := DefaultRegistry()

	store, err := reg.Open(ctx, config.StorageConfig{Backend: config.BackendMemory}, nil)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	store, err = reg.Open(ctx, config.StorageConfig{
		Backend: config.BackendFile,
		Path:    filepath.Join(t.TempDir(), "state.json"),
	}, logging.Discard())
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, store)

	_, err = reg.Open(ctx, config.StorageConfig{Backend: "etcd"}, nil)
	require.ErrorIs(t, err, ErrUnknownBackend)

	reg.Register("broken", func(context.Context, config.StorageConfig, *slog.Logger) (ports.KeyValueStore, error) {
		return nil, errors.New("boom")
	})
	_, err = reg.Open(ctx, config.StorageConfig{Backend: "broken"}, nil)
	require.ErrorContains(t, err, "open broken storage: boom")
}
