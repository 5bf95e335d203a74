package interaction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ArticlesExplorer/internal/infrastructure/storage"
	"ArticlesExplorer/internal/logging"
)

type failingKV struct {
	getErr error
	setErr error
}

func (f failingKV) Get(context.Context, string) (string, bool, error) { return "", false, f.getErr }
func (f failingKV) Set(context.Context, string, string) error { return f.setErr }
func (f failingKV) Close() error { return nil }

func persisted(t *testing.T, kv *storage.MemoryStore, key string) string {
	t.Helper()
	v, ok, err := kv.Get(context.Background(), key)
	require.NoError(t, err)
	require.True(t, ok, "key %s not persisted", key)
	return v
}

func TestToggleHighlightSurvivesReload(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := storage.NewMemoryStore()

	s := NewStore(kv)
	s.Load(ctx)
	on, err := s.ToggleHighlight(ctx, "fungi-spores")
	require.NoError(t, err)
	assert.True(t, on)

	reloaded := NewStore(kv)
	reloaded.Load(ctx)
	assert.Equal(t, []string{"fungi-spores"}, reloaded.HighlightedIDs())
	assert.True(t, reloaded.IsHighlighted("fungi-spores"))

	on, err = reloaded.ToggleHighlight(ctx, "fungi-spores")
	require.NoError(t, err)
	assert.False(t, on)

	again := NewStore(kv)
	again.Load(ctx)
	assert.Empty(t, again.HighlightedIDs())
	assert.Equal(t, "[]", persisted(t, kv, HighlightedKey))
}

func TestToggleReadIsItsOwnInverse(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := storage.NewMemoryStore()
	s := NewStore(kv)

	require.NoError(t, s.MarkRead(ctx, "plants-gravitropism"))

	for _, id := range []string{"plants-gravitropism", "fungi-spores"} {
		before := s.IsRead(id)

		_, err := s.ToggleRead(ctx, id)
		require.NoError(t, err)
		assert.NotEqual(t, before, s.IsRead(id))

		_, err = s.ToggleRead(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, before, s.IsRead(id))
	}
	assert.Equal(t, `["plants-gravitropism"]`, persisted(t, kv, ReadKey))
}

func TestPersistsWholeSetAfterEachCall(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := storage.NewMemoryStore()
	s := NewStore(kv)

	_, err := s.ToggleRead(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, `["a"]`, persisted(t, kv, ReadKey))

	_, err = s.ToggleRead(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, persisted(t, kv, ReadKey))

	_, err = s.ToggleRead(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, `["b"]`, persisted(t, kv, ReadKey))

	_, ok, err := kv.Get(ctx, HighlightedKey)
	require.NoError(t, err)
	assert.False(t, ok, "read toggles must not touch the highlight key")
}

func TestMarkReadIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := storage.NewMemoryStore()
	s := NewStore(kv)

	for i := 0; i < 3; i++ {
		require.NoError(t, s.MarkRead(ctx, "microbes-adaptation"))
		assert.Equal(t, []string{"microbes-adaptation"}, s.ReadIDs())
	}
	assert.Equal(t, `["microbes-adaptation"]`, persisted(t, kv, ReadKey))
}

func TestSetsAreIndependent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewStore(storage.NewMemoryStore())

	_, err := s.ToggleHighlight(ctx, "a")
	require.NoError(t, err)
	assert.False(t, s.IsRead("a"))

	require.NoError(t, s.MarkRead(ctx, "b"))
	assert.False(t, s.IsHighlighted("b"))

	assert.Equal(t, Snapshot{Read: []string{"b"}, Highlighted: []string{"a"}}, s.Snapshot())
}

func TestLoadFailsOpen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := storage.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, ReadKey, "{oops"))
	require.NoError(t, kv.Set(ctx, HighlightedKey, `["x", "x", "y"]`))

	s := NewStore(kv, WithLogger(logging.Discard()))
	s.Load(ctx)
	assert.Empty(t, s.ReadIDs())
	assert.Equal(t, []string{"x", "y"}, s.HighlightedIDs())

	broken := NewStore(failingKV{getErr: errors.New("down")}, WithLogger(logging.Discard()))
	broken.Load(ctx)
	assert.Equal(t, Snapshot{Read: []string{}, Highlighted: []string{}}, broken.Snapshot())
}

func TestPersistFailureKeepsInMemoryChange(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewStore(failingKV{setErr: errors.New("read-only")})

	on, err := s.ToggleRead(ctx, "a")
	require.ErrorContains(t, err, "persist readArticles")
	assert.True(t, on)
	assert.True(t, s.IsRead("a"))
}

func TestNamespacesIsolateViewers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := storage.NewMemoryStore()

	alice := NewStore(kv, WithNamespace("alice"))
	bob := NewStore(kv, WithNamespace("bob"))

	require.NoError(t, alice.MarkRead(ctx, "fungi-spores"))
	bob.Load(ctx)
	assert.Empty(t, bob.ReadIDs())

	assert.Equal(t, `["fungi-spores"]`, persisted(t, kv, "alice:"+ReadKey))
}

func TestClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := storage.NewMemoryStore()
	s := NewStore(kv)
	require.NoError(t, s.MarkRead(ctx, "a"))
	_, err := s.ToggleHighlight(ctx, "b")
	require.NoError(t, err)

	require.NoError(t, s.Clear(ctx))
	assert.Equal(t, "[]", persisted(t, kv, ReadKey))
	assert.Equal(t, "[]", persisted(t, kv, HighlightedKey))

	reloaded := NewStore(kv)
	reloaded.Load(ctx)
	assert.Equal(t, Snapshot{Read: []string{}, Highlighted: []string{}}, reloaded.Snapshot())
}
