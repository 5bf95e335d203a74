package search

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ArticlesExplorer/internal/catalog"
	"ArticlesExplorer/internal/domain"
)

// fakeEngine returns n articles for any query and counts calls.
type fakeEngine struct {
	n     int
	calls int
}

func (f *fakeEngine) Search(query string) []domain.Article {
	f.calls++
	out := make([]domain.Article, f.n)
	for i := range out {
		out[i] = domain.Article{ID: fmt.Sprintf("%s-%d", query, i)}
	}
	return out
}

func TestShortQueriesStayIdle(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{n: 3}
	s := NewSurface(engine, Options{})

	for _, q := range []string{"", " ", "o", "é"} {
		assert.Equal(t, Idle, s.Type(q), "query %q", q)
		assert.Empty(t, s.Preview())
		assert.False(t, s.NoResults())
	}
	assert.Zero(t, engine.calls, "engine must not run below the minimum length")
}

func TestShortQueriesReturnNothingAgainstCatalog(t *testing.T) {
	t.Parallel()

	c := catalog.Default()
	for _, q := range []string{"", "o", "M", "\t"} {
		got := Evaluate(c, Options{}, q)
		assert.Empty(t, got.Results, "query %q", q)
		assert.Equal(t, "idle", got.State)
	}

	// Two blanks pass the length gate; the engine itself returns nothing for blank input.
	blank := Evaluate(c, Options{}, "  ")
	assert.Equal(t, "suggesting", blank.State)
	assert.Empty(t, blank.Results)
	assert.Equal(t, NoResultsNotice, blank.Notice)
}

func TestTransitions(t *testing.T) {
	t.Parallel()

	s := NewSurface(&fakeEngine{n: 2}, Options{})
	require.Equal(t, Idle, s.State())

	assert.Equal(t, Suggesting, s.Type("bo"))
	assert.Len(t, s.Preview(), 2)

	assert.Equal(t, Idle, s.Type("b"))
	assert.Empty(t, s.Preview())

	s.Type("bone")
	assert.Equal(t, Dismissed, s.DismissOutside())
	assert.Empty(t, s.Preview())

	assert.Equal(t, Suggesting, s.Type("bones"))
	s.DismissOutside()
	assert.Equal(t, Idle, s.Type("x"))

	assert.Equal(t, Idle, s.DismissOutside(), "outside clicks only close an open panel")
}

func TestPreviewIsBounded(t *testing.T) {
	t.Parallel()

	s := NewSurface(&fakeEngine{n: 9}, Options{})
	s.Type("micro")
	assert.Len(t, s.Preview(), DefaultPreviewLimit)
	assert.Equal(t, 9, s.Total())

	custom := NewSurface(&fakeEngine{n: 9}, Options{PreviewLimit: 3, MinQueryLength: 4})
	assert.Equal(t, Idle, custom.Type("mic"))
	custom.Type("micr")
	assert.Len(t, custom.Preview(), 3)
}

func TestNoResultsNotice(t *testing.T) {
	t.Parallel()

	got := Evaluate(catalog.Default(), Options{}, "xyz-nonexistent")
	assert.Equal(t, "suggesting", got.State)
	assert.Empty(t, got.Results)
	assert.NotNil(t, got.Results)
	assert.Equal(t, NoResultsNotice, got.Notice)
}

func TestSelectNavigatesAndDismisses(t *testing.T) {
	t.Parallel()

	s := NewSurface(catalog.Default(), Options{})
	s.Type("osteo")

	id, ok := s.Select(0)
	require.True(t, ok)
	assert.Equal(t, "vertebrate-bone-loss", id)
	assert.Equal(t, Dismissed, s.State())

	_, ok = s.Select(0)
	assert.False(t, ok, "a dismissed panel has nothing to select")

	s.Type("osteo")
	_, ok = s.Select(5)
	assert.False(t, ok)
	assert.Equal(t, Suggesting, s.State())
}

func TestEvaluateAgainstCatalog(t *testing.T) {
	t.Parallel()

	got := Evaluate(catalog.Default(), Options{}, "Microgravity")
	assert.Equal(t, "suggesting", got.State)
	assert.LessOrEqual(t, len(got.Results), DefaultPreviewLimit)
	assert.GreaterOrEqual(t, got.Total, len(got.Results))
	for _, a := range got.Results {
		hay := strings.ToLower(strings.Join(append([]string{a.Title, a.Description, a.Abstract, a.Topic}, a.Keywords...), "|"))
		assert.Contains(t, hay, "microgravity")
	}
}

func TestStateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "suggesting", Suggesting.String())
	assert.Equal(t, "dismissed", Dismissed.String())
	assert.Equal(t, "unknown", State(42).String())
}

func TestOptionsDefaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Options{MinQueryLength: 2, PreviewLimit: 5}, Options{}.WithDefaults())
	assert.Equal(t, Options{MinQueryLength: 1, PreviewLimit: 5}, Options{MinQueryLength: 1}.WithDefaults())

	loose := NewSurface(&fakeEngine{n: 1}, Options{MinQueryLength: 1})
	assert.Equal(t, Suggesting, loose.Type("o"))
	assert.Equal(t, Idle, loose.Type(""))
}
