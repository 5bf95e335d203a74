package search

import (
	"unicode/utf8"

	"ArticlesExplorer/internal/domain"
)

// Defaults for the preview panel.
const (
	DefaultMinQueryLength = 2
	DefaultPreviewLimit   = 5
	NoResultsNotice       = "No results found"
)

// State is the visibility state of the results panel.
type State int

const (
	// Idle shows no panel; the query is shorter than the minimum length.
	Idle State = iota
	// Suggesting shows up to the preview limit of results, or the no-results notice.
	Suggesting
	// Dismissed hides the panel until the query changes again.
	Dismissed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Suggesting:
		return "suggesting"
	case Dismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

// Engine evaluates a query against the catalog.
type Engine interface {
	Search(query string) []domain.Article
}

// Options tunes the surface; zero values fall back to the defaults.
type Options struct {
	MinQueryLength int
	PreviewLimit   int
}

// WithDefaults replaces non-positive fields with the package defaults.
func (o Options) WithDefaults() Options {
	if o.MinQueryLength <= 0 {
		o.MinQueryLength = DefaultMinQueryLength
	}
	if o.PreviewLimit <= 0 {
		o.PreviewLimit = DefaultPreviewLimit
	}
	return o
}

// Surface is the search box and its results panel.
type Surface struct {
	engine  Engine
	opts    Options
	state   State
	query   string
	results []domain.Article
}

// NewSurface returns an idle surface.
func NewSurface(engine Engine, opts Options) *Surface {
	return &Surface{engine: engine, opts: opts.WithDefaults()}
}

// Type replaces the query text. Long enough queries open the panel from any state.
func (s *Surface) Type(query string) State {
	s.query = query
	if utf8.RuneCountInString(query) < s.opts.MinQueryLength {
		s.state = Idle
		s.results = nil
		return s.state
	}
	s.results = s.engine.Search(query)
	s.state = Suggesting
	return s.state
}

// DismissOutside hides an open panel, as a click outside the control does.
func (s *Surface) DismissOutside() State {
	if s.state == Suggesting {
		s.state = Dismissed
	}
	return s.state
}

// Select picks the i-th previewed result and closes the panel.
// It returns the id to navigate to.
func (s *Surface) Select(i int) (string, bool) {
	if s.state != Suggesting {
		return "", false
	}
	preview := s.Preview()
	if i < 0 || i >= len(preview) {
		return "", false
	}
	s.state = Dismissed
	return preview[i].ID, true
}

// State returns the current state.
func (s *Surface) State() State {
	return s.state
}

// Query returns the current query text.
func (s *Surface) Query() string {
	return s.query
}

// Preview returns what the panel shows: at most PreviewLimit results, nothing unless Suggesting.
func (s *Surface) Preview() []domain.Article {
	if s.state != Suggesting {
		return nil
	}
	return limit(s.results, s.opts.PreviewLimit)
}

// Total is the number of matches behind the preview.
func (s *Surface) Total() int {
	return len(s.results)
}

// NoResults reports whether the panel shows the no-results notice.
func (s *Surface) NoResults() bool {
	return s.state == Suggesting && len(s.results) == 0
}

// Suggestion is a one-shot rendering of the panel for a query.
type Suggestion struct {
	State   string           `json:"state"`
	Query   string           `json:"query"`
	Results []domain.Article `json:"results"`
	Total   int              `json:"total"`
	Notice  string           `json:"notice,omitempty"`
}

// Evaluate renders the panel a fresh surface would show after typing query.
func Evaluate(engine Engine, opts Options, query string) Suggestion {
	s := NewSurface(engine, opts)
	s.Type(query)
	return s.Suggestion()
}

// Suggestion snapshots the current panel.
func (s *Surface) Suggestion() Suggestion {
	out := Suggestion{
		State:   s.state.String(),
		Query:   s.query,
		Results: s.Preview(),
		Total:   s.Total(),
	}
	if out.Results == nil {
		out.Results = []domain.Article{}
	}
	if s.NoResults() {
		out.Notice = NoResultsNotice
	}
	return out
}

func limit(articles []domain.Article, n int) []domain.Article {
	if len(articles) <= n {
		return articles
	}
	return articles[:n]
}
