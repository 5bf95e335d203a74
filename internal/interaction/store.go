// Package interaction tracks which articles a viewer has read or highlighted.
//
// Each set is persisted in full, as a JSON array of ids, on every change.
// Nothing coordinates two Store values writing the same keys: the last
// write wins, so two open tabs (or two processes) can drop each other's
// change.
package interaction

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"ArticlesExplorer/internal/ports"
)

// Storage keys of the persisted layout.
const (
	ReadKey        = "readArticles"
	HighlightedKey = "highlightedArticles"
)

// Store holds the read and highlighted sets for one viewer.
type Store struct {
	kv        ports.KeyValueStore
	namespace string
	logger    *slog.Logger

	mu          sync.Mutex
	read        *idSet
	highlighted *idSet
}

var _ ports.StateStore = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithNamespace prefixes both storage keys so one backend can hold many viewers.
func WithNamespace(namespace string) Option {
	return func(s *Store) {
		s.namespace = namespace
	}
}

// WithLogger sets the logger used for fail-open warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore builds an empty store over kv. Call Load to pick up persisted state.
func NewStore(kv ports.KeyValueStore, opts ...Option) *Store {
	s := &Store{
		kv:          kv,
		read:        newIDSet(nil),
		highlighted: newIDSet(nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot is a copy of both sets.
type Snapshot struct {
	Read        []string `json:"read"`
	Highlighted []string `json:"highlighted"`
}

// Load replaces both in-memory sets with the persisted ones. Missing, unreadable
// or malformed values load as empty sets; Load never fails.
func (s *Store) Load(ctx context.Context) {
	read := s.loadSet(ctx, ReadKey)
	highlighted := s.loadSet(ctx, HighlightedKey)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.read = read
	s.highlighted = highlighted
}

// ToggleRead flips id's read mark, persists the set and returns the new membership.
func (s *Store) ToggleRead(ctx context.Context, id string) (bool, error) {
	return s.toggle(ctx, ReadKey, func() *idSet { return s.read }, id)
}

// ToggleHighlight flips id's highlight, persists the set and returns the new membership.
func (s *Store) ToggleHighlight(ctx context.Context, id string) (bool, error) {
	return s.toggle(ctx, HighlightedKey, func() *idSet { return s.highlighted }, id)
}

// MarkRead adds id to the read set. It never removes and is idempotent.
func (s *Store) MarkRead(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.read.add(id)
	return s.persist(ctx, ReadKey, s.read)
}

// Clear empties both sets and persists them.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.read = newIDSet(nil)
	s.highlighted = newIDSet(nil)
	if err := s.persist(ctx, ReadKey, s.read); err != nil {
		return err
	}
	return s.persist(ctx, HighlightedKey, s.highlighted)
}

// IsRead reports whether id is marked read.
func (s *Store) IsRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read.has(id)
}

// IsHighlighted reports whether id is highlighted.
func (s *Store) IsHighlighted(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highlighted.has(id)
}

// ReadIDs returns the read ids in the order they were added.
func (s *Store) ReadIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read.list()
}

// HighlightedIDs returns the highlighted ids in the order they were added.
func (s *Store) HighlightedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highlighted.list()
}

// Snapshot copies both sets.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{Read: s.read.list(), Highlighted: s.highlighted.list()}
}

func (s *Store) toggle(ctx context.Context, key string, set func() *idSet, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := set()
	member := !target.has(id)
	if member {
		target.add(id)
	} else {
		target.remove(id)
	}
	return member, s.persist(ctx, key, target)
}

// persist writes the whole set. On failure the in-memory change is kept.
func (s *Store) persist(ctx context.Context, key string, set *idSet) error {
	raw, err := json.Marshal(set.list())
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, s.key(key), string(raw)); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

func (s *Store) loadSet(ctx context.Context, key string) *idSet {
	raw, ok, err := s.kv.Get(ctx, s.key(key))
	if err != nil {
		s.warn("cannot read interaction state, using empty set", "key", s.key(key), "error", err)
		return newIDSet(nil)
	}
	if !ok {
		return newIDSet(nil)
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		s.warn("corrupt interaction state, using empty set", "key", s.key(key), "error", err)
		return newIDSet(nil)
	}
	return newIDSet(ids)
}

func (s *Store) key(name string) string {
	if s.namespace == "" {
		return name
	}
	return s.namespace + ":" + name
}

func (s *Store) warn(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}
