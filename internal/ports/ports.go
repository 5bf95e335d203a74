package ports

import (
	"context"

	"ArticlesExplorer/internal/domain"
)

// KeyValueStore is the string-keyed store interaction state is persisted to.
// Get reports ok=false for absent keys; that is not an error.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// ArticleCatalog exposes read-only access to the article catalog.
type ArticleCatalog interface {
	All() []domain.Article
	Search(query string) []domain.Article
	ByID(id string) (domain.Article, bool)
	ByTopic(slug string) []domain.Article
	Topic(slug string) (domain.Topic, bool)
	Topics() []domain.Topic
}

// StateStore tracks which articles a viewer has read or highlighted.
type StateStore interface {
	Load(ctx context.Context)
	ToggleRead(ctx context.Context, id string) (bool, error)
	ToggleHighlight(ctx context.Context, id string) (bool, error)
	MarkRead(ctx context.Context, id string) error
	IsRead(id string) bool
	IsHighlighted(id string) bool
}
