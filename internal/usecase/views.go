package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"ArticlesExplorer/internal/domain"
	"ArticlesExplorer/internal/ports"
)

// NoArticlesMessage is shown when a topic has nothing to list.
const NoArticlesMessage = "No articles found for this topic."

// NotFoundMessage is shown when an article id is unknown.
const NotFoundMessage = "Article not found"

// ViewsDeps wires the catalog and logger into the views.
type ViewsDeps struct {
	Catalog ports.ArticleCatalog
	Logger  *slog.Logger
}

// Views builds the topic, topic-article-list and article pages.
type Views struct {
	catalog ports.ArticleCatalog
	logger  *slog.Logger
}

// NewViews constructs the view component.
func NewViews(deps ViewsDeps) *Views {
	return &Views{
		catalog: deps.Catalog,
		logger:  deps.Logger,
	}
}

// TopicPage is the topic detail view.
type TopicPage struct {
	Topic        domain.Topic
	ArticleCount int
}

// ArticleItem is an article with the viewer's marks.
type ArticleItem struct {
	Article     domain.Article `json:"article"`
	Read        bool           `json:"read"`
	Highlighted bool           `json:"highlighted"`
}

// ArticleListPage is the list of a topic's articles.
type ArticleListPage struct {
	Slug    string        `json:"slug"`
	Title   string        `json:"title"`
	Items   []ArticleItem `json:"items"`
	Message string        `json:"message,omitempty"`
}

// TopicDetail resolves slug (canonical or alias) to its topic page.
func (v *Views) TopicDetail(slug string) (TopicPage, error) {
	topic, ok := v.catalog.Topic(slug)
	if !ok {
		return TopicPage{}, fmt.Errorf("topic %s: %w", slug, domain.ErrNotFound)
	}
	return TopicPage{
		Topic:        topic,
		ArticleCount: len(v.catalog.ByTopic(topic.Slug)),
	}, nil
}

// ArticleList activates the list view: it reloads the viewer's state and lists
// the articles whose topic slug is exactly slug.
func (v *Views) ArticleList(ctx context.Context, state ports.StateStore, slug string) ArticleListPage {
	state.Load(ctx)

	page := ArticleListPage{Slug: slug, Title: slug}
	if topic, ok := v.catalog.Topic(slug); ok {
		page.Title = topic.Name
	}

	for _, article := range v.catalog.ByTopic(slug) {
		page.Items = append(page.Items, v.item(state, article))
	}
	if len(page.Items) == 0 {
		page.Items = []ArticleItem{}
		page.Message = NoArticlesMessage
	}

	v.debug("article list", "slug", slug, "count", len(page.Items))
	return page
}

// OpenArticle activates the article view and marks the article read.
// Unknown ids return ErrNotFound and leave the state untouched.
func (v *Views) OpenArticle(ctx context.Context, state ports.StateStore, id string) (ArticleItem, error) {
	article, ok := v.catalog.ByID(id)
	if !ok {
		return ArticleItem{}, fmt.Errorf("article %s: %w", id, domain.ErrNotFound)
	}

	state.Load(ctx)
	if err := state.MarkRead(ctx, id); err != nil {
		v.warn("mark read failed", "id", id, "error", err)
	}
	return v.item(state, article), nil
}

// ToggleRead flips the read mark of a catalog article.
func (v *Views) ToggleRead(ctx context.Context, state ports.StateStore, id string) (ArticleItem, error) {
	return v.toggle(ctx, state, id, state.ToggleRead)
}

// ToggleHighlight flips the highlight of a catalog article.
func (v *Views) ToggleHighlight(ctx context.Context, state ports.StateStore, id string) (ArticleItem, error) {
	return v.toggle(ctx, state, id, state.ToggleHighlight)
}

// MarkRead marks a catalog article read without opening it.
func (v *Views) MarkRead(ctx context.Context, state ports.StateStore, id string) (ArticleItem, error) {
	return v.toggle(ctx, state, id, func(ctx context.Context, id string) (bool, error) {
		return true, state.MarkRead(ctx, id)
	})
}

func (v *Views) toggle(ctx context.Context, state ports.StateStore, id string, flip func(context.Context, string) (bool, error)) (ArticleItem, error) {
	article, ok := v.catalog.ByID(id)
	if !ok {
		return ArticleItem{}, fmt.Errorf("article %s: %w", id, domain.ErrNotFound)
	}

	state.Load(ctx)
	if _, err := flip(ctx, id); err != nil {
		return v.item(state, article), fmt.Errorf("update %s: %w", id, err)
	}
	return v.item(state, article), nil
}

func (v *Views) item(state ports.StateStore, article domain.Article) ArticleItem {
	return ArticleItem{
		Article:     article,
		Read:        state.IsRead(article.ID),
		Highlighted: state.IsHighlighted(article.ID),
	}
}

func (v *Views) debug(msg string, args ...interface{}) {
	if v.logger != nil {
		v.logger.Debug(msg, args...)
	}
}

func (v *Views) warn(msg string, args ...interface{}) {
	if v.logger != nil {
		v.logger.Warn(msg, args...)
	}
}
