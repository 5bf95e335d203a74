package catalog

import (
	"fmt"
	"strings"

	"ArticlesExplorer/internal/domain"
	"ArticlesExplorer/internal/ports"
)

// Catalog is the immutable, ordered set of articles plus the topics they belong to.
type Catalog struct {
	articles []domain.Article
	byID     map[string]int
	topics   []domain.Topic
}

var _ ports.ArticleCatalog = (*Catalog)(nil)

// New validates articles and builds a catalog that keeps their order.
func New(articles []domain.Article) (*Catalog, error) {
	topics := domain.Topics()
	known := make(map[string]struct{}, len(topics))
	for _, t := range topics {
		known[t.Slug] = struct{}{}
	}

	c := &Catalog{
		articles: make([]domain.Article, 0, len(articles)),
		byID:     make(map[string]int, len(articles)),
		topics:   topics,
	}

	for i, article := range articles {
		if err := validate(article, known); err != nil {
			return nil, fmt.Errorf("article #%d: %w", i, err)
		}
		if _, dup := c.byID[article.ID]; dup {
			return nil, fmt.Errorf("article #%d: duplicate id %q: %w", i, article.ID, domain.ErrInvalidArticle)
		}
		c.byID[article.ID] = len(c.articles)
		c.articles = append(c.articles, article.Clone())
	}

	return c, nil
}

// Default returns the catalog built from the bundled articles.
func Default() *Catalog {
	c, err := New(seedArticles())
	if err != nil {
		panic(fmt.Sprintf("catalog: bundled articles are invalid: %v", err))
	}
	return c
}

func validate(a domain.Article, knownTopics map[string]struct{}) error {
	if strings.TrimSpace(a.ID) == "" {
		return fmt.Errorf("empty id: %w", domain.ErrInvalidArticle)
	}
	if _, ok := knownTopics[a.TopicSlug()]; !ok {
		return fmt.Errorf("%s: unknown topic %q: %w", a.ID, a.Topic, domain.ErrInvalidArticle)
	}
	for _, s := range a.Sections.Ordered() {
		if strings.TrimSpace(s.Text) == "" {
			return fmt.Errorf("%s: empty %s section: %w", a.ID, strings.ToLower(s.Name), domain.ErrInvalidArticle)
		}
	}
	return nil
}

// Len reports how many articles the catalog holds.
func (c *Catalog) Len() int {
	return len(c.articles)
}

// All returns every article in catalog order.
func (c *Catalog) All() []domain.Article {
	return c.collect(func(domain.Article) bool { return true })
}

// Search returns articles whose title, description, abstract, topic or any keyword
// contains query, case-insensitively. A blank query matches nothing.
func (c *Catalog) Search(query string) []domain.Article {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	needle := strings.ToLower(query)
	return c.collect(func(a domain.Article) bool {
		return matches(a, needle)
	})
}

func matches(a domain.Article, needle string) bool {
	if contains(a.Title, needle) ||
		contains(a.Description, needle) ||
		contains(a.Abstract, needle) ||
		contains(a.Topic, needle) {
		return true
	}
	for _, kw := range a.Keywords {
		if contains(kw, needle) {
			return true
		}
	}
	return false
}

func contains(field, needle string) bool {
	return strings.Contains(strings.ToLower(field), needle)
}

// ByID looks an article up by its exact id.
func (c *Catalog) ByID(id string) (domain.Article, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return domain.Article{}, false
	}
	return c.articles[idx].Clone(), true
}

// ByTopic returns the articles whose slugified topic equals slug.
func (c *Catalog) ByTopic(slug string) []domain.Article {
	slug = strings.ToLower(slug)
	return c.collect(func(a domain.Article) bool {
		return a.TopicSlug() == slug
	})
}

// Topics returns the recognized topics in navigation order.
func (c *Catalog) Topics() []domain.Topic {
	return append([]domain.Topic(nil), c.topics...)
}

// Topic resolves a canonical slug or a legacy alias to its topic.
func (c *Catalog) Topic(slug string) (domain.Topic, bool) {
	for _, t := range c.topics {
		if t.Matches(slug) {
			return t, true
		}
	}
	return domain.Topic{}, false
}

func (c *Catalog) collect(keep func(domain.Article) bool) []domain.Article {
	var out []domain.Article
	for _, a := range c.articles {
		if keep(a) {
			out = append(out, a.Clone())
		}
	}
	return out
}
