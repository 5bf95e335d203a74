package domain

import (
	"errors"
	"strings"
	"unicode"
)

var (
	// ErrNotFound marks lookups that matched nothing.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArticle marks catalog records that break catalog invariants.
	ErrInvalidArticle = errors.New("invalid article")
)

// Article is a single catalog record. Values are never mutated after the catalog is built.
type Article struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Abstract    string   `yaml:"abstract" json:"abstract"`
	Topic       string   `yaml:"topic" json:"topic"`
	Year        int      `yaml:"year" json:"year"`
	Authors     []string `yaml:"authors" json:"authors"`
	Keywords    []string `yaml:"keywords" json:"keywords"`
	Sections    Sections `yaml:"sections" json:"sections"`
}

// Sections holds the five long-form parts every article carries.
type Sections struct {
	Background string `yaml:"background" json:"background"`
	Methods    string `yaml:"methods" json:"methods"`
	Results    string `yaml:"results" json:"results"`
	Discussion string `yaml:"discussion" json:"discussion"`
	Conclusion string `yaml:"conclusion" json:"conclusion"`
}

// Section is a named piece of an article body, in reading order.
type Section struct {
	Name string
	Text string
}

// Ordered lists sections in the order they are displayed.
func (s Sections) Ordered() []Section {
	return []Section{
		{Name: "Background", Text: s.Background},
		{Name: "Methods", Text: s.Methods},
		{Name: "Results", Text: s.Results},
		{Name: "Discussion", Text: s.Discussion},
		{Name: "Conclusion", Text: s.Conclusion},
	}
}

// TopicSlug returns the slug used to look up the article by topic.
func (a Article) TopicSlug() string {
	return Slugify(a.Topic)
}

// Clone returns a deep copy so callers cannot reach catalog-owned slices.
func (a Article) Clone() Article {
	out := a
	out.Authors = append([]string(nil), a.Authors...)
	out.Keywords = append([]string(nil), a.Keywords...)
	return out
}

// Slugify lowercases s and collapses each whitespace run into a single hyphen.
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('-')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
