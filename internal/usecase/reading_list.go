package usecase

import (
	"context"
	"fmt"
	"strings"

	"ArticlesExplorer/internal/domain"
	"ArticlesExplorer/internal/ports"
)

// ReadingList resolves the viewer's marks back to catalog articles.
type ReadingList struct {
	Highlighted []domain.Article
	Read        []domain.Article
	// Stale holds persisted ids the catalog no longer has.
	Stale []string
}

// StateWithIDs is a state store that can enumerate its marks.
type StateWithIDs interface {
	ports.StateStore
	ReadIDs() []string
	HighlightedIDs() []string
}

// ReadingList loads the viewer's state and resolves both sets in the order they were marked.
func (v *Views) ReadingList(ctx context.Context, state StateWithIDs) ReadingList {
	state.Load(ctx)

	var list ReadingList
	stale := map[string]bool{}
	resolve := func(ids []string) []domain.Article {
		var out []domain.Article
		for _, id := range ids {
			article, ok := v.catalog.ByID(id)
			if !ok {
				if !stale[id] {
					stale[id] = true
					list.Stale = append(list.Stale, id)
				}
				continue
			}
			out = append(out, article)
		}
		return out
	}

	list.Highlighted = resolve(state.HighlightedIDs())
	list.Read = resolve(state.ReadIDs())
	return list
}

// FormatReadingList renders the list as plain text for the terminal.
func FormatReadingList(list ReadingList) string {
	var b strings.Builder

	section := func(title string, articles []domain.Article) {
		fmt.Fprintf(&b, "%s (%d)\n", title, len(articles))
		if len(articles) == 0 {
			b.WriteString("  none\n")
		}
		for _, a := range articles {
			fmt.Fprintf(&b, "  - %s [%s, %d]\n    /article/%s\n", a.Title, a.Topic, a.Year, a.ID)
		}
		b.WriteString("\n")
	}

	section("Highlighted", list.Highlighted)
	section("Read", list.Read)
	if len(list.Stale) > 0 {
		fmt.Fprintf(&b, "Unknown ids: %s\n", strings.Join(list.Stale, ", "))
	}
	return b.String()
}
