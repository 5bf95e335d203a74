package tui

import (
	"fmt"
	"strings"

	"ArticlesExplorer/internal/domain"
)

// ArticleMarkdown lays an article out as a markdown document for the reader pane.
func ArticleMarkdown(a domain.Article) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", a.Title)
	fmt.Fprintf(&b, "*%s • %d • %s*\n\n", strings.Join(a.Authors, ", "), a.Year, a.Topic)

	if len(a.Keywords) > 0 {
		tags := make([]string, 0, len(a.Keywords))
		for _, k := range a.Keywords {
			tags = append(tags, "`"+k+"`")
		}
		b.WriteString(strings.Join(tags, " "))
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "## Abstract\n\n%s\n\n", a.Abstract)
	for _, section := range a.Sections.Ordered() {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", section.Name, section.Text)
	}
	return b.String()
}
