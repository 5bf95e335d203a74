// Package tui is the terminal browser: a live search box with a results
// preview and a reader pane that marks what you open as read.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"ArticlesExplorer/internal/ports"
	"ArticlesExplorer/internal/search"
	"ArticlesExplorer/internal/usecase"
)

const wordWrap = 80

type mode int

const (
	modeSearch mode = iota
	modeArticle
)

// Deps wires the model's collaborators.
type Deps struct {
	Catalog ports.ArticleCatalog
	Views   *usecase.Views
	State   ports.StateStore
	Search  search.Options
	// GlamourStyle names a glamour style ("dark", "light", "notty"); empty picks one from the terminal.
	GlamourStyle string
}

// Model is the bubbletea model of the browser.
type Model struct {
	ctx     context.Context
	views   *usecase.Views
	state   ports.StateStore
	surface *search.Surface

	input    textinput.Model
	viewport viewport.Model
	renderer *glamour.TermRenderer
	styles   Styles

	mode    mode
	cursor  int
	article usecase.ArticleItem
	status  string
	width   int
	height  int
}

// New builds the model with the search box focused.
func New(ctx context.Context, deps Deps) (Model, error) {
	if deps.Catalog == nil || deps.Views == nil || deps.State == nil {
		return Model{}, errors.New("tui: catalog, views and state are required")
	}

	renderer, err := newRenderer(deps.GlamourStyle)
	if err != nil {
		return Model{}, fmt.Errorf("markdown renderer: %w", err)
	}

	in := textinput.New()
	in.Placeholder = "Search articles..."
	in.CharLimit = 120
	in.Width = 50
	in.Focus()

	deps.State.Load(ctx)

	return Model{
		ctx:      ctx,
		views:    deps.Views,
		state:    deps.State,
		surface:  search.NewSurface(deps.Catalog, deps.Search),
		input:    in,
		viewport: viewport.New(wordWrap, 20),
		renderer: renderer,
		styles:   DefaultStyles(),
		width:    wordWrap,
		height:   24,
	}, nil
}

func newRenderer(style string) (*glamour.TermRenderer, error) {
	if style == "" {
		return glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(wordWrap))
	}
	return glamour.NewTermRenderer(glamour.WithStylePath(style), glamour.WithWordWrap(wordWrap))
}

// Run starts the program and blocks until the user quits or ctx ends.
func Run(ctx context.Context, m Model) error {
	_, err := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen()).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-4, 1)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.mode == modeArticle {
			return m.updateArticle(msg)
		}
		return m.updateSearch(msg)
	}

	if m.mode == modeSearch {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.surface.DismissOutside()
		return m, nil
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case tea.KeyDown:
		if m.cursor < len(m.surface.Preview())-1 {
			m.cursor++
		}
		return m, nil
	case tea.KeyEnter:
		id, ok := m.surface.Select(m.cursor)
		if !ok {
			return m, nil
		}
		return m.open(id), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.surface.Query() {
		m.surface.Type(m.input.Value())
		m.cursor = 0
	}
	return m, cmd
}

func (m Model) updateArticle(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var (
		item usecase.ArticleItem
		err  error
	)
	switch msg.String() {
	case "esc", "q", "backspace":
		m.mode = modeSearch
		m.status = ""
		m.input.Focus()
		return m, textinput.Blink
	case "r":
		item, err = m.views.ToggleRead(m.ctx, m.state, m.article.Article.ID)
	case "h":
		item, err = m.views.ToggleHighlight(m.ctx, m.state, m.article.Article.ID)
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	m.article = item
	m.status = ""
	if err != nil {
		m.status = "could not save: " + err.Error()
	}
	return m, nil
}

func (m Model) open(id string) Model {
	item, err := m.views.OpenArticle(m.ctx, m.state, id)
	if err != nil {
		m.status = usecase.NotFoundMessage
		return m
	}

	body := ArticleMarkdown(item.Article)
	if rendered, err := m.renderer.Render(body); err == nil {
		body = rendered
	}
	m.viewport.SetContent(body)
	m.viewport.GotoTop()

	m.article = item
	m.mode = modeArticle
	m.status = ""
	m.input.Blur()
	return m
}

// View renders the current screen.
func (m Model) View() string {
	if m.mode == modeArticle {
		return m.articleView()
	}
	return m.searchView()
}

func (m Model) searchView() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render("Space Biology Articles"))
	sb.WriteString("\n")

	inputStyle := m.styles.Input
	if m.surface.State() == search.Suggesting {
		inputStyle = m.styles.InputActive
	}
	sb.WriteString(inputStyle.Render(m.input.View()))
	sb.WriteString("\n")

	switch {
	case m.surface.NoResults():
		sb.WriteString(m.styles.Notice.Render(search.NoResultsNotice))
		sb.WriteString("\n")
	case m.surface.State() == search.Suggesting:
		for i, a := range m.surface.Preview() {
			line := a.Title + "\n" + m.styles.Muted.Render("  "+a.Description)
			if i == m.cursor {
				sb.WriteString(m.styles.Selected.Render("› " + line))
			} else {
				sb.WriteString(m.styles.Result.Render(line))
			}
			sb.WriteString("\n")
		}
		if shown := len(m.surface.Preview()); m.surface.Total() > shown {
			sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("  Showing %d of %d matches", shown, m.surface.Total())))
			sb.WriteString("\n")
		}
	}

	if m.status != "" {
		sb.WriteString(m.styles.Error.Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString(m.styles.Help.Render("↑/↓ choose • enter open • esc dismiss • ctrl+c quit"))
	return sb.String()
}

func (m Model) articleView() string {
	var marks []string
	if m.article.Read {
		marks = append(marks, m.styles.Read.Render("✓ Read"))
	}
	if m.article.Highlighted {
		marks = append(marks, m.styles.Highlighted.Render("★ Highlighted"))
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(marks, "  "))
	sb.WriteString("\n")
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")
	if m.status != "" {
		sb.WriteString(m.styles.Error.Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString(m.styles.Help.Render("r read • h highlight • esc back • ctrl+c quit"))
	return sb.String()
}
