package tui

import "github.com/charmbracelet/lipgloss"

var (
	primary = lipgloss.Color("#4db6ac")
	accent  = lipgloss.Color("#ffd54f")
	muted   = lipgloss.Color("#8a8a8a")
	danger  = lipgloss.Color("#e57373")
)

// Styles holds the styled components of the browser.
type Styles struct {
	Header      lipgloss.Style
	Input       lipgloss.Style
	InputActive lipgloss.Style
	Result      lipgloss.Style
	Selected    lipgloss.Style
	Muted       lipgloss.Style
	Notice      lipgloss.Style
	Read        lipgloss.Style
	Highlighted lipgloss.Style
	Error       lipgloss.Style
	Help        lipgloss.Style
}

// DefaultStyles returns the browser's styles.
func DefaultStyles() Styles {
	input := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(muted).
		Padding(0, 1)

	return Styles{
		Header:      lipgloss.NewStyle().Bold(true).Foreground(primary).MarginBottom(1),
		Input:       input,
		InputActive: input.BorderForeground(primary),
		Result:      lipgloss.NewStyle().PaddingLeft(2),
		Selected:    lipgloss.NewStyle().PaddingLeft(1).Bold(true).Foreground(primary),
		Muted:       lipgloss.NewStyle().Foreground(muted),
		Notice:      lipgloss.NewStyle().Italic(true).Foreground(muted).PaddingLeft(2),
		Read:        lipgloss.NewStyle().Foreground(primary),
		Highlighted: lipgloss.NewStyle().Foreground(accent),
		Error:       lipgloss.NewStyle().Foreground(danger),
		Help:        lipgloss.NewStyle().Foreground(muted).MarginTop(1),
	}
}
