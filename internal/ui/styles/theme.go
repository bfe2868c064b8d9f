package styles

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the dashboard palette.
type Theme struct {
	Primary   lipgloss.Color // title gradient start, focused frame
	Secondary lipgloss.Color // title gradient end, lifted card

	Text  lipgloss.Color
	Dim   lipgloss.Color
	Faint lipgloss.Color

	Frame  lipgloss.Color // idle card border
	Target lipgloss.Color // card under a drag

	Good lipgloss.Color
	Bad  lipgloss.Color
	Warn lipgloss.Color

	once   sync.Once
	styles *Styles
}

// Styles are the text styles cards and bars share.
type Styles struct {
	Base   lipgloss.Style
	Muted  lipgloss.Style
	Subtle lipgloss.Style
	Title  lipgloss.Style
	Accent lipgloss.Style
	Error  lipgloss.Style
}

var dashboard = Theme{
	Primary:   "#a78bfa",
	Secondary: "#f1a208",

	Text:  "#c0c0c0",
	Dim:   "#808080",
	Faint: "#585858",

	Frame:  "#585858",
	Target: "#42b883",

	Good: "#42b883",
	Bad:  "#ff5555",
	Warn: "#f1a208",
}

// T returns the active theme.
func T() *Theme {
	return &dashboard
}

// S returns the text styles, built on first use.
func (t *Theme) S() *Styles {
	t.once.Do(func() {
		text := lipgloss.NewStyle().Foreground(t.Text)
		t.styles = &Styles{
			Base:   text,
			Muted:  lipgloss.NewStyle().Foreground(t.Dim),
			Subtle: lipgloss.NewStyle().Foreground(t.Faint),
			Title:  text.Bold(true),
			Accent: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
			Error:  lipgloss.NewStyle().Foreground(t.Bad),
		}
	})
	return t.styles
}
