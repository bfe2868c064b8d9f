// Package headerbar renders the single-line bar above the board.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tiles/internal/ui/layout"
	"github.com/llehouerou/tiles/internal/ui/render"
	"github.com/llehouerou/tiles/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// title is the application name shown on the left.
const title = "tiles"

// tab represents a layout mode tab.
type tab struct {
	name string
	mode layout.Mode
}

var tabs = []tab{
	{"Grid", layout.ModeGrid},
	{"Masonry", layout.ModeMasonry},
}

// Styles
var (
	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)
)

// Render returns the header bar for the given width: the title on the left,
// the layout tabs in the middle and status on the right. Status is dropped
// first when space runs out.
func Render(mode layout.Mode, status string, width int) string {
	if width < 20 {
		return ""
	}

	t := styles.T()
	left := styles.Gradient(title, t.Primary, t.Secondary)

	parts := make([]string, 0, len(tabs))
	for _, tb := range tabs {
		if tb.mode == mode {
			parts = append(parts, activeStyle.Render(tb.name))
		} else {
			parts = append(parts, inactiveStyle.Render(tb.name))
		}
	}
	middle := keyStyle.Render("L") + " " + strings.Join(parts, separatorStyle.Render(" │ "))

	leftW := lipgloss.Width(left)
	midW := lipgloss.Width(middle)

	// Center the tabs, keeping clear of the title.
	midStart := max((width-midW)/2, leftW+1)
	line := left + strings.Repeat(" ", midStart-leftW) + middle
	used := midStart + midW

	room := width - used - 2
	if status != "" && room > 0 {
		s := statusStyle.Render(render.Truncate(status, room))
		line += strings.Repeat(" ", width-used-lipgloss.Width(s)) + s
	}

	return render.TruncateStyled(line, width)
}
