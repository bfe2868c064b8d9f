package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tiles/internal/ui/headerbar"
	"github.com/llehouerou/tiles/internal/ui/layout"
)

// BoardHeight returns the rows left for the board between header and footer.
func (m *Model) BoardHeight() int {
	return layout.ContentHeight(m.Height, layout.ContentOpts{
		HeaderHeight: headerbar.Height,
		FooterHeight: lipgloss.Height(m.renderFooter()),
	})
}

// resize propagates the window size to the board and footer.
func (m *Model) resize() {
	if m.Width == 0 {
		return
	}
	m.Help.Width = m.Width
	m.Board.SetSize(m.Width, m.BoardHeight())
	m.Board.SetOrigin(0, headerbar.Height)
}
