package app

import (
	"github.com/llehouerou/tiles/internal/icons"
	"github.com/llehouerou/tiles/internal/reorder"
	"github.com/llehouerou/tiles/internal/ui/headerbar"
	"github.com/llehouerou/tiles/internal/ui/render"
	"github.com/llehouerou/tiles/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 {
		return ""
	}
	header := headerbar.Render(m.Board.Mode(), m.status(), m.Width)
	return header + "\n" + m.Board.View() + "\n" + m.renderFooter()
}

// status describes what the board is doing for the header.
func (m Model) status() string {
	if m.Board.DragState() == reorder.Dragging {
		if title, ok := m.Board.Dragged(); ok {
			return icons.FormatDragging(title)
		}
	}
	if m.Notification != nil {
		return m.Notification.Message
	}
	if m.Board.Animating() {
		return "animating"
	}
	return "idle"
}

// renderFooter renders the error line when set, else the key help.
func (m Model) renderFooter() string {
	if m.ErrorMsg != "" {
		return styles.T().S().Error.Render(render.Truncate(m.ErrorMsg, m.Width))
	}
	return m.Help.View(m.Keys)
}
