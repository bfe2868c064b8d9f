package board

import (
	"github.com/llehouerou/tiles/internal/ui/overlay"
	"github.com/llehouerou/tiles/internal/ui/styles"
)

// View renders the board. Cards are drawn at their animated positions in
// z-order; a card lifted with the mouse follows the pointer.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	canvas := overlay.Blank(m.width, m.height)

	for _, id := range m.zOrder() {
		r, ok := m.reg.GeometryOf(id)
		if !ok || r.Empty() {
			continue
		}
		card := m.renderCard(id, r.Width, r.Height, m.cardState(id))
		canvas = overlay.Place(canvas, card, r.Left, r.Top, m.width)
	}

	if m.grab != nil {
		if s, ok := m.slots[m.grab.id]; ok && s.laidOut {
			card := m.renderCard(m.grab.id, s.rect.Width, s.rect.Height, styles.CardDragged)
			canvas = overlay.Place(canvas, card, m.grab.x-m.grab.dx, m.grab.y-m.grab.dy, m.width)
		}
	}

	return canvas
}

func (m Model) cardState(id string) styles.CardState {
	dragged, dragging := m.engine.Dragged()
	switch {
	case dragging && id == dragged && m.grab != nil:
		return styles.CardPlaceholder
	case dragging && id == dragged:
		return styles.CardDragged
	case dragging && id == m.hover:
		return styles.CardDropTarget
	case id == m.cursor && m.grab == nil:
		return styles.CardCursor
	}
	return styles.CardIdle
}

func (m Model) renderCard(id string, width, height int, state styles.CardState) string {
	style := styles.CardStyle(state).
		Width(max(width-2, 0)).
		Height(max(height-styles.CardFrameHeight, 0))
	return style.Render(m.renderContent(id, width))
}
