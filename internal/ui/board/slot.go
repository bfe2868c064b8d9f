package board

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tiles/internal/flip"
	"github.com/llehouerou/tiles/internal/geom"
	"github.com/llehouerou/tiles/internal/ui/layout"
	"github.com/llehouerou/tiles/internal/ui/styles"
)

// slot is where a card is drawn: its laid-out rectangle displaced by the
// animator's current offset.
type slot struct {
	id      string
	rect    geom.Rect
	laidOut bool
	anim    *flip.Animator
}

func (s *slot) Bounds() (geom.Rect, bool) {
	if !s.laidOut {
		return geom.Rect{}, false
	}
	dx, dy := s.anim.Offset(s.id).Round()
	return s.rect.Translate(dx, dy), true
}

// relayout places every card for the current sequence, mode and size.
func (m *Model) relayout() {
	seq := m.engine.Sequence()
	if m.width <= 0 {
		for _, id := range seq {
			m.slots[id].laidOut = false
		}
		return
	}

	cw := layout.CardWidth(m.width, m.opts.Layout)
	heights := make([]int, len(seq))
	for i, id := range seq {
		heights[i] = lipgloss.Height(m.renderContent(id, cw)) + styles.CardFrameHeight
	}

	rects := layout.Place(m.mode, heights, m.width, m.opts.Layout)
	for i, id := range seq {
		s := m.slots[id]
		s.rect = rects[i]
		s.laidOut = true
	}
	if _, h := layout.Extent(rects); h > m.height {
		m.logger.Debug("board clipped", "mode", m.mode, "rows", h, "visible", m.height)
	}
}

func (m Model) renderContent(id string, cardWidth int) string {
	return m.surfaces.Render(m.byID[id], max(cardWidth-styles.CardFrameWidth, 1))
}
