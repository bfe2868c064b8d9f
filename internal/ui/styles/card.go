package styles

import "github.com/charmbracelet/lipgloss"

// CardState is how a card is currently being interacted with.
type CardState int

const (
	CardIdle CardState = iota
	CardCursor
	CardDragged
	CardDropTarget
	// CardPlaceholder marks the slot a card was lifted from.
	CardPlaceholder
)

// CardFrameWidth is the horizontal space a card border and padding take.
const CardFrameWidth = 4

// CardFrameHeight is the vertical space a card border takes.
const CardFrameHeight = 2

// CardStyle returns the frame style for a card in the given state.
func CardStyle(state CardState) lipgloss.Style {
	t := T()
	base := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Frame).
		Padding(0, 1)

	switch state {
	case CardCursor:
		return base.BorderForeground(t.Primary)
	case CardDragged:
		return base.
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(t.Secondary)
	case CardDropTarget:
		return base.
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(t.Target)
	case CardPlaceholder:
		return base.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(t.Faint).
			Faint(true)
	}
	return base
}
