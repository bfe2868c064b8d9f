package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tiles/internal/keymap"
	"github.com/llehouerou/tiles/internal/reorder"
	"github.com/llehouerou/tiles/internal/ui/action"
	"github.com/llehouerou/tiles/internal/ui/board"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.handleKeyMsg(msg)
		m.syncKeys()
		return m, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.Board, cmd = m.Board.Update(msg)
		m.syncKeys()
		return m, cmd

	case board.FrameMsg, board.SettleMsg:
		var cmd tea.Cmd
		m.Board, cmd = m.Board.Update(msg)
		return m, cmd

	case action.Msg:
		return m.handleUIAction(msg)

	case ClockTickMsg:
		return m, ClockTickCmd()

	case NotificationClearMsg:
		if m.Notification != nil && m.Notification.ID == msg.ID {
			m.Notification = nil
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.resize()
	return m, nil
}

// syncKeys enables the actions that make sense for the current drag state.
func (m *Model) syncKeys() {
	dragging := m.Board.DragState() == reorder.Dragging
	m.Keys.SetEnabled(keymap.ActionToggleLayout, !dragging)
	m.Keys.SetEnabled(keymap.ActionResetOrder, !dragging)
	m.Keys.SetEnabled(keymap.ActionAbandon, dragging)
}
