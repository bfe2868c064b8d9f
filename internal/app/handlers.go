package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tiles/internal/app/handler"
	"github.com/llehouerou/tiles/internal/errmsg"
	"github.com/llehouerou/tiles/internal/keymap"
	"github.com/llehouerou/tiles/internal/ui/action"
	"github.com/llehouerou/tiles/internal/ui/board"
)

// handleKeyMsg resolves the key and offers the action to each handler.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	// Any key dismisses an error first.
	if m.ErrorMsg != "" {
		m.ErrorMsg = ""
		m.resize()
		return m, nil
	}

	a := m.Keys.Resolve(msg.String())
	_, cmd := handler.Chain(a,
		handler.On(keymap.ActionQuit, m.handleQuit),
		handler.On(keymap.ActionHelp, m.handleHelpToggle),
		m.handleBoardKeys,
	)
	return m, cmd
}

func (m *Model) handleQuit() handler.Result {
	m.logger.Info("quitting", "order", m.Board.Sequence())
	return handler.Handled(tea.Quit)
}

func (m *Model) handleHelpToggle() handler.Result {
	m.Help.ShowAll = !m.Help.ShowAll
	m.resize()
	return handler.HandledNoCmd
}

func (m *Model) handleBoardKeys(a keymap.Action) handler.Result {
	var (
		cmd     tea.Cmd
		handled bool
	)
	m.Board, cmd, handled = m.Board.HandleAction(a)
	if !handled {
		return handler.NotHandled
	}
	return handler.Handled(cmd)
}

// handleUIAction routes action messages to component-specific handlers.
func (m Model) handleUIAction(msg action.Msg) (tea.Model, tea.Cmd) {
	if msg.Source == board.Source {
		return m.handleBoardAction(msg.Action)
	}
	return m, nil
}

func (m Model) handleBoardAction(a action.Action) (tea.Model, tea.Cmd) {
	switch a := a.(type) {
	case board.OrderChanged:
		m.logger.Debug("order changed", "order", a.Sequence)
		return m, m.notify(a.Summary)

	case board.LayoutChanged:
		if err := m.StateMgr.SaveLayoutMode(string(a.Mode)); err != nil {
			m.logger.Error("save layout mode", "mode", a.Mode, "err", err)
			m.ErrorMsg = errmsg.Format(errmsg.OpLayoutSave, err)
			m.resize()
			return m, nil
		}
		m.logger.Debug("layout changed", "mode", a.Mode)
		return m, m.notify(string(a.Mode) + " layout")
	}
	return m, nil
}
