// Package action carries component events up to the app model.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is an event a component reports to its parent. ActionType names
// it in logs.
type Action interface {
	ActionType() string
}

// Msg is an Action tagged with the component that raised it.
type Msg struct {
	Source string
	Action Action
}

// Emit returns a command that delivers a as a Msg from source.
func Emit(source string, a Action) tea.Cmd {
	return func() tea.Msg {
		return Msg{Source: source, Action: a}
	}
}
