package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "board", "drag"
}

// All contains all key bindings for dispatch and help generation.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "quit", "global"},
	{ActionHelp, []string{"?"}, "toggle help", "global"},
	{ActionToggleLayout, []string{"L"}, "grid/masonry", "global"},
	{ActionResetOrder, []string{"R"}, "reset order", "global"},

	// Board
	{ActionMoveUp, []string{"k", "up"}, "up", "board"},
	{ActionMoveDown, []string{"j", "down"}, "down", "board"},
	{ActionMoveLeft, []string{"h", "left"}, "left", "board"},
	{ActionMoveRight, []string{"l", "right"}, "right", "board"},
	{ActionJumpStart, []string{"g", "home"}, "first card", "board"},
	{ActionJumpEnd, []string{"G", "end"}, "last card", "board"},

	// Drag
	{ActionGrab, []string{" ", "enter"}, "pick up / drop", "drag"},
	{ActionAbandon, []string{"esc"}, "put back", "drag"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// displayKey is how a key is shown in help.
func displayKey(k string) string {
	switch k {
	case " ":
		return "space"
	case "up":
		return "↑"
	case "down":
		return "↓"
	case "left":
		return "←"
	case "right":
		return "→"
	}
	return k
}

// Key converts b into a bubbles key binding.
func (b Binding) Key() key.Binding {
	shown := make([]string, len(b.Keys))
	for i, k := range b.Keys {
		shown[i] = displayKey(k)
	}
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(strings.Join(shown, "/"), b.Description),
	)
}

// shortHelp lists the actions shown in the one-line footer.
var shortHelp = []Action{ActionGrab, ActionAbandon, ActionToggleLayout, ActionResetOrder, ActionHelp, ActionQuit}

// helpContexts orders the full help columns.
var helpContexts = []string{"board", "drag", "global"}
