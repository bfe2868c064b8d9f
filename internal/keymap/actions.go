// Package keymap defines key bindings and action dispatch for the board.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit         Action = "quit"
	ActionHelp         Action = "help"
	ActionToggleLayout Action = "toggle_layout"
	ActionResetOrder   Action = "reset_order"

	// Cursor movement between cards
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionMoveLeft  Action = "move_left"
	ActionMoveRight Action = "move_right"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"

	// Keyboard drag
	ActionGrab    Action = "grab"    // space/enter - pick up or drop
	ActionAbandon Action = "abandon" // esc - put the card back
)
