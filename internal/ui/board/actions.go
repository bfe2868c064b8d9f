package board

import (
	"github.com/llehouerou/tiles/internal/ui/action"
	"github.com/llehouerou/tiles/internal/ui/layout"
)

// OrderChanged reports a new card order, already persisted.
type OrderChanged struct {
	Sequence []string
	Summary  string // e.g. "Schedule ⇄ KPIs"
}

// ActionType implements action.Action.
func (a OrderChanged) ActionType() string { return "board.order_changed" }

// LayoutChanged reports a layout mode switch that should be persisted.
type LayoutChanged struct {
	Mode layout.Mode
}

// ActionType implements action.Action.
func (a LayoutChanged) ActionType() string { return "board.layout_changed" }

// Source tags every action.Msg the board raises.
const Source = "board"

// ActionMsg wraps a board action as the message Emit would deliver.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: Source, Action: a}
}
