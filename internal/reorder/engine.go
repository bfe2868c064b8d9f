// Package reorder implements the drag-and-drop state machine that owns the
// ordered item sequence.
//
// A drag captures the geometry of every item before anything moves. A valid
// drop swaps the dragged and target items, persists the new sequence and
// holds the pre-move snapshot until the renderer has laid out the new
// order and takes it for animation.
package reorder

import (
	"slices"

	"github.com/charmbracelet/log"

	"github.com/llehouerou/tiles/internal/errmsg"
	"github.com/llehouerou/tiles/internal/logging"
	"github.com/llehouerou/tiles/internal/order"
	"github.com/llehouerou/tiles/internal/snapshot"
)

// State is the engine state.
type State int

const (
	Idle State = iota
	Dragging
	Dropped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Dropped:
		return "dropped"
	}
	return "unknown"
}

// DropEffect is the answer given to the platform while hovering a target.
type DropEffect int

const (
	EffectNone DropEffect = iota
	EffectMove
)

// Swap describes an applied drop.
type Swap struct {
	Dragged string
	Target  string
	From    int // index of Dragged before the swap
	To      int // index of Target before the swap
}

// Engine owns the ordered sequence and the drag session.
type Engine struct {
	seq        []string
	registered []string
	state      State
	dragged    string
	pre        snapshot.Snapshot
	store      order.Store
	geo        snapshot.Source
	logger     *log.Logger
}

// New creates an engine over the registered ids, restoring the persisted
// order from store when one is available.
func New(registered []string, store order.Store, geo snapshot.Source, logger *log.Logger) *Engine {
	e := &Engine{
		registered: slices.Clone(registered),
		store:      store,
		geo:        geo,
		logger:     logging.OrDiscard(logger),
	}
	e.seq = e.load()
	return e
}

func (e *Engine) load() []string {
	persisted, ok := e.store.LoadOrder()
	if !ok {
		e.logger.Debug("no usable persisted order, using default")
		return slices.Clone(e.registered)
	}
	seq := order.Reconcile(persisted, e.registered)
	if stale := countStale(persisted, e.registered); stale > 0 {
		e.logger.Debug("dropped stale ids from persisted order", "count", stale)
	}
	return seq
}

func countStale(persisted, registered []string) int {
	n := 0
	for _, id := range persisted {
		if !slices.Contains(registered, id) {
			n++
		}
	}
	return n
}

// Sequence returns a copy of the current display order.
func (e *Engine) Sequence() []string {
	return slices.Clone(e.seq)
}

// Index returns the display position of id, or -1.
func (e *Engine) Index(id string) int {
	return slices.Index(e.seq, id)
}

// State returns the current state.
func (e *Engine) State() State {
	return e.state
}

// Dragged returns the id being dragged.
func (e *Engine) Dragged() (string, bool) {
	if e.state != Dragging {
		return "", false
	}
	return e.dragged, true
}

// DragStart begins a drag on id and captures the pre-move geometry of the
// whole sequence. It is ignored while a drag is already active and for ids
// not in the sequence.
func (e *Engine) DragStart(id string) bool {
	if e.state != Idle {
		e.logger.Debug("drag start ignored", "id", id, "state", e.state)
		return false
	}
	if !slices.Contains(e.seq, id) {
		e.logger.Debug("drag start on unknown id", "id", id)
		return false
	}
	e.pre = snapshot.CaptureAll(e.geo, e.seq)
	e.dragged = id
	e.state = Dragging
	e.logger.Debug("drag start", "id", id, "captured", e.pre.Len())
	return true
}

// DragOver reports the drop effect for hovering over id. It never mutates
// the sequence.
func (e *Engine) DragOver(_ string) DropEffect {
	if e.state != Dragging {
		return EffectNone
	}
	return EffectMove
}

// Drop ends the drag on targetID. A drop on the dragged item itself, or
// one involving an id outside the sequence, cancels the drag and returns
// false. Otherwise the two items exchange positions and the new order is
// saved.
func (e *Engine) Drop(targetID string) (Swap, bool) {
	if e.state != Dragging {
		return Swap{}, false
	}
	dragged := e.dragged
	from := slices.Index(e.seq, dragged)
	to := slices.Index(e.seq, targetID)

	next, ok := order.Swap(e.seq, dragged, targetID)
	if !ok {
		e.logger.Debug("drop rejected", "dragged", dragged, "target", targetID)
		e.clear()
		return Swap{}, false
	}

	e.seq = next
	e.dragged = ""
	e.state = Dropped
	e.save()
	e.logger.Debug("swapped", "dragged", dragged, "target", targetID, "from", from, "to", to)
	return Swap{Dragged: dragged, Target: targetID, From: from, To: to}, true
}

// Abandon cancels an active drag without touching the sequence.
func (e *Engine) Abandon() bool {
	if e.state != Dragging {
		return false
	}
	e.logger.Debug("drag abandoned", "id", e.dragged)
	e.clear()
	return true
}

// TakeSnapshot hands the pre-move snapshot to the animator after a drop
// and returns the engine to Idle. It succeeds at most once per drop.
func (e *Engine) TakeSnapshot() (snapshot.Snapshot, bool) {
	if e.state != Dropped {
		return snapshot.Snapshot{}, false
	}
	pre := e.pre
	e.clear()
	return pre, true
}

// Reset restores the registration order. Like a drop, it leaves the
// engine in Dropped with a pre-move snapshot so the change can animate.
// It reports false when a drag is active or the order is already default.
func (e *Engine) Reset() bool {
	if e.state != Idle {
		return false
	}
	if slices.Equal(e.seq, e.registered) {
		return false
	}
	e.pre = snapshot.CaptureAll(e.geo, e.seq)
	e.seq = slices.Clone(e.registered)
	e.state = Dropped
	e.save()
	e.logger.Debug("order reset")
	return true
}

// Sync reconciles the sequence with a new set of registered ids: removed
// ids disappear and new ids are appended. A drag on a removed id is
// abandoned.
func (e *Engine) Sync(registered []string) {
	e.registered = slices.Clone(registered)
	e.seq = order.Reconcile(e.seq, e.registered)
	if e.state == Dragging && !slices.Contains(e.seq, e.dragged) {
		e.Abandon()
	}
}

func (e *Engine) save() {
	if err := e.store.SaveOrder(slices.Clone(e.seq)); err != nil {
		e.logger.Warn(errmsg.Format(errmsg.OpOrderSave, err))
	}
}

func (e *Engine) clear() {
	e.state = Idle
	e.dragged = ""
	e.pre = snapshot.Snapshot{}
}
