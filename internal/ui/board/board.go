// Package board is the card dashboard: it lays cards out, turns mouse and
// keyboard input into drags, and animates every reorder.
package board

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/llehouerou/tiles/internal/catalog"
	"github.com/llehouerou/tiles/internal/flip"
	"github.com/llehouerou/tiles/internal/geom"
	"github.com/llehouerou/tiles/internal/logging"
	"github.com/llehouerou/tiles/internal/order"
	"github.com/llehouerou/tiles/internal/registry"
	"github.com/llehouerou/tiles/internal/reorder"
	"github.com/llehouerou/tiles/internal/ui/cards"
	"github.com/llehouerou/tiles/internal/ui/layout"
)

// DefaultFrameInterval is used when Options.FrameInterval is zero.
const DefaultFrameInterval = time.Second / 60

// Options configures the board.
type Options struct {
	Mode          layout.Mode
	Layout        layout.Opts
	Animation     flip.Options
	FrameInterval time.Duration
	// CancelOnInterrupt snaps moving cards to their slots before a new
	// snapshot is taken, instead of starting from where they are drawn.
	CancelOnInterrupt bool
	Logger            *log.Logger
}

// pointerGrab is an active mouse drag.
type pointerGrab struct {
	id     string
	dx, dy int // grab point inside the card
	x, y   int // pointer position on the board
}

// Model represents the board state.
type Model struct {
	byID     map[string]catalog.Item
	surfaces cards.Set
	reg      *registry.Registry
	slots    map[string]*slot
	engine   *reorder.Engine
	anim     *flip.Animator
	opts     Options
	mode     layout.Mode
	logger   *log.Logger

	width, height    int
	originX, originY int

	cursor  string
	hover   string
	grab    *pointerGrab
	ticking bool
	gen     int
}

// New creates a board over items, restoring their order from store.
func New(items []catalog.Item, surfaces cards.Set, store order.Store, opts Options) Model {
	logger := logging.OrDiscard(opts.Logger)
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = DefaultFrameInterval
	}
	// Sweep counts from Play, so the grace must cover the first frame's delay.
	opts.Animation.Grace = max(opts.Animation.Grace, flip.DefaultGrace, 2*opts.FrameInterval)
	mode := opts.Mode
	if mode != layout.ModeMasonry {
		mode = layout.ModeGrid
	}

	reg := registry.New()
	anim := flip.New(reg, opts.Animation, logger)
	slots := make(map[string]*slot, len(items))
	for _, it := range items {
		s := &slot{id: it.ID, anim: anim}
		slots[it.ID] = s
		reg.Register(it.ID, s)
	}

	m := Model{
		byID:     catalog.ByID(items),
		surfaces: surfaces,
		reg:      reg,
		slots:    slots,
		engine:   reorder.New(reg.IDs(), store, reg, logger),
		anim:     anim,
		opts:     opts,
		mode:     mode,
		logger:   logger,
	}
	if seq := m.engine.Sequence(); len(seq) > 0 {
		m.cursor = seq[0]
	}
	return m
}

// SetSize sets the board dimensions and lays the cards out again.
// Running animations are dropped.
func (m *Model) SetSize(width, height int) {
	if width == m.width && height == m.height {
		return
	}
	m.width = width
	m.height = height
	m.anim.CancelAll()
	m.relayout()
}

// SetOrigin sets the screen position of the board's top-left cell, used to
// map mouse coordinates.
func (m *Model) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

// Size returns the board dimensions.
func (m Model) Size() (width, height int) {
	return m.width, m.height
}

// Mode returns the current layout mode.
func (m Model) Mode() layout.Mode {
	return m.mode
}

// Sequence returns the current card order.
func (m Model) Sequence() []string {
	return m.engine.Sequence()
}

// DragState returns the reorder state.
func (m Model) DragState() reorder.State {
	return m.engine.State()
}

// Dragged returns the title of the card being dragged.
func (m Model) Dragged() (string, bool) {
	id, ok := m.engine.Dragged()
	if !ok {
		return "", false
	}
	return m.byID[id].Title, true
}

// Geometry returns where card id is drawn on the board, offset included.
func (m Model) Geometry(id string) (geom.Rect, bool) {
	return m.reg.GeometryOf(id)
}

// Cursor returns the id of the card under the keyboard cursor.
func (m Model) Cursor() string {
	return m.cursor
}

// Hover returns the id of the current drop target, if any.
func (m Model) Hover() string {
	return m.hover
}

// Animating reports whether any card is moving.
func (m Model) Animating() bool {
	return m.anim.Active()
}
