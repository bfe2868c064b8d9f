package board

import (
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tiles/internal/flip"
	"github.com/llehouerou/tiles/internal/geom"
	"github.com/llehouerou/tiles/internal/keymap"
	"github.com/llehouerou/tiles/internal/reorder"
	"github.com/llehouerou/tiles/internal/snapshot"
	"github.com/llehouerou/tiles/internal/ui/action"
)

// FrameMsg advances running animations.
type FrameMsg struct {
	Time time.Time
}

// SettleMsg settles whatever a Play generation left running past its
// deadline.
type SettleMsg struct {
	Gen  int
	Time time.Time
}

func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return FrameMsg{Time: t}
	})
}

func settleCmd(gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return SettleMsg{Gen: gen, Time: t}
	})
}

// Update handles animation and mouse messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		m.anim.Frame(msg.Time)
		if m.anim.Active() {
			return m, frameCmd(m.opts.FrameInterval)
		}
		m.ticking = false
	case SettleMsg:
		if swept := m.anim.Sweep(msg.Time); len(swept) > 0 {
			m.logger.Debug("settled late animations", "gen", msg.Gen, "items", swept)
		}
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

// HandleAction applies a keyboard action. It reports whether the board
// used it.
func (m Model) HandleAction(a keymap.Action) (Model, tea.Cmd, bool) {
	switch a {
	case keymap.ActionMoveUp:
		m.moveCursor(0, -1)
	case keymap.ActionMoveDown:
		m.moveCursor(0, 1)
	case keymap.ActionMoveLeft:
		m.moveCursor(-1, 0)
	case keymap.ActionMoveRight:
		m.moveCursor(1, 0)
	case keymap.ActionJumpStart, keymap.ActionJumpEnd:
		if seq := m.engine.Sequence(); len(seq) > 0 {
			if a == keymap.ActionJumpStart {
				m.setCursor(seq[0])
			} else {
				m.setCursor(seq[len(seq)-1])
			}
		}
	case keymap.ActionGrab:
		return m.keyboardGrab()
	case keymap.ActionAbandon:
		if !m.engine.Abandon() {
			return m, nil, false
		}
		m.grab = nil
		m.hover = ""
	case keymap.ActionToggleLayout:
		cmd := m.toggleLayout()
		return m, cmd, true
	case keymap.ActionResetOrder:
		cmd := m.resetOrder()
		return m, cmd, true
	default:
		return m, nil, false
	}
	return m, nil, true
}

func (m Model) keyboardGrab() (Model, tea.Cmd, bool) {
	if m.grab != nil {
		return m, nil, false
	}
	dragged, dragging := m.engine.Dragged()
	if !dragging {
		m.interrupt()
		return m, nil, m.engine.DragStart(m.cursor)
	}
	if m.cursor == dragged {
		m.engine.Abandon()
		m.hover = ""
		return m, nil, true
	}
	cmd := m.drop(m.cursor)
	m.cursor = dragged
	return m, cmd, true
}

// setCursor moves the keyboard cursor; during a keyboard drag the card
// under it becomes the drop target.
func (m *Model) setCursor(id string) {
	m.cursor = id
	m.hover = ""
	if dragged, ok := m.engine.Dragged(); ok && id != dragged {
		if m.engine.DragOver(id) == reorder.EffectMove {
			m.hover = id
		}
	}
}

// moveCursor moves to the nearest card in direction (dx, dy), measured
// between laid-out card centers.
func (m *Model) moveCursor(dx, dy int) {
	cur, ok := m.slots[m.cursor]
	if !ok || !cur.laidOut {
		return
	}
	cx, cy := center(cur.rect)

	best, bestScore := "", 0
	for _, id := range m.engine.Sequence() {
		s := m.slots[id]
		if id == m.cursor || !s.laidOut {
			continue
		}
		x, y := center(s.rect)
		primary := (x-cx)*dx + (y-cy)*dy
		if primary <= 0 {
			continue
		}
		secondary := abs((x-cx)*dy) + abs((y-cy)*dx)
		score := primary + 2*secondary
		if best == "" || score < bestScore {
			best, bestScore = id, score
		}
	}
	if best != "" {
		m.setCursor(best)
	}
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	x, y := msg.X-m.originX, msg.Y-m.originY

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.grab != nil {
			return m, nil
		}
		if _, dragging := m.engine.Dragged(); dragging {
			return m, nil
		}
		id := m.hitTest(x, y, "")
		if id == "" {
			return m, nil
		}
		r, _ := m.reg.GeometryOf(id)
		m.interrupt()
		if !m.engine.DragStart(id) {
			return m, nil
		}
		m.cursor = id
		m.grab = &pointerGrab{id: id, dx: x - r.Left, dy: y - r.Top, x: x, y: y}

	case tea.MouseActionMotion:
		if m.grab == nil {
			return m, nil
		}
		m.grab.x, m.grab.y = x, y
		m.hover = ""
		if target := m.hitTest(x, y, m.grab.id); target != "" &&
			m.engine.DragOver(target) == reorder.EffectMove {
			m.hover = target
		}

	case tea.MouseActionRelease:
		if m.grab == nil {
			return m, nil
		}
		dragged := m.grab.id
		m.grab = nil
		target := m.hitTest(x, y)
		if target == "" || target == dragged {
			m.engine.Abandon()
			m.hover = ""
			return m, nil
		}
		return m, m.drop(target)
	}
	return m, nil
}

// hitTest returns the topmost card drawn at (x, y), skipping exclude.
func (m Model) hitTest(x, y int, exclude ...string) string {
	z := m.zOrder()
	for i := len(z) - 1; i >= 0; i-- {
		id := z[i]
		if slices.Contains(exclude, id) {
			continue
		}
		if r, ok := m.reg.GeometryOf(id); ok && r.Contains(x, y) {
			return id
		}
	}
	return ""
}

// drop completes the active drag on target and animates the result.
func (m *Model) drop(target string) tea.Cmd {
	m.hover = ""
	swap, ok := m.engine.Drop(target)
	if !ok {
		return nil
	}
	m.relayout()
	pre, _ := m.engine.TakeSnapshot()
	summary := m.byID[swap.Dragged].Title + " ⇄ " + m.byID[swap.Target].Title
	return tea.Batch(m.play(pre), m.orderChanged(summary))
}

func (m *Model) resetOrder() tea.Cmd {
	m.interrupt()
	if !m.engine.Reset() {
		return nil
	}
	m.relayout()
	pre, _ := m.engine.TakeSnapshot()
	return tea.Batch(m.play(pre), m.orderChanged("order reset"))
}

func (m *Model) toggleLayout() tea.Cmd {
	if _, dragging := m.engine.Dragged(); dragging {
		return nil
	}
	m.interrupt()
	pre := snapshot.CaptureAll(m.reg, m.engine.Sequence())
	m.mode = m.mode.Toggle()
	m.relayout()
	return tea.Batch(m.play(pre), action.Emit(Source, LayoutChanged{Mode: m.mode}))
}

func (m Model) orderChanged(summary string) tea.Cmd {
	return action.Emit(Source, OrderChanged{Sequence: m.engine.Sequence(), Summary: summary})
}

// interrupt applies the interruption policy before a new snapshot.
func (m *Model) interrupt() {
	if m.opts.CancelOnInterrupt {
		if ids := m.anim.CancelAll(); len(ids) > 0 {
			m.logger.Debug("cancelled running animations", "items", ids)
		}
	}
}

// play starts a FLIP transition from pre and makes sure frames are ticking.
func (m *Model) play(pre snapshot.Snapshot) tea.Cmd {
	if len(m.anim.Play(pre, m.engine.Sequence())) == 0 {
		return nil
	}
	m.gen++
	cmds := []tea.Cmd{settleCmd(m.gen, m.anim.SettleDeadline())}
	if !m.ticking {
		m.ticking = true
		cmds = append(cmds, frameCmd(m.opts.FrameInterval))
	}
	return tea.Batch(cmds...)
}

// zOrder lists cards back to front: resting cards, moving cards, then the
// dragged card.
func (m Model) zOrder() []string {
	seq := m.engine.Sequence()
	dragged, _ := m.engine.Dragged()
	out := make([]string, 0, len(seq))
	for _, id := range seq {
		if id != dragged && !m.moving(id) {
			out = append(out, id)
		}
	}
	for _, id := range seq {
		if id != dragged && m.moving(id) {
			out = append(out, id)
		}
	}
	if dragged != "" {
		out = append(out, dragged)
	}
	return out
}

func (m Model) moving(id string) bool {
	return m.anim.Phase(id) != flip.Settled
}

func center(r geom.Rect) (x, y int) {
	return r.Left + r.Width/2, r.Top + r.Height/2
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
