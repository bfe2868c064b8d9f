package flip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/tiles/internal/geom"
	"github.com/llehouerou/tiles/internal/snapshot"
)

type mapSource map[string]geom.Rect

func (m mapSource) GeometryOf(id string) (geom.Rect, bool) {
	r, ok := m[id]
	return r, ok
}

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestAnimator(src snapshot.Source) *Animator {
	return New(src, Options{
		Duration: 300 * time.Millisecond,
		Easing:   Linear,
		Now:      func() time.Time { return t0 },
	}, nil)
}

func rect(left, top int) geom.Rect {
	return geom.Rect{Left: left, Top: top, Width: 10, Height: 5}
}

func TestPlay_InvertsMovedItems(t *testing.T) {
	src := mapSource{"a": rect(0, 0), "b": rect(20, 6)}
	pre := snapshot.CaptureAll(src, []string{"a", "b"})
	// swap
	src["a"], src["b"] = rect(20, 6), rect(0, 0)
	a := newTestAnimator(src)

	started := a.Play(pre, []string{"a", "b"})

	assert.ElementsMatch(t, []string{"a", "b"}, started)
	assert.Equal(t, Inverted, a.Phase("a"))
	assert.Equal(t, geom.Offset{DX: -20, DY: -6}, a.Offset("a"))
	assert.Equal(t, geom.Offset{DX: 20, DY: 6}, a.Offset("b"))
}

func TestPlay_SkipsUnmovedItems(t *testing.T) {
	src := mapSource{"a": rect(0, 0), "b": rect(20, 0), "c": rect(40, 0)}
	pre := snapshot.CaptureAll(src, []string{"a", "b", "c"})
	src["a"], src["c"] = rect(40, 0), rect(0, 0)
	a := newTestAnimator(src)

	started := a.Play(pre, []string{"a", "b", "c"})

	assert.ElementsMatch(t, []string{"a", "c"}, started)
	assert.Equal(t, Settled, a.Phase("b"), "unchanged geometry starts no transition")
	assert.True(t, a.Offset("b").IsZero())
}

func TestPlay_SkipsItemsMissingFromSnapshot(t *testing.T) {
	src := mapSource{"a": rect(0, 0)}
	pre := snapshot.CaptureAll(src, []string{"a"})
	src["a"] = rect(10, 0)
	src["new"] = rect(30, 0)
	a := newTestAnimator(src)

	started := a.Play(pre, []string{"a", "new"})

	assert.Equal(t, []string{"a"}, started)
	assert.Equal(t, Settled, a.Phase("new"))
}

func TestPlay_SkipsItemsWithoutGeometry(t *testing.T) {
	src := mapSource{"a": rect(0, 0), "b": rect(20, 0)}
	pre := snapshot.CaptureAll(src, []string{"a", "b"})
	delete(src, "b")
	src["a"] = rect(20, 0)
	a := newTestAnimator(src)

	started := a.Play(pre, []string{"a", "b"})

	assert.Equal(t, []string{"a"}, started)
}

func TestFrame_TwoPhaseProtocol(t *testing.T) {
	src := mapSource{"a": rect(0, 0)}
	pre := snapshot.CaptureAll(src, []string{"a"})
	src["a"] = rect(30, 0)
	a := newTestAnimator(src)
	a.Play(pre, []string{"a"})

	// First frame releases the inversion but nothing has moved yet.
	settled := a.Frame(t0.Add(16 * time.Millisecond))
	assert.Empty(t, settled)
	assert.Equal(t, Playing, a.Phase("a"))
	assert.Equal(t, geom.Offset{DX: -30}, a.Offset("a"))

	start := t0.Add(16 * time.Millisecond)

	settled = a.Frame(start.Add(150 * time.Millisecond))
	assert.Empty(t, settled)
	assert.InDelta(t, -15, a.Offset("a").DX, 1e-9)

	settled = a.Frame(start.Add(300 * time.Millisecond))
	assert.Equal(t, []string{"a"}, settled)
	assert.Equal(t, Settled, a.Phase("a"))
	assert.True(t, a.Offset("a").IsZero())
	assert.False(t, a.Active())
}

func TestFrame_EasedOffsetShrinksMonotonically(t *testing.T) {
	src := mapSource{"a": rect(0, 40)}
	pre := snapshot.CaptureAll(src, []string{"a"})
	src["a"] = rect(0, 0)
	a := New(src, Options{Duration: 300 * time.Millisecond}, nil)
	a.Play(pre, []string{"a"})
	a.Frame(t0)

	prev := a.Offset("a").DY
	for ms := 16; ms < 300; ms += 16 {
		a.Frame(t0.Add(time.Duration(ms) * time.Millisecond))
		cur := a.Offset("a").DY
		assert.LessOrEqual(t, cur, prev)
		assert.GreaterOrEqual(t, cur, 0.0)
		prev = cur
	}
}

func TestFrame_ZeroDuration(t *testing.T) {
	src := mapSource{"a": rect(0, 0)}
	pre := snapshot.CaptureAll(src, []string{"a"})
	src["a"] = rect(5, 0)
	a := New(src, Options{Duration: 0}, nil)
	a.Play(pre, []string{"a"})

	a.Frame(t0)
	settled := a.Frame(t0)

	assert.Equal(t, []string{"a"}, settled)
}

func TestComplete_Idempotent(t *testing.T) {
	src := mapSource{"a": rect(0, 0)}
	pre := snapshot.CaptureAll(src, []string{"a"})
	src["a"] = rect(5, 0)
	a := newTestAnimator(src)
	a.Play(pre, []string{"a"})

	assert.True(t, a.Complete("a"))
	assert.False(t, a.Complete("a"))
	assert.False(t, a.Complete("never"))
	assert.True(t, a.Offset("a").IsZero())
	assert.Empty(t, a.Frame(t0.Add(time.Second)), "completed item does not settle again")
}

func TestSweep_SettlesStuckAnimations(t *testing.T) {
	src := mapSource{"a": rect(0, 0), "b": rect(20, 0)}
	pre := snapshot.CaptureAll(src, []string{"a", "b"})
	src["a"], src["b"] = rect(20, 0), rect(0, 0)
	a := newTestAnimator(src)
	a.Play(pre, []string{"a", "b"})
	a.Frame(t0)

	assert.Empty(t, a.Sweep(t0.Add(200*time.Millisecond)))

	settled := a.Sweep(t0.Add(a.SettleDeadline()))
	assert.Equal(t, []string{"a", "b"}, settled)
	assert.False(t, a.Active())
	assert.Empty(t, a.Sweep(t0.Add(time.Hour)))
}

func TestSweep_CountsFromPlayWhenFramesStop(t *testing.T) {
	src := mapSource{"a": rect(0, 0)}
	pre := snapshot.CaptureAll(src, []string{"a"})
	src["a"] = rect(30, 0)
	a := newTestAnimator(src)
	a.Play(pre, []string{"a"})
	a.Frame(t0.Add(16 * time.Millisecond)) // first frame arrives late, then none
	require.Equal(t, Playing, a.Phase("a"))

	settled := a.Sweep(t0.Add(a.SettleDeadline()))

	assert.Equal(t, []string{"a"}, settled)
	assert.False(t, a.Active())
	assert.True(t, a.Offset("a").IsZero())
}

func TestSweep_InvertedNeverPromoted(t *testing.T) {
	src := mapSource{"a": rect(0, 0)}
	pre := snapshot.CaptureAll(src, []string{"a"})
	src["a"] = rect(5, 0)
	a := newTestAnimator(src)
	a.Play(pre, []string{"a"})

	settled := a.Sweep(t0.Add(a.SettleDeadline()))

	assert.Equal(t, []string{"a"}, settled)
}

// visualSource reports layout geometry displaced by the animator's current
// offset, like a rendered slot mid-transition.
type visualSource struct {
	layout mapSource
	anim   *Animator
}

func (v *visualSource) GeometryOf(id string) (geom.Rect, bool) {
	r, ok := v.layout[id]
	if !ok {
		return r, false
	}
	dx, dy := v.anim.Offset(id).Round()
	return r.Translate(dx, dy), true
}

func TestPlay_InterruptedItemContinuesFromVisualPosition(t *testing.T) {
	layout := mapSource{"a": rect(0, 0), "b": rect(40, 0)}
	src := &visualSource{layout: layout}
	a := newTestAnimator(src)
	src.anim = a

	pre := snapshot.CaptureAll(src, []string{"a", "b"})
	layout["a"], layout["b"] = rect(40, 0), rect(0, 0)
	a.Play(pre, []string{"a", "b"})
	a.Frame(t0)
	a.Frame(t0.Add(150 * time.Millisecond)) // halfway: a drawn at 20

	// Second swap while a is mid-flight.
	pre = snapshot.CaptureAll(src, []string{"a", "b"})
	visualA, _ := pre.Get("a")
	require.Equal(t, 20, visualA.Left)
	layout["a"], layout["b"] = rect(0, 0), rect(40, 0)

	a.Play(pre, []string{"a", "b"})

	assert.Equal(t, Inverted, a.Phase("a"))
	assert.Equal(t, geom.Offset{DX: 20}, a.Offset("a"), "a starts where it was drawn")
}

func TestPlay_InterruptedItemAlreadyAtNewSlotSettles(t *testing.T) {
	layout := mapSource{"a": rect(0, 0), "b": rect(40, 0)}
	src := &visualSource{layout: layout}
	a := newTestAnimator(src)
	src.anim = a

	pre := snapshot.CaptureAll(src, []string{"a", "b"})
	layout["a"], layout["b"] = rect(40, 0), rect(0, 0)
	a.Play(pre, []string{"a", "b"})
	a.Frame(t0)
	a.Frame(t0.Add(150 * time.Millisecond)) // a drawn at 20

	pre = snapshot.CaptureAll(src, []string{"a", "b"})
	layout["a"] = rect(20, 0) // new slot is exactly where a is drawn

	a.Play(pre, []string{"a", "b"})

	assert.Equal(t, Settled, a.Phase("a"))
	assert.True(t, a.Offset("a").IsZero())
	drawn, _ := src.GeometryOf("a")
	assert.Equal(t, 20, drawn.Left, "a stays where it was drawn")
}

func TestCancelAll(t *testing.T) {
	src := mapSource{"a": rect(0, 0), "b": rect(20, 0)}
	pre := snapshot.CaptureAll(src, []string{"a", "b"})
	src["a"], src["b"] = rect(20, 0), rect(0, 0)
	a := newTestAnimator(src)
	a.Play(pre, []string{"a", "b"})

	cancelled := a.CancelAll()

	assert.Equal(t, []string{"a", "b"}, cancelled)
	assert.False(t, a.Active())
	assert.Empty(t, a.CancelAll())
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "settled", Settled.String())
	assert.Equal(t, "inverted", Inverted.String())
	assert.Equal(t, "playing", Playing.String())
}
