// Package flip animates items from their previous screen position to their
// new one (First, Last, Invert, Play).
//
// After a layout change, Play compares a pre-change snapshot with the new
// geometry of each item. Every item that moved is put in the Inverted phase:
// it is drawn displaced by (old - new) so nothing visibly jumps. The next
// Frame starts the Playing phase, which eases the displacement to zero.
// When the transition ends the item is Settled and carries no offset.
package flip

import (
	"slices"
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/llehouerou/tiles/internal/geom"
	"github.com/llehouerou/tiles/internal/logging"
	"github.com/llehouerou/tiles/internal/snapshot"
)

// DefaultDuration is the transition length used when none is configured.
const DefaultDuration = 300 * time.Millisecond

// DefaultGrace is how long past its expected end an animation may linger
// before Sweep forces it settled.
const DefaultGrace = 100 * time.Millisecond

// Phase is the animation phase of a single item.
type Phase int

const (
	// Settled items are drawn at their laid-out position.
	Settled Phase = iota
	// Inverted items are drawn at their full previous-position offset,
	// with no transition running yet.
	Inverted
	// Playing items are easing their offset toward zero.
	Playing
)

func (p Phase) String() string {
	switch p {
	case Settled:
		return "settled"
	case Inverted:
		return "inverted"
	case Playing:
		return "playing"
	}
	return "unknown"
}

// Options configures the transition.
type Options struct {
	Duration time.Duration
	Easing   Easing
	// Grace is added to Duration before Sweep settles a stuck animation.
	// It covers the delay before the first frame and should exceed the
	// frame interval.
	Grace time.Duration
	// Now is the clock used to stamp new animations. Defaults to time.Now.
	Now func() time.Time
}

type animation struct {
	from  geom.Offset
	cur   geom.Offset
	phase Phase
	armed time.Time
	start time.Time
}

// Animator drives the per-item transitions. It is not safe for concurrent
// use; the UI event loop owns it.
type Animator struct {
	geo    snapshot.Source
	opts   Options
	anims  map[string]*animation
	logger *log.Logger
}

// New creates an animator reading post-layout geometry from geo.
func New(geo snapshot.Source, opts Options, logger *log.Logger) *Animator {
	if opts.Duration < 0 {
		opts.Duration = 0
	}
	if opts.Easing == nil {
		opts.Easing = EaseOut
	}
	if opts.Grace <= 0 {
		opts.Grace = DefaultGrace
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Animator{
		geo:    geo,
		opts:   opts,
		anims:  make(map[string]*animation),
		logger: logging.OrDiscard(logger),
	}
}

// Duration returns the configured transition length.
func (a *Animator) Duration() time.Duration {
	return a.opts.Duration
}

// SettleDeadline returns how long after Play every animation started by it
// is guaranteed to be settled by Sweep.
func (a *Animator) SettleDeadline() time.Duration {
	return a.opts.Duration + a.opts.Grace
}

// Play starts a transition for every id in ids that moved since pre was
// captured. Items missing from pre, items without geometry and items that
// did not move are skipped. It returns the ids put in the Inverted phase.
//
// An item that is still animating from an earlier Play has its current
// displacement removed from the geometry read, so the new transition is
// computed against its laid-out position.
func (a *Animator) Play(pre snapshot.Snapshot, ids []string) []string {
	now := a.opts.Now()
	var started []string
	for _, id := range ids {
		last, ok := a.geo.GeometryOf(id)
		if !ok {
			continue
		}
		first, ok := pre.Get(id)
		if !ok {
			continue
		}
		if an, ok := a.anims[id]; ok {
			dx, dy := an.cur.Round()
			last = last.Translate(-dx, -dy)
		}

		dx := first.Left - last.Left
		dy := first.Top - last.Top
		if dx == 0 && dy == 0 {
			// Already drawn at its new slot: drop the stale offset.
			a.Complete(id)
			continue
		}

		off := geom.Offset{DX: float64(dx), DY: float64(dy)}
		a.anims[id] = &animation{
			from:  off,
			cur:   off,
			phase: Inverted,
			armed: now,
		}
		started = append(started, id)
	}
	if len(started) > 0 {
		a.logger.Debug("flip play", "items", started)
	}
	return started
}

// Frame advances every animation to now. Inverted items start playing;
// playing items ease toward zero and settle when their time is up. It
// returns the ids that settled, sorted.
func (a *Animator) Frame(now time.Time) []string {
	var settled []string
	for id, an := range a.anims {
		switch an.phase {
		case Inverted:
			an.phase = Playing
			an.start = now
		case Playing:
			p := a.progress(an, now)
			if p >= 1 {
				settled = append(settled, id)
				continue
			}
			an.cur = an.from.Scale(1 - a.opts.Easing(p))
		}
	}
	for _, id := range settled {
		a.Complete(id)
	}
	sort.Strings(settled)
	return settled
}

// Sweep settles every animation whose deadline, counted from the Play that
// armed it, has passed. It is the fallback for missed frames, whatever
// phase the item was left in.
func (a *Animator) Sweep(now time.Time) []string {
	var settled []string
	for id, an := range a.anims {
		if !now.Before(an.armed.Add(a.SettleDeadline())) {
			settled = append(settled, id)
		}
	}
	for _, id := range settled {
		a.Complete(id)
	}
	sort.Strings(settled)
	return settled
}

func (a *Animator) progress(an *animation, now time.Time) float64 {
	if a.opts.Duration <= 0 {
		return 1
	}
	return float64(now.Sub(an.start)) / float64(a.opts.Duration)
}

// Complete clears all animation state for id. It is safe to call for ids
// that are not animating and to call more than once; it reports whether
// anything was cleared.
func (a *Animator) Complete(id string) bool {
	if _, ok := a.anims[id]; !ok {
		return false
	}
	delete(a.anims, id)
	return true
}

// CancelAll drops every in-flight animation, snapping items to their
// laid-out positions. It returns the ids that were animating, sorted.
func (a *Animator) CancelAll() []string {
	ids := a.IDs()
	clear(a.anims)
	return ids
}

// Offset returns the current displacement of id.
func (a *Animator) Offset(id string) geom.Offset {
	if an, ok := a.anims[id]; ok {
		return an.cur
	}
	return geom.Offset{}
}

// Phase returns the current phase of id.
func (a *Animator) Phase(id string) Phase {
	if an, ok := a.anims[id]; ok {
		return an.phase
	}
	return Settled
}

// Active reports whether any item is animating.
func (a *Animator) Active() bool {
	return len(a.anims) > 0
}

// IDs returns the animating ids, sorted.
func (a *Animator) IDs() []string {
	ids := make([]string, 0, len(a.anims))
	for id := range a.anims {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
