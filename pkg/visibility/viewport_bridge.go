package visibility

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/decker502/antigravity/pkg/frame"
)

// ViewportBridge evaluates observations geometrically against a scrolling
// viewport. It is driven by the frame scheduler (PhaseInput) and fires a
// handler on the first evaluation and whenever Entering flips.
type ViewportBridge struct {
	root  Rect
	live  []*viewportObservation
	stats counters
}

type counters struct {
	observed   int
	unobserved int
}

type viewportObservation struct {
	id        uuid.UUID
	target    Target
	opts      Options
	handler   Handler
	bridge    *ViewportBridge
	evaluated bool
	entering  bool
	released  bool
}

// NewViewportBridge creates a bridge over the given viewport rectangle.
func NewViewportBridge(root Rect) *ViewportBridge {
	return &ViewportBridge{root: root}
}

// SetViewport moves or resizes the viewport. Changes are picked up on the
// next Evaluate.
func (b *ViewportBridge) SetViewport(root Rect) {
	b.root = root
}

// Viewport returns the current viewport rectangle.
func (b *ViewportBridge) Viewport() Rect {
	return b.root
}

// Observe starts watching target.
func (b *ViewportBridge) Observe(target Target, opts Options, h Handler) Observation {
	o := &viewportObservation{
		id:      uuid.New(),
		target:  target,
		opts:    opts,
		handler: h,
		bridge:  b,
	}
	b.live = append(b.live, o)
	b.stats.observed++

	log.Debug().Str("component", "ViewportBridge").Stringer("observation", o.id).Msg("observe")
	return o
}

// Advance implements frame.Advancer.
func (b *ViewportBridge) Advance(frame.Sample) {
	b.Evaluate()
}

// Evaluate recomputes every live observation. Handlers may observe or
// unobserve freely; observations added during evaluation wait for the next call.
func (b *ViewportBridge) Evaluate() {
	if len(b.live) == 0 {
		return
	}
	snapshot := make([]*viewportObservation, len(b.live))
	copy(snapshot, b.live)

	for _, o := range snapshot {
		if o.released {
			continue
		}
		ev := Classify(o.target.Bounds(), b.root, o.opts)
		if o.evaluated && ev.Entering == o.entering {
			continue
		}
		o.evaluated = true
		o.entering = ev.Entering
		o.handler(ev)
	}
}

// Live returns the number of observations not yet released.
func (b *ViewportBridge) Live() int {
	return len(b.live)
}

// Observed returns how many times Observe has been called.
func (b *ViewportBridge) Observed() int {
	return b.stats.observed
}

// Unobserved returns how many observations have been released.
func (b *ViewportBridge) Unobserved() int {
	return b.stats.unobserved
}

func (b *ViewportBridge) release(o *viewportObservation) {
	for i, cur := range b.live {
		if cur == o {
			copy(b.live[i:], b.live[i+1:])
			b.live[len(b.live)-1] = nil
			b.live = b.live[:len(b.live)-1]
			break
		}
	}
	b.stats.unobserved++
	log.Debug().Str("component", "ViewportBridge").Stringer("observation", o.id).Msg("unobserve")
}

func (o *viewportObservation) ID() uuid.UUID {
	return o.id
}

func (o *viewportObservation) Unobserve() {
	if o.released {
		return
	}
	o.released = true
	o.bridge.release(o)
}
