package visibility

import "github.com/google/uuid"

// ManualBridge is a synchronous Bridge whose events are fired by hand.
// Tests and headless tools use it in place of a real viewport.
type ManualBridge struct {
	all   map[uuid.UUID]*manualObservation
	live  []*manualObservation
	stats counters
}

type manualObservation struct {
	id       uuid.UUID
	target   Target
	opts     Options
	handler  Handler
	bridge   *ManualBridge
	released bool
}

// NewManualBridge creates an empty bridge.
func NewManualBridge() *ManualBridge {
	return &ManualBridge{all: make(map[uuid.UUID]*manualObservation)}
}

// Observe records the observation; nothing fires until Fire is called.
func (b *ManualBridge) Observe(target Target, opts Options, h Handler) Observation {
	o := &manualObservation{
		id:      uuid.New(),
		target:  target,
		opts:    opts,
		handler: h,
		bridge:  b,
	}
	b.all[o.id] = o
	b.live = append(b.live, o)
	b.stats.observed++
	return o
}

// Fire delivers ev to a live observation. It returns false if the
// observation is unknown or already released.
func (b *ManualBridge) Fire(id uuid.UUID, ev Event) bool {
	o, ok := b.all[id]
	if !ok || o.released {
		return false
	}
	o.handler(ev)
	return true
}

// FireAll delivers ev to every live observation in creation order.
func (b *ManualBridge) FireAll(ev Event) {
	snapshot := make([]*manualObservation, len(b.live))
	copy(snapshot, b.live)
	for _, o := range snapshot {
		if !o.released {
			o.handler(ev)
		}
	}
}

// FireLate invokes the handler of an observation even if it has been
// released, the way a platform callback queued before Unobserve would.
func (b *ManualBridge) FireLate(id uuid.UUID, ev Event) bool {
	o, ok := b.all[id]
	if !ok {
		return false
	}
	o.handler(ev)
	return true
}

// Options returns the options an observation was created with.
func (b *ManualBridge) Options(id uuid.UUID) (Options, bool) {
	o, ok := b.all[id]
	if !ok {
		return Options{}, false
	}
	return o.opts, true
}

// IDs returns the live observation IDs in creation order.
func (b *ManualBridge) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(b.live))
	for _, o := range b.live {
		ids = append(ids, o.id)
	}
	return ids
}

// Live returns the number of unreleased observations.
func (b *ManualBridge) Live() int { return len(b.live) }

// Observed returns how many times Observe has been called.
func (b *ManualBridge) Observed() int { return b.stats.observed }

// Unobserved returns how many observations have been released.
func (b *ManualBridge) Unobserved() int { return b.stats.unobserved }

func (o *manualObservation) ID() uuid.UUID { return o.id }

func (o *manualObservation) Unobserve() {
	if o.released {
		return
	}
	o.released = true
	b := o.bridge
	for i, cur := range b.live {
		if cur == o {
			b.live = append(b.live[:i], b.live[i+1:]...)
			break
		}
	}
	b.stats.unobserved++
}
