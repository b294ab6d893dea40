package frame

import (
	"sort"

	"github.com/rs/zerolog/log"
)

// Phase orders subscribers within a tick. Lower phases run first.
type Phase int

const (
	// PhaseInput runs input samplers: pointer tracker, visibility evaluation.
	PhaseInput Phase = iota
	// PhaseSimulate runs simulations that read input state: the particle field.
	PhaseSimulate
	// PhaseAnimate runs per-element animation: reveals, scroll fades.
	PhaseAnimate
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhaseSimulate:
		return "simulate"
	case PhaseAnimate:
		return "animate"
	default:
		return "unknown"
	}
}

// Advancer is anything driven once per frame.
type Advancer interface {
	Advance(s Sample)
}

// AdvancerFunc adapts a plain function to Advancer.
type AdvancerFunc func(s Sample)

// Advance calls f(s).
func (f AdvancerFunc) Advance(s Sample) {
	f(s)
}

// Subscription is the handle returned by Scheduler.Register.
type Subscription struct {
	name      string
	phase     Phase
	seq       uint64
	advancer  Advancer
	owner     *Scheduler
	cancelled bool
}

// Name returns the name given at registration.
func (sub *Subscription) Name() string {
	return sub.name
}

// Active reports whether the subscription still receives ticks.
func (sub *Subscription) Active() bool {
	return sub != nil && !sub.cancelled
}

// Cancel stops further Advance calls. Calling it more than once, or on a nil
// subscription, is a no-op. Cancelling from inside a tick takes effect
// immediately: the subscriber is skipped for the rest of that tick.
func (sub *Subscription) Cancel() {
	if sub == nil || sub.cancelled {
		return
	}
	sub.cancelled = true
	sub.owner.dirty = true
	log.Debug().Str("component", "Scheduler").Str("subscriber", sub.name).Msg("subscriber cancelled")
}

// Scheduler owns the per-frame driver: one Clock plus an ordered list of
// subscribers. Each page context (or test) creates its own.
type Scheduler struct {
	clock   *Clock
	subs    []*Subscription
	pending []*Subscription
	nextSeq uint64
	ticking bool
	dirty   bool
	last    Sample
}

// NewScheduler creates a scheduler with a fresh clock and no subscribers.
func NewScheduler() *Scheduler {
	return &Scheduler{
		clock: NewClock(),
		subs:  make([]*Subscription, 0, 8),
	}
}

// Register adds an Advancer to the given phase. Within a phase subscribers
// run in registration order. Registering from inside a tick defers the
// subscriber to the next tick.
func (s *Scheduler) Register(name string, phase Phase, a Advancer) *Subscription {
	sub := &Subscription{
		name:     name,
		phase:    phase,
		seq:      s.nextSeq,
		advancer: a,
		owner:    s,
	}
	s.nextSeq++

	if s.ticking {
		s.pending = append(s.pending, sub)
	} else {
		s.insert(sub)
	}

	log.Debug().Str("component", "Scheduler").Str("subscriber", name).Stringer("phase", phase).Msg("subscriber registered")
	return sub
}

func (s *Scheduler) insert(sub *Subscription) {
	s.subs = append(s.subs, sub)
	sort.SliceStable(s.subs, func(i, j int) bool {
		if s.subs[i].phase != s.subs[j].phase {
			return s.subs[i].phase < s.subs[j].phase
		}
		return s.subs[i].seq < s.subs[j].seq
	})
}

// Tick advances the clock to timestampMs and runs every active subscriber
// in phase order. It returns the Sample that was distributed.
func (s *Scheduler) Tick(timestampMs float64) Sample {
	sample := s.clock.Tick(timestampMs)
	s.last = sample

	s.ticking = true
	for _, sub := range s.subs {
		if sub.cancelled {
			continue
		}
		sub.advancer.Advance(sample)
	}
	s.ticking = false

	if s.dirty {
		s.compact()
	}
	if len(s.pending) > 0 {
		for _, sub := range s.pending {
			if !sub.cancelled {
				s.insert(sub)
			}
		}
		s.pending = s.pending[:0]
	}

	return sample
}

func (s *Scheduler) compact() {
	kept := s.subs[:0]
	for _, sub := range s.subs {
		if !sub.cancelled {
			kept = append(kept, sub)
		}
	}
	for i := len(kept); i < len(s.subs); i++ {
		s.subs[i] = nil
	}
	s.subs = kept
	s.dirty = false
}

// Len returns the number of active subscribers, including ones registered
// during the current tick.
func (s *Scheduler) Len() int {
	n := 0
	for _, sub := range s.subs {
		if !sub.cancelled {
			n++
		}
	}
	for _, sub := range s.pending {
		if !sub.cancelled {
			n++
		}
	}
	return n
}

// Last returns the most recent Sample.
func (s *Scheduler) Last() Sample {
	return s.last
}

// Clock exposes the underlying clock.
func (s *Scheduler) Clock() *Clock {
	return s.clock
}
