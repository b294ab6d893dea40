package frame

import "time"

// TimeSource reports wall-clock milliseconds.
// Consumers that need "real" time independent of frame pacing (the idle
// timeout of the pointer tracker) read it instead of the frame Sample.
type TimeSource interface {
	NowMs() float64
}

// SystemTime is a monotonic wall clock measured from its creation.
type SystemTime struct {
	start time.Time
}

// NewSystemTime creates a wall clock whose zero is now.
func NewSystemTime() *SystemTime {
	return &SystemTime{start: time.Now()}
}

// NowMs returns milliseconds since the clock was created.
func (t *SystemTime) NowMs() float64 {
	return float64(time.Since(t.start)) / float64(time.Millisecond)
}

// ManualTime is a TimeSource advanced explicitly, for tests and offline rendering.
type ManualTime struct {
	ms float64
}

// NewManualTime creates a manual clock starting at startMs.
func NewManualTime(startMs float64) *ManualTime {
	return &ManualTime{ms: startMs}
}

// NowMs returns the current manual time.
func (t *ManualTime) NowMs() float64 {
	return t.ms
}

// Set jumps to an absolute time.
func (t *ManualTime) Set(ms float64) {
	t.ms = ms
}

// Advance moves the clock forward by ms.
func (t *ManualTime) Advance(ms float64) {
	t.ms += ms
}
