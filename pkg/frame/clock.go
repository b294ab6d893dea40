// Package frame 提供帧时钟与逐帧调度器
//
// 所有动画消费者（指针追踪、粒子场、滚动显现）都从同一个 Sample 读取时间增量，
// 由 DeltaScale 把任意刷新率（60~240Hz）折算为 60fps 参考帧的倍数。
package frame

// ReferenceFPS is the frame rate at which DeltaScale equals 1.
const ReferenceFPS = 60.0

// MaxDeltaScale caps a single frame's DeltaScale so a stalled tab or a
// debugger pause catches up over a few frames instead of jumping.
const MaxDeltaScale = 3.0

// Sample is the per-tick timing record handed to every Advancer.
// It is recreated on every tick and never retained by the clock.
type Sample struct {
	TimestampMs    float64 // host timestamp of this frame
	DeltaSeconds   float64 // raw elapsed time since the previous frame
	DeltaScale     float64 // DeltaSeconds normalized to ReferenceFPS, clamped to [0, MaxDeltaScale]
	ElapsedSeconds float64 // wall-clock seconds since the first tick
	Frame          uint64  // 1-based tick counter
}

// DeltaScaleFor converts an elapsed time in seconds to a delta scale.
//
// 公式：min(deltaSeconds * 60, 3)，负值视为 0
func DeltaScaleFor(deltaSeconds float64) float64 {
	scale := deltaSeconds * ReferenceFPS
	if scale < 0 {
		return 0
	}
	if scale > MaxDeltaScale {
		return MaxDeltaScale
	}
	return scale
}

// Clock turns host frame timestamps into Samples.
type Clock struct {
	started bool
	firstMs float64
	lastMs  float64
	frames  uint64
}

// NewClock creates a clock that has not ticked yet.
func NewClock() *Clock {
	return &Clock{}
}

// Tick records a new frame timestamp and returns its Sample.
//
// The first tick has no predecessor and is treated as one reference frame.
// A timestamp earlier than the previous one yields a zero delta.
func (c *Clock) Tick(timestampMs float64) Sample {
	var deltaSeconds float64
	if !c.started {
		c.started = true
		c.firstMs = timestampMs
		deltaSeconds = 1.0 / ReferenceFPS
	} else {
		deltaSeconds = (timestampMs - c.lastMs) / 1000.0
		if deltaSeconds < 0 {
			deltaSeconds = 0
		}
	}
	c.lastMs = timestampMs
	c.frames++

	return Sample{
		TimestampMs:    timestampMs,
		DeltaSeconds:   deltaSeconds,
		DeltaScale:     DeltaScaleFor(deltaSeconds),
		ElapsedSeconds: (timestampMs - c.firstMs) / 1000.0,
		Frame:          c.frames,
	}
}

// Frames returns the number of ticks seen so far.
func (c *Clock) Frames() uint64 {
	return c.frames
}

// Reset forgets all previous ticks; the next tick is treated as the first.
func (c *Clock) Reset() {
	*c = Clock{}
}
