package frame

import (
	"math"
	"testing"
)

func TestDeltaScaleFor(t *testing.T) {
	tests := []struct {
		name     string
		seconds  float64
		expected float64
	}{
		{"60Hz 参考帧", 1.0 / 60.0, 1.0},
		{"120Hz", 1.0 / 120.0, 0.5},
		{"240Hz", 1.0 / 240.0, 0.25},
		{"30Hz", 1.0 / 30.0, 2.0},
		{"后台标签页卡顿 5 秒", 5.0, 3.0},
		{"负值", -0.5, 0},
		{"零", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeltaScaleFor(tt.seconds)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("DeltaScaleFor(%v) = %v, 期望 %v", tt.seconds, got, tt.expected)
			}
		})
	}
}

func TestClockFirstTickIsReferenceFrame(t *testing.T) {
	c := NewClock()
	s := c.Tick(12345)

	if math.Abs(s.DeltaScale-1.0) > 1e-9 {
		t.Errorf("first tick DeltaScale = %v, want 1", s.DeltaScale)
	}
	if s.ElapsedSeconds != 0 {
		t.Errorf("first tick ElapsedSeconds = %v, want 0", s.ElapsedSeconds)
	}
	if s.Frame != 1 {
		t.Errorf("first tick Frame = %d, want 1", s.Frame)
	}
}

func TestClockClampsLongStall(t *testing.T) {
	c := NewClock()
	c.Tick(0)
	s := c.Tick(5000)

	if math.Abs(s.DeltaSeconds-5.0) > 1e-9 {
		t.Errorf("DeltaSeconds = %v, want 5", s.DeltaSeconds)
	}
	if s.DeltaScale != MaxDeltaScale {
		t.Errorf("DeltaScale = %v, want %v (not 300)", s.DeltaScale, MaxDeltaScale)
	}
}

func TestClockBackwardsTimestamp(t *testing.T) {
	c := NewClock()
	c.Tick(1000)
	s := c.Tick(900)

	if s.DeltaSeconds != 0 || s.DeltaScale != 0 {
		t.Errorf("backwards tick = %+v, want zero delta", s)
	}

	// 下一帧相对于回退后的时间戳计算
	s = c.Tick(900 + 1000.0/60.0)
	if math.Abs(s.DeltaScale-1.0) > 1e-9 {
		t.Errorf("DeltaScale after recovery = %v, want 1", s.DeltaScale)
	}
}

func TestClockElapsed(t *testing.T) {
	c := NewClock()
	c.Tick(500)
	c.Tick(1500)
	s := c.Tick(3500)

	if math.Abs(s.ElapsedSeconds-3.0) > 1e-9 {
		t.Errorf("ElapsedSeconds = %v, want 3", s.ElapsedSeconds)
	}
	if c.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", c.Frames())
	}

	c.Reset()
	if c.Frames() != 0 {
		t.Errorf("Frames() after Reset = %d, want 0", c.Frames())
	}
}

func TestManualTime(t *testing.T) {
	mt := NewManualTime(100)
	mt.Advance(50)
	if mt.NowMs() != 150 {
		t.Errorf("NowMs() = %v, want 150", mt.NowMs())
	}
	mt.Set(10)
	if mt.NowMs() != 10 {
		t.Errorf("NowMs() = %v, want 10", mt.NowMs())
	}
}
