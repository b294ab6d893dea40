package visibility

import (
	"math"
	"testing"

	"github.com/decker502/antigravity/pkg/frame"
)

func TestClassify(t *testing.T) {
	root := Rect{X: 0, Y: 1000, W: 800, H: 600}

	tests := []struct {
		name         string
		target       Rect
		opts         Options
		wantEntering bool
		wantRatio    float64
		wantEdge     Edge
	}{
		{"完全可见", Rect{X: 100, Y: 1100, W: 200, H: 100}, Options{Threshold: 0.1}, true, 1, EdgeNone},
		{"视口下方", Rect{X: 100, Y: 1700, W: 200, H: 100}, Options{Threshold: 0.1}, false, 0, EdgeBelow},
		{"视口上方", Rect{X: 100, Y: 500, W: 200, H: 100}, Options{Threshold: 0.1}, false, 0, EdgeAbove},
		{"底部露出一半", Rect{X: 0, Y: 1550, W: 100, H: 100}, Options{Threshold: 0.1}, true, 0.5, EdgeBelow},
		{"露出 5% 未达阈值", Rect{X: 0, Y: 1595, W: 100, H: 100}, Options{Threshold: 0.1}, false, 0.05, EdgeBelow},
		{"阈值 0 接触即进入", Rect{X: 0, Y: 1600, W: 100, H: 100}, Options{Threshold: 0}, true, 0, EdgeBelow},
		{"外扩边距", Rect{X: 0, Y: 1650, W: 100, H: 100}, Options{Threshold: 0.1, RootMarginPx: 100}, true, 0.5, EdgeBelow},
		{"内缩边距", Rect{X: 0, Y: 1550, W: 100, H: 100}, Options{Threshold: 0.1, RootMarginPx: -50}, false, 0, EdgeBelow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := Classify(tt.target, root, tt.opts)
			if ev.Entering != tt.wantEntering {
				t.Errorf("Entering = %v, want %v", ev.Entering, tt.wantEntering)
			}
			if math.Abs(ev.Ratio-tt.wantRatio) > 1e-9 {
				t.Errorf("Ratio = %v, want %v", ev.Ratio, tt.wantRatio)
			}
			if ev.Edge != tt.wantEdge {
				t.Errorf("Edge = %v, want %v", ev.Edge, tt.wantEdge)
			}
		})
	}
}

// TestViewportBridgeFiresOnCrossings 首次评估必定触发，之后只在进入/离开切换时触发
func TestViewportBridgeFiresOnCrossings(t *testing.T) {
	b := NewViewportBridge(Rect{W: 800, H: 600})
	target := Rect{X: 0, Y: 900, W: 100, H: 100}

	var events []Event
	b.Observe(target, Options{Threshold: 0.1}, func(ev Event) {
		events = append(events, ev)
	})

	b.Evaluate()
	if len(events) != 1 || events[0].Entering {
		t.Fatalf("first evaluation should report not entering, got %+v", events)
	}

	// 视口未变化，不应重复触发
	b.Evaluate()
	if len(events) != 1 {
		t.Fatalf("unchanged viewport fired again: %+v", events)
	}

	// 向下滚动，目标进入
	b.SetViewport(Rect{Y: 400, W: 800, H: 600})
	b.Evaluate()
	if len(events) != 2 || !events[1].Entering {
		t.Fatalf("scroll into view should fire entering, got %+v", events)
	}

	// 继续向下滚动，目标从上方离开
	b.SetViewport(Rect{Y: 1200, W: 800, H: 600})
	b.Evaluate()
	if len(events) != 3 || events[2].Entering || events[2].Edge != EdgeAbove {
		t.Fatalf("scroll past should fire exit above, got %+v", events)
	}
}

func TestViewportBridgeUnobserve(t *testing.T) {
	b := NewViewportBridge(Rect{W: 800, H: 600})
	calls := 0
	obs := b.Observe(Rect{W: 10, H: 10}, Options{}, func(Event) { calls++ })

	if b.Live() != 1 || b.Observed() != 1 {
		t.Fatalf("Live=%d Observed=%d, want 1/1", b.Live(), b.Observed())
	}

	obs.Unobserve()
	obs.Unobserve()

	if b.Live() != 0 {
		t.Errorf("Live() = %d after Unobserve, want 0", b.Live())
	}
	if b.Unobserved() != 1 {
		t.Errorf("Unobserved() = %d, want exactly 1", b.Unobserved())
	}

	b.Evaluate()
	if calls != 0 {
		t.Errorf("handler ran %d times after Unobserve", calls)
	}
}

// TestViewportBridgeUnobserveFromHandler 处理函数中释放其他观察不会导致其再被调用
func TestViewportBridgeUnobserveFromHandler(t *testing.T) {
	b := NewViewportBridge(Rect{W: 800, H: 600})

	var second Observation
	secondCalls := 0
	b.Observe(Rect{W: 10, H: 10}, Options{}, func(Event) {
		second.Unobserve()
	})
	second = b.Observe(Rect{W: 10, H: 10}, Options{}, func(Event) { secondCalls++ })

	b.Evaluate()
	if secondCalls != 0 {
		t.Errorf("released observation still fired %d times", secondCalls)
	}
	if b.Live() != 1 {
		t.Errorf("Live() = %d, want 1", b.Live())
	}
}

// TestViewportBridgeAsAdvancer 作为调度器订阅者时每帧评估
func TestViewportBridgeAsAdvancer(t *testing.T) {
	b := NewViewportBridge(Rect{W: 800, H: 600})
	s := frame.NewScheduler()
	s.Register("visibility", frame.PhaseInput, b)

	fired := 0
	b.Observe(Rect{W: 10, H: 10}, Options{Threshold: 0.1}, func(ev Event) {
		if ev.Entering {
			fired++
		}
	})

	s.Tick(0)
	s.Tick(16)
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
}

func TestObservationIDsAreUnique(t *testing.T) {
	b := NewViewportBridge(Rect{W: 800, H: 600})
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := b.Observe(Rect{}, Options{}, func(Event) {}).ID().String()
		if seen[id] {
			t.Fatalf("duplicate observation id %s", id)
		}
		seen[id] = true
	}
}

func TestManualBridge(t *testing.T) {
	b := NewManualBridge()

	var got []Event
	obs := b.Observe(Rect{W: 10, H: 10}, Options{Threshold: 0.25}, func(ev Event) { got = append(got, ev) })

	if opts, ok := b.Options(obs.ID()); !ok || opts.Threshold != 0.25 {
		t.Errorf("Options() = %+v, %v", opts, ok)
	}

	if !b.Fire(obs.ID(), Event{Entering: true, Ratio: 1}) {
		t.Fatal("Fire on live observation should succeed")
	}
	b.FireAll(Event{Entering: false, Edge: EdgeBelow})
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}

	obs.Unobserve()
	obs.Unobserve()
	if b.Fire(obs.ID(), Event{Entering: true}) {
		t.Error("Fire after Unobserve should report false")
	}
	b.FireAll(Event{Entering: true})
	if len(got) != 2 {
		t.Errorf("released observation received events: %+v", got)
	}
	if b.Observed() != 1 || b.Unobserved() != 1 || b.Live() != 0 {
		t.Errorf("counters Observed=%d Unobserved=%d Live=%d", b.Observed(), b.Unobserved(), b.Live())
	}

	// 模拟平台在释放前排队的回调
	if !b.FireLate(obs.ID(), Event{Entering: true}) {
		t.Error("FireLate should reach released observations")
	}
	if len(got) != 3 {
		t.Errorf("FireLate did not invoke handler")
	}
}
