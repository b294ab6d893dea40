// Package visibility 把"元素是否进入视口"抽象为窄接口
//
// Bridge.Observe 返回一个 Observation 句柄，调用方只通过 Unobserve 释放它。
// 滚动显现系统只依赖 Bridge 接口，因此既可以接入几何实现（ViewportBridge），
// 也可以在测试中接入同步触发的 ManualBridge。
//
// 坐标约定：文档坐标（像素），原点在文档左上角，Y 轴向下。
package visibility

import "github.com/google/uuid"

// Rect is an axis-aligned rectangle in document pixels.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Area returns W*H, or 0 for degenerate rectangles.
func (r Rect) Area() float64 {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// Bounds lets a plain Rect act as a fixed Target.
func (r Rect) Bounds() Rect { return r }

// Expand grows the rectangle by margin on every side (negative shrinks it).
func (r Rect) Expand(margin float64) Rect {
	return Rect{X: r.X - margin, Y: r.Y - margin, W: r.W + 2*margin, H: r.H + 2*margin}
}

// Intersect returns the overlap of r and o and whether they overlap at all.
// Rectangles that only touch along an edge count as overlapping with zero area.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.Right(), o.Right())
	y1 := min(r.Bottom(), o.Bottom())
	if x1 < x0 || y1 < y0 {
		return Rect{}, false
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, true
}

// Edge tells where a target sits relative to the viewport.
type Edge int

const (
	// EdgeNone: the target overlaps the viewport vertically.
	EdgeNone Edge = iota
	// EdgeAbove: the target is (partly) above the top of the viewport.
	EdgeAbove
	// EdgeBelow: the target is (partly) below the bottom of the viewport.
	EdgeBelow
)

func (e Edge) String() string {
	switch e {
	case EdgeAbove:
		return "above"
	case EdgeBelow:
		return "below"
	default:
		return "none"
	}
}

// Event is delivered to a Handler whenever the target's visibility changes.
type Event struct {
	// Entering 为 true 表示可见比例达到阈值
	Entering bool
	// Ratio 目标面积中位于视口内的比例 [0, 1]
	Ratio float64
	// Edge 目标相对视口的位置，退出时用于决定偏移方向
	Edge Edge
}

// Options configures a single observation.
type Options struct {
	// Threshold 可见比例阈值 [0, 1]
	Threshold float64
	// RootMarginPx 视口外扩像素（负值为内缩）
	RootMarginPx float64
}

// Handler receives visibility events for one observation.
type Handler func(Event)

// Target is anything with a current position in document coordinates.
type Target interface {
	Bounds() Rect
}

// Observation is the handle returned by Bridge.Observe.
type Observation interface {
	// ID identifies the observation in logs.
	ID() uuid.UUID
	// Unobserve releases the observation. It is idempotent and the handler
	// never runs after it returns.
	Unobserve()
}

// Bridge wraps a viewport-intersection primitive.
type Bridge interface {
	Observe(target Target, opts Options, h Handler) Observation
}

// Classify computes the event a target would produce against root.
func Classify(target, root Rect, opts Options) Event {
	root = root.Expand(opts.RootMarginPx)

	ev := Event{Edge: edgeOf(target, root)}
	overlap, ok := root.Intersect(target)
	if !ok {
		return ev
	}

	if area := target.Area(); area > 0 {
		ev.Ratio = overlap.Area() / area
	} else {
		ev.Ratio = 1
	}

	if opts.Threshold <= 0 {
		ev.Entering = true
	} else {
		ev.Entering = ev.Ratio >= opts.Threshold
	}
	return ev
}

func edgeOf(target, root Rect) Edge {
	switch {
	case target.Y < root.Y:
		return EdgeAbove
	case target.Bottom() > root.Bottom():
		return EdgeBelow
	default:
		return EdgeNone
	}
}
