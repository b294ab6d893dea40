package render

import (
	"github.com/decker502/antigravity/pkg/components"
	"github.com/decker502/antigravity/pkg/visibility"
)

// Panel is an animated region positioned on screen.
type Panel struct {
	Label  string
	Bounds visibility.Rect // 屏幕像素（已减去滚动距离）
	Pose   components.Pose
}

// Placement applies the pose to the panel bounds: vertical offset, then
// scale about the panel center.
func (p Panel) Placement() visibility.Rect {
	scale := p.Pose.Scale
	if scale <= 0 {
		scale = 1
	}
	w := p.Bounds.W * scale
	h := p.Bounds.H * scale
	cx := p.Bounds.X + p.Bounds.W/2
	cy := p.Bounds.Y + p.Bounds.H/2 + p.Pose.TranslateY
	return visibility.Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Visible reports whether the panel would draw anything.
func (p Panel) Visible() bool {
	return p.Pose.Opacity > 0.003 && p.Bounds.Area() > 0
}
