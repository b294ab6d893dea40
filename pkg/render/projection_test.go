package render

import (
	"math"
	"testing"

	"github.com/decker502/antigravity/pkg/components"
	"github.com/decker502/antigravity/pkg/config"
	"github.com/decker502/antigravity/pkg/utils"
)

func TestProjectCenterAndPerspective(t *testing.T) {
	vp := utils.DefaultViewport(800, 600)

	s, ok := Project(components.Transform{Scale: 1, Rotation: components.Vec3{X: math.Pi / 2}}, vp)
	if !ok {
		t.Fatal("origin should be visible")
	}
	if s.X != 400 || s.Y != 300 {
		t.Errorf("origin projected to (%v, %v), want (400, 300)", s.X, s.Y)
	}
	if math.Abs(s.Aspect-1) > 1e-12 {
		t.Errorf("Aspect = %v, want 1 at rest", s.Aspect)
	}

	near, _ := Project(components.Transform{Position: components.Vec3{X: 5, Z: 10}, Scale: 1}, vp)
	far, _ := Project(components.Transform{Position: components.Vec3{X: 5, Z: -10}, Scale: 1}, vp)
	if near.X <= far.X || near.Radius <= far.Radius {
		t.Errorf("closer particles should appear larger and further from center: near=%+v far=%+v", near, far)
	}
	if near.Alpha <= far.Alpha {
		t.Errorf("closer particles should be brighter: %v <= %v", near.Alpha, far.Alpha)
	}

	// y 轴向上映射为屏幕向上
	up, _ := Project(components.Transform{Position: components.Vec3{Y: 3}, Scale: 1}, vp)
	if up.Y >= 300 {
		t.Errorf("positive world y should be above center, got %v", up.Y)
	}
}

func TestProjectRejects(t *testing.T) {
	vp := utils.DefaultViewport(800, 600)
	if _, ok := Project(components.Transform{Position: components.Vec3{Z: utils.DefaultCameraZ}}, vp); ok {
		t.Error("particle at the camera plane should be culled")
	}
	if _, ok := Project(components.Transform{}, utils.DefaultViewport(0, 0)); ok {
		t.Error("empty viewport should project nothing")
	}
}

func TestProjectAllSortsBackToFront(t *testing.T) {
	vp := utils.DefaultViewport(800, 600)
	trs := []components.Transform{
		{Position: components.Vec3{Z: 5}, Scale: 1},
		{Position: components.Vec3{Z: -8}, Scale: 1},
		{Position: components.Vec3{Z: 0}, Scale: 1},
		{Position: components.Vec3{Z: 60}, Scale: 1},
	}
	buf := make([]Sprite, 0, 8)
	out := ProjectAll(trs, vp, buf)
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3 (one behind the camera)", len(out))
	}
	for i := 1; i < len(out); i++ {
		if out[i-1].Depth > out[i].Depth {
			t.Fatalf("not sorted back to front: %+v", out)
		}
	}
	if &out[0] != &buf[:1][0] {
		t.Error("ProjectAll should reuse dst")
	}
}

func TestOutlineShapes(t *testing.T) {
	s := Sprite{X: 100, Y: 100, Radius: 10, Aspect: 1}
	tests := []struct {
		kind config.ShapeKind
		want int
	}{
		{config.ShapeSphere, circleSegments},
		{config.ShapeBox, 4},
		{config.ShapeTetrahedron, 3},
		{config.ShapeCapsule, circleSegments + 2},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			pts := Outline(tt.kind, s, nil)
			if len(pts) != tt.want {
				t.Fatalf("len = %d, want %d", len(pts), tt.want)
			}
			for _, p := range pts {
				if math.Hypot(p.X-s.X, p.Y-s.Y) > s.Radius*2 {
					t.Errorf("vertex %+v too far from center", p)
				}
			}
		})
	}
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		name  string
		kind  config.ShapeKind
		angle float64
		want  rune
	}{
		{"水平胶囊", config.ShapeCapsule, 0, '━'},
		{"竖直胶囊", config.ShapeCapsule, math.Pi / 2, '┃'},
		{"右下斜", config.ShapeCapsule, math.Pi / 4, '╲'},
		{"右上斜", config.ShapeCapsule, -math.Pi / 4, '╱'},
		{"球", config.ShapeSphere, 0, '●'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Glyph(tt.kind, Sprite{Radius: 2, Angle: tt.angle}, 1)
			if got != tt.want {
				t.Errorf("Glyph() = %q, want %q", got, tt.want)
			}
		})
	}
	if Glyph(config.ShapeBox, Sprite{Radius: 0.1}, 1) != '·' {
		t.Error("tiny sprites should collapse to a dot")
	}
}

func TestPanelPlacement(t *testing.T) {
	p := Panel{
		Bounds: visibilityRect(100, 200, 200, 100),
		Pose:   components.Pose{Opacity: 1, TranslateY: 40, Scale: 0.5},
	}
	r := p.Placement()
	if r.X != 150 || r.Y != 265 || r.W != 100 || r.H != 50 {
		t.Errorf("Placement() = %+v", r)
	}
	if (Panel{Bounds: p.Bounds}).Visible() {
		t.Error("zero opacity panel should not be visible")
	}
}
