package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/antigravity/pkg/components"
	"github.com/decker502/antigravity/pkg/config"
	"github.com/decker502/antigravity/pkg/visibility"
)

func visibilityRect(x, y, w, h float64) visibility.Rect {
	return visibility.Rect{X: x, Y: y, W: w, H: h}
}

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestTerminalDrawsParticleAndStatus(t *testing.T) {
	screen := newSimScreen(t, 40, 21)
	term := NewTerminal(screen, colorful.Color{R: 1, G: 0.6, B: 1})
	vp := term.Viewport()

	trs := []components.Transform{{Scale: 1, Rotation: components.Vec3{X: 1.57}}}
	term.Draw(trs, vp, config.ShapeSphere, nil, "fps 60")

	// 原点投影到视口中心
	col, row := 20, 10
	r, _, _, _ := screen.GetContent(col, row)
	if r != '●' {
		t.Errorf("center cell = %q, want '●'", r)
	}

	status := ""
	for x := 0; x < 6; x++ {
		ch, _, _, _ := screen.GetContent(x, 20)
		status += string(ch)
	}
	if status != "fps 60" {
		t.Errorf("status line = %q", status)
	}
}

func TestTerminalDrawsPanelBorder(t *testing.T) {
	screen := newSimScreen(t, 40, 21)
	term := NewTerminal(screen, colorful.Color{R: 1})

	panel := Panel{Label: "about", Bounds: visibilityRect(4, 4, 20, 12), Pose: components.RestPose()}
	term.Draw(nil, term.Viewport(), config.ShapeCapsule, []Panel{panel}, "")

	if r, _, _, _ := screen.GetContent(4, 2); r != '┌' {
		t.Errorf("top-left corner = %q, want '┌'", r)
	}
	if r, _, _, _ := screen.GetContent(6, 3); r != 'a' {
		t.Errorf("label start = %q, want 'a'", r)
	}
}
