package scenes

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/decker502/antigravity/pkg/components"
	"github.com/decker502/antigravity/pkg/config"
	"github.com/decker502/antigravity/pkg/frame"
	"github.com/decker502/antigravity/pkg/game"
)

const tickMs = 1000.0 / 60

// portfolioHarness 驱动一个无窗口的 Portfolio
type portfolioHarness struct {
	t     *testing.T
	p     *Portfolio
	clock *frame.ManualTime
	ts    float64
}

func newHarness(t *testing.T, w, h int, settings *game.SettingsManager) *portfolioHarness {
	t.Helper()
	cfg := config.DefaultMotionConfig()
	cfg.Field.Count = 200

	clock := frame.NewManualTime(0)
	p := NewPortfolio(PortfolioOptions{
		Config:   cfg,
		Settings: settings,
		Clock:    clock,
		Rand:     rand.New(rand.NewPCG(3, 5)),
		WidthPx:  w,
		HeightPx: h,
	})
	t.Cleanup(p.Close)
	return &portfolioHarness{t: t, p: p, clock: clock}
}

func (h *portfolioHarness) run(frames int) {
	for i := 0; i < frames; i++ {
		h.p.Tick(h.ts)
		h.ts += tickMs
	}
}

func (h *portfolioHarness) state(i int) components.RevealState {
	h.t.Helper()
	st, ok := h.p.Reveal().State(h.p.Sections()[i])
	if !ok {
		h.t.Fatalf("section %d not mounted", i)
	}
	return st
}

func TestPortfolioSectionsStartPending(t *testing.T) {
	h := newHarness(t, 1280, 720, nil)
	h.run(120)

	for i := range h.p.Sections() {
		if st := h.state(i); st != components.RevealPending {
			t.Errorf("section %d state = %v, want Pending before scrolling", i, st)
		}
	}
	if got := len(h.p.Transforms()); got != 200 {
		t.Errorf("len(Transforms()) = %d, want 200", got)
	}
	if h.p.MaxScroll() <= 0 {
		t.Error("document should be scrollable")
	}
}

func TestPortfolioScrollRevealsSection(t *testing.T) {
	h := newHarness(t, 1280, 720, nil)
	h.run(1)

	h.p.Scroll(400)
	h.run(1)
	if st := h.state(0); st != components.RevealIn {
		t.Fatalf("first section state = %v, want In after scrolling into view", st)
	}
	if st := h.state(1); st != components.RevealPending {
		t.Errorf("second section state = %v, want Pending", st)
	}

	h.run(300)
	pose, _ := h.p.Reveal().Style(h.p.Sections()[0])
	if math.Abs(pose.Opacity-1) > 1e-6 || math.Abs(pose.TranslateY) > 1e-6 {
		t.Errorf("revealed section pose = %+v, want rest", pose)
	}

	// once=true：滚回顶部后保持显现
	h.p.Scroll(-10000)
	h.run(60)
	if st := h.state(0); st != components.RevealIn {
		t.Errorf("state after scrolling away = %v, want In (once)", st)
	}
}

func TestPortfolioScrollClamps(t *testing.T) {
	h := newHarness(t, 1280, 720, nil)
	h.p.Scroll(-50)
	if h.p.ScrollY() != 0 {
		t.Errorf("ScrollY = %v, want 0", h.p.ScrollY())
	}
	h.p.Scroll(1e9)
	if h.p.ScrollY() != h.p.MaxScroll() {
		t.Errorf("ScrollY = %v, want MaxScroll %v", h.p.ScrollY(), h.p.MaxScroll())
	}
}

func TestPortfolioHeroFadesWithScroll(t *testing.T) {
	h := newHarness(t, 1280, 720, nil)
	h.run(10)
	if op := h.p.HeroPose().Opacity; math.Abs(op-1) > 1e-9 {
		t.Fatalf("hero opacity at top = %v, want 1", op)
	}

	h.p.Scroll(600)
	h.run(400)
	pose := h.p.HeroPose()
	if pose.Opacity > 0.01 {
		t.Errorf("hero opacity after scrolling past fade range = %v, want ~0", pose.Opacity)
	}
	if pose.TranslateY > -79 {
		t.Errorf("hero translateY = %v, want ~-80", pose.TranslateY)
	}

	// 面板：首屏 + 五个区块，屏幕坐标已减去滚动距离
	panels := h.p.Panels()
	if len(panels) != 1+len(DefaultSections) {
		t.Fatalf("len(Panels()) = %d", len(panels))
	}
	if panels[0].Label != heroLabel || panels[0].Bounds.Y != -600 {
		t.Errorf("hero panel = %+v", panels[0])
	}
}

func TestPortfolioReducedMotion(t *testing.T) {
	h := newHarness(t, 1280, 720, nil)
	h.run(5)

	h.p.ToggleReducedMotion()
	if !h.p.RenderPolicy().ReducedMotion {
		t.Fatal("reduced motion not applied")
	}
	for i, id := range h.p.Sections() {
		if st := h.state(i); st != components.RevealIn {
			t.Errorf("section %d state = %v, want In under reduced motion", i, st)
		}
		pose, _ := h.p.Reveal().Style(id)
		if pose != components.RestPose() {
			t.Errorf("section %d pose = %+v, want rest immediately", i, pose)
		}
	}

	// 粒子回到 home
	h.run(1)
	f := h.p.Field()
	for i := 0; i < f.Len(); i++ {
		if pt := f.Particle(i); pt.Current != pt.Home {
			t.Fatalf("particle %d at %+v, want home %+v", i, pt.Current, pt.Home)
		}
	}
}

func TestPortfolioNarrowLayout(t *testing.T) {
	h := newHarness(t, 1280, 720, nil)
	h.p.Resize(500, 800)

	if !h.p.RenderPolicy().Narrow {
		t.Fatal("500px viewport should be narrow")
	}
	panels := h.p.Panels()
	sec := panels[1]
	if sec.Bounds.W != 500-2*marginNarrowPx || sec.Bounds.X != marginNarrowPx {
		t.Errorf("narrow section bounds = %+v", sec.Bounds)
	}
	if vp := h.p.Viewport(); vp.WidthPx != 500 || vp.HeightPx != 800 {
		t.Errorf("viewport = %+v", vp)
	}
}

func TestPortfolioParticleCount(t *testing.T) {
	h := newHarness(t, 1280, 720, nil)
	h.run(2)
	old := h.p.Field()

	h.p.SetParticleCount(50)
	if h.p.Field() == old || h.p.Field().Len() != 50 {
		t.Fatalf("field not rebuilt: len = %d", h.p.Field().Len())
	}
	h.run(1)
	if got := len(h.p.Transforms()); got != 50 {
		t.Errorf("len(Transforms()) = %d, want 50", got)
	}

	// 旧粒子场的订阅已取消，不再被推进
	before := old.Transforms()[0]
	h.run(5)
	if old.Transforms()[0] != before {
		t.Error("replaced field should no longer advance")
	}

	h.p.SetParticleCount(-5)
	if h.p.Field().Len() != 0 {
		t.Errorf("negative count should clamp to 0, got %d", h.p.Field().Len())
	}
	h.run(1)
}

func TestPortfolioPersistsToggles(t *testing.T) {
	settings := game.NewSettingsManager(nil, config.DefaultFieldConfig())
	h := newHarness(t, 1280, 720, settings)
	if h.p.Field().Len() != 2000 {
		t.Fatalf("settings particle count not applied, len = %d", h.p.Field().Len())
	}

	shape := h.p.CycleShape()
	if shape != config.ShapeSphere || settings.GetSettings().Shape != config.ShapeSphere {
		t.Errorf("CycleShape() = %q, settings shape = %q", shape, settings.GetSettings().Shape)
	}
	if h.p.ToggleAutoAnimate() || settings.GetSettings().AutoAnimate {
		t.Error("auto animate should be off and persisted")
	}
	h.p.ToggleReducedMotion()
	if !settings.GetSettings().ReducedMotion {
		t.Error("reduced motion not persisted")
	}
	if !h.p.SaveOnExit() {
		t.Error("SaveOnExit() should succeed in degraded mode")
	}
}

func TestPortfolioPointerDrivesTarget(t *testing.T) {
	h := newHarness(t, 1280, 720, nil)
	h.p.SetPointerPixels(1280, 0, true)
	h.run(300)

	vp := h.p.Viewport()
	pt := h.p.Tracker().Point()
	if math.Abs(pt.X-vp.WorldWidth/2) > 0.01 || math.Abs(pt.Y-vp.WorldHeight/2) > 0.01 {
		t.Errorf("target = %+v, want top-right corner (%v, %v)", pt, vp.WorldWidth/2, vp.WorldHeight/2)
	}
}

func TestPortfolioCloseReleasesObservations(t *testing.T) {
	h := newHarness(t, 1280, 720, nil)
	if got := h.p.Bridge().Live(); got != len(DefaultSections) {
		t.Fatalf("Live() = %d, want %d", got, len(DefaultSections))
	}

	h.p.Close()
	h.p.Close()
	if h.p.Bridge().Live() != 0 {
		t.Errorf("Live() after Close = %d, want 0", h.p.Bridge().Live())
	}
	if h.p.Bridge().Unobserved() != len(DefaultSections) {
		t.Errorf("Unobserved() = %d, want exactly one per section", h.p.Bridge().Unobserved())
	}
}
