// Package scenes 组装演示程序的场景
//
// Portfolio 是与前端无关的"文档"：一块全屏的粒子场首屏，下面是若干随滚动显现的区块。
// ebiten 窗口、tcell 终端和离线 PNG 渲染都驱动同一个 Portfolio，只是输入与绘制方式不同。
package scenes

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/rs/zerolog/log"

	"github.com/decker502/antigravity/pkg/components"
	"github.com/decker502/antigravity/pkg/config"
	"github.com/decker502/antigravity/pkg/ecs"
	"github.com/decker502/antigravity/pkg/frame"
	"github.com/decker502/antigravity/pkg/game"
	"github.com/decker502/antigravity/pkg/render"
	"github.com/decker502/antigravity/pkg/systems"
	"github.com/decker502/antigravity/pkg/utils"
	"github.com/decker502/antigravity/pkg/visibility"
)

// Section 首屏下方的一个内容区块
type Section struct {
	Label    string
	HeightPx float64
}

// DefaultSections 演示用的区块
var DefaultSections = []Section{
	{Label: "About", HeightPx: 320},
	{Label: "Projects", HeightPx: 520},
	{Label: "Experience", HeightPx: 440},
	{Label: "Writing", HeightPx: 300},
	{Label: "Contact", HeightPx: 260},
}

// 布局常量（像素）
const (
	sectionGapPx      = 120
	sectionMaxWidthPx = 880
	marginDesktopPx   = 64
	marginNarrowPx    = 24
	heroLabel         = "Antigravity"
)

// PortfolioOptions 创建 Portfolio 的参数
type PortfolioOptions struct {
	Config *config.MotionConfig // nil 时使用默认配置
	// Settings 用户偏好，可为 nil（不持久化）
	Settings *game.SettingsManager
	// Clock 指针空闲判断使用的墙钟，nil 时使用系统时间
	Clock frame.TimeSource
	// Rand 粒子场随机源，nil 时按配置取种
	Rand *rand.Rand
	// Sections 首屏下方的区块，nil 时使用 DefaultSections
	Sections []Section
	// SectionGapPx 区块间距，0 时使用默认值
	SectionGapPx float64
	// PrefersReducedMotion 宿主报告的系统偏好
	PrefersReducedMotion bool

	WidthPx, HeightPx int
}

// Portfolio 把帧调度器、指针追踪、粒子场、可见性桥、滚动显现和滚动渐隐连在一起
type Portfolio struct {
	cfg      config.MotionConfig
	settings *game.SettingsManager
	rng      *rand.Rand

	entityManager *ecs.EntityManager
	scheduler     *frame.Scheduler
	tracker       *systems.PointerTracker
	field         *systems.ParticleField
	bridge        *visibility.ViewportBridge
	reveal        *systems.RevealSystem
	fade          *systems.ScrollFadeSystem

	fieldSub *frame.Subscription
	subs     []*frame.Subscription

	env      systems.Environment
	policy   systems.RenderPolicy
	viewport utils.Viewport

	sections   []Section
	gapPx      float64
	hero       ecs.EntityID
	sectionIDs []ecs.EntityID

	scrollY   float64
	docHeight float64
	panels    []render.Panel
}

// NewPortfolio 创建并布局文档
func NewPortfolio(opts PortfolioOptions) *Portfolio {
	cfg := config.DefaultMotionConfig()
	if opts.Config != nil {
		cfg = opts.Config
	}
	clock := opts.Clock
	if clock == nil {
		clock = frame.NewSystemTime()
	}
	sections := opts.Sections
	if sections == nil {
		sections = DefaultSections
	}

	p := &Portfolio{
		cfg:           *cfg,
		settings:      opts.Settings,
		rng:           opts.Rand,
		entityManager: ecs.NewEntityManager(),
		scheduler:     frame.NewScheduler(),
		sections:      sections,
		gapPx:         opts.SectionGapPx,
		env: systems.Environment{
			ViewportWidthPx:      float64(opts.WidthPx),
			ViewportHeightPx:     float64(opts.HeightPx),
			PrefersReducedMotion: opts.PrefersReducedMotion,
		},
	}

	if p.gapPx <= 0 {
		p.gapPx = sectionGapPx
	}
	if p.settings != nil {
		s := p.settings.GetSettings()
		p.cfg.Field = s.Apply(p.cfg.Field)
		p.env.PrefersReducedMotion = p.env.PrefersReducedMotion || s.ReducedMotion
	}

	p.viewport = utils.DefaultViewport(p.env.ViewportWidthPx, p.env.ViewportHeightPx)
	p.tracker = systems.NewPointerTracker(p.cfg.Tracker, p.cfg.Field.AutoAnimate, clock)
	p.tracker.SetViewport(p.viewport)
	p.bridge = visibility.NewViewportBridge(p.viewportRect())
	p.reveal = systems.NewRevealSystem(p.entityManager, p.bridge, p.cfg.Reveal)
	p.fade = systems.NewScrollFadeSystem(p.entityManager)

	// 输入阶段：先更新目标点，再评估可见性；模拟阶段推进粒子；动画阶段推进样式
	p.subs = append(p.subs,
		p.scheduler.Register("pointer", frame.PhaseInput, p.tracker),
		p.scheduler.Register("visibility", frame.PhaseInput, p.bridge),
		p.scheduler.Register("reveal", frame.PhaseAnimate, p.reveal),
		p.scheduler.Register("scroll-fade", frame.PhaseAnimate, p.fade),
	)
	p.buildField()
	p.applyPolicy()
	p.mount()

	log.Info().Str("component", "Portfolio").Int("particles", p.field.Len()).
		Int("sections", len(p.sectionIDs)).Float64("width", p.env.ViewportWidthPx).
		Float64("height", p.env.ViewportHeightPx).Msg("portfolio ready")
	return p
}

func (p *Portfolio) buildField() {
	if p.fieldSub != nil {
		p.fieldSub.Cancel()
	}
	p.field = systems.NewParticleField(p.cfg.Field, p.viewport, p.rng)
	p.field.Follow(p.tracker)
	p.field.SetRenderPolicy(p.policy)
	p.fieldSub = p.scheduler.Register("particle-field", frame.PhaseSimulate, p.field)
}

// mount 创建首屏与区块实体
func (p *Portfolio) mount() {
	em := p.entityManager

	p.hero = em.CreateEntity()
	ecs.AddComponent(em, p.hero, &components.RegionComponent{Label: heroLabel})
	p.fade.Attach(p.hero, p.cfg.ScrollFade)

	policy := p.reveal.DefaultPolicy()
	p.sectionIDs = p.sectionIDs[:0]
	for _, s := range p.sections {
		id := p.reveal.Mount(components.RegionComponent{Label: s.Label}, policy)
		p.sectionIDs = append(p.sectionIDs, id)
	}
	p.layout()
	// 挂载后立即评估一次，首屏内的区块无需等待下一帧
	p.bridge.Evaluate()
}

// layout 根据视口重新计算区块位置（文档坐标，Y 向下）
func (p *Portfolio) layout() {
	w, h := p.env.ViewportWidthPx, p.env.ViewportHeightPx

	if hero, ok := ecs.GetComponent[*components.RegionComponent](p.entityManager, p.hero); ok {
		hero.Bounds = visibility.Rect{X: 0, Y: 0, W: w, H: h}
	}

	margin := float64(marginDesktopPx)
	if p.policy.Narrow {
		margin = marginNarrowPx
	}
	width := math.Max(math.Min(w-2*margin, sectionMaxWidthPx), 0)
	x := (w - width) / 2
	y := h + p.gapPx/2

	for i, id := range p.sectionIDs {
		region, ok := ecs.GetComponent[*components.RegionComponent](p.entityManager, id)
		if !ok {
			continue
		}
		region.Bounds = visibility.Rect{X: x, Y: y, W: width, H: p.sections[i].HeightPx}
		y += p.sections[i].HeightPx + p.gapPx
	}
	p.docHeight = y
	p.scrollTo(p.scrollY)
}

func (p *Portfolio) viewportRect() visibility.Rect {
	return visibility.Rect{X: 0, Y: p.scrollY, W: p.env.ViewportWidthPx, H: p.env.ViewportHeightPx}
}

func (p *Portfolio) applyPolicy() {
	p.policy = systems.DetectRenderPolicy(p.env, p.cfg.Policy)
	p.field.SetRenderPolicy(p.policy)
	p.reveal.SetRenderPolicy(p.policy)
	p.fade.SetRenderPolicy(p.policy)
}

// Tick 推进一帧
//
// 参数：
//   - timestampMs: 宿主时间戳（毫秒），各前端使用同一时间基准
func (p *Portfolio) Tick(timestampMs float64) frame.Sample {
	s := p.scheduler.Tick(timestampMs)
	p.entityManager.RemoveMarkedEntities()
	return s
}

// SetPointerPixels 报告指针位置（视口像素）；present 为 false 表示指针不存在
func (p *Portfolio) SetPointerPixels(x, y float64, present bool) {
	if !present || p.viewport.IsEmpty() {
		p.tracker.ClearPointer()
		return
	}
	p.tracker.SetPointer(p.viewport.PixelToNDC(x, y))
}

// Scroll 按增量滚动文档（像素，向下为正）
func (p *Portfolio) Scroll(dy float64) {
	p.scrollTo(p.scrollY + dy)
}

func (p *Portfolio) scrollTo(y float64) {
	p.scrollY = utils.Clamp(y, 0, p.MaxScroll())
	p.bridge.SetViewport(p.viewportRect())
	p.fade.SetScroll(p.scrollY)
}

// MaxScroll 返回可滚动的最大距离
func (p *Portfolio) MaxScroll() float64 {
	return math.Max(p.docHeight-p.env.ViewportHeightPx, 0)
}

// ScrollY 返回当前滚动距离
func (p *Portfolio) ScrollY() float64 {
	return p.scrollY
}

// Resize 视口尺寸变化：重新布局、重新取种粒子 home、重新检测渲染策略
func (p *Portfolio) Resize(widthPx, heightPx int) {
	w, h := float64(widthPx), float64(heightPx)
	if w == p.env.ViewportWidthPx && h == p.env.ViewportHeightPx {
		return
	}
	p.env.ViewportWidthPx, p.env.ViewportHeightPx = w, h
	p.viewport = utils.DefaultViewport(w, h)
	p.tracker.SetViewport(p.viewport)
	p.field.Reset(p.viewport)
	p.applyPolicy()
	p.layout()

	log.Debug().Str("component", "Portfolio").Int("width", widthPx).Int("height", heightPx).
		Bool("narrow", p.policy.Narrow).Msg("resized")
}

// SetReducedMotion 切换"减少动态效果"并持久化
func (p *Portfolio) SetReducedMotion(enabled bool) {
	p.env.PrefersReducedMotion = enabled
	p.applyPolicy()
	if p.settings != nil {
		p.settings.SetReducedMotion(enabled)
		p.save()
	}
}

// ToggleReducedMotion 在开与关之间切换
func (p *Portfolio) ToggleReducedMotion() {
	p.SetReducedMotion(!p.env.PrefersReducedMotion)
}

// CycleShape 切换到下一种粒子形状并持久化
func (p *Portfolio) CycleShape() config.ShapeKind {
	next := p.field.Config().Shape.Next()
	p.cfg.Field.Shape = next
	p.field.SetShape(next)
	if p.settings != nil {
		p.settings.SetShape(next)
		p.save()
	}
	return next
}

// ToggleAutoAnimate 切换自动轨迹并持久化
func (p *Portfolio) ToggleAutoAnimate() bool {
	enabled := !p.tracker.AutoAnimate()
	p.tracker.SetAutoAnimate(enabled)
	p.cfg.Field.AutoAnimate = enabled
	if p.settings != nil {
		p.settings.SetAutoAnimate(enabled)
		p.save()
	}
	return enabled
}

// SetParticleCount 以新的粒子数量重建粒子场并持久化
func (p *Portfolio) SetParticleCount(n int) {
	n = max(0, min(n, config.MaxParticleCount))
	if n == p.field.Len() {
		return
	}
	p.cfg.Field.Count = n
	p.buildField()
	if p.settings != nil {
		p.settings.SetParticleCount(n)
		p.save()
	}
}

func (p *Portfolio) save() {
	if err := p.settings.Save(); err != nil {
		log.Warn().Str("component", "Portfolio").Err(err).Msg("failed to save settings")
	}
}

// SaveOnExit 保存设置；没有设置管理器时无需保存
func (p *Portfolio) SaveOnExit() bool {
	if p.settings == nil {
		return true
	}
	if err := p.settings.Save(); err != nil {
		log.Warn().Str("component", "Portfolio").Err(err).Msg("failed to save settings on exit")
		return false
	}
	return true
}

// Close 释放所有观察并取消订阅；重复调用是安全的
func (p *Portfolio) Close() {
	p.reveal.UnmountAll()
	for _, sub := range p.subs {
		sub.Cancel()
	}
	if p.fieldSub != nil {
		p.fieldSub.Cancel()
	}
	p.entityManager.RemoveMarkedEntities()
}

// Panels 返回当前帧的面板（屏幕坐标）
func (p *Portfolio) Panels() []render.Panel {
	p.panels = systems.CollectPanels(p.entityManager, p.scrollY, p.panels)
	return p.panels
}

// Transforms 返回粒子场最近一帧的变换
func (p *Portfolio) Transforms() []components.Transform {
	return p.field.Transforms()
}

// Field 返回当前粒子场（粒子数量变化后实例会被替换）
func (p *Portfolio) Field() *systems.ParticleField {
	return p.field
}

// Viewport 返回当前视口
func (p *Portfolio) Viewport() utils.Viewport {
	return p.viewport
}

// Shape 返回当前粒子形状
func (p *Portfolio) Shape() config.ShapeKind {
	return p.field.Config().Shape
}

// RenderPolicy 返回当前渲染策略
func (p *Portfolio) RenderPolicy() systems.RenderPolicy {
	return p.policy
}

// Tracker 返回指针追踪器
func (p *Portfolio) Tracker() *systems.PointerTracker {
	return p.tracker
}

// Reveal 返回滚动显现系统
func (p *Portfolio) Reveal() *systems.RevealSystem {
	return p.reveal
}

// Bridge 返回可见性桥
func (p *Portfolio) Bridge() *visibility.ViewportBridge {
	return p.bridge
}

// EntityManager 返回实体管理器
func (p *Portfolio) EntityManager() *ecs.EntityManager {
	return p.entityManager
}

// Hero 返回首屏实体
func (p *Portfolio) Hero() ecs.EntityID {
	return p.hero
}

// Sections 返回区块实体，顺序与 Section 列表一致
func (p *Portfolio) Sections() []ecs.EntityID {
	return p.sectionIDs
}

// Status 返回一行状态文本
func (p *Portfolio) Status() string {
	return fmt.Sprintf("shape=%s particles=%d reduced=%v auto=%v scroll=%.0f/%.0f",
		p.Shape(), p.field.Len(), p.policy.ReducedMotion, p.tracker.AutoAnimate(), p.scrollY, p.MaxScroll())
}

// HeroPose 返回首屏当前的滚动渐隐姿态
func (p *Portfolio) HeroPose() components.Pose {
	pose, ok := p.fade.Style(p.hero)
	if !ok {
		return components.RestPose()
	}
	return pose
}
