package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"

	"github.com/decker502/antigravity/pkg/systems"
	"github.com/decker502/antigravity/pkg/utils"
)

// 输入参数
const (
	wheelStepPx   = 60
	keyScrollPx   = 120
	countStep     = 250
	hudLineHeight = 16
	hudMarginPx   = 8
)

var backgroundColor = color.RGBA{R: 0x0b, G: 0x0b, B: 0x12, A: 0xff}

// PortfolioScene 在 ebiten 窗口中展示 Portfolio
//
// 控制：
//
//	鼠标/触摸      - 移动目标点
//	滚轮/方向键    - 滚动文档
//	R              - 切换减少动态效果
//	S              - 切换粒子形状
//	A              - 切换自动轨迹
//	+ / -          - 增减粒子数量
//	H              - 显示/隐藏帮助
//	Escape         - 退出
type PortfolioScene struct {
	portfolio   *Portfolio
	fieldRender *systems.FieldRenderSystem
	panelRender *systems.RevealRenderSystem

	heroLayer *ebiten.Image
	showHelp  bool
}

// NewPortfolioScene 创建窗口场景
func NewPortfolioScene(p *Portfolio) *PortfolioScene {
	return &PortfolioScene{
		portfolio:   p,
		fieldRender: systems.NewFieldRenderSystem(p.Field()),
		panelRender: systems.NewRevealRenderSystem(p.EntityManager()),
		showHelp:    true,
	}
}

// Portfolio 返回场景驱动的文档
func (s *PortfolioScene) Portfolio() *Portfolio {
	return s.portfolio
}

// Update 处理输入并推进一帧
func (s *PortfolioScene) Update(timestampMs float64) error {
	p := s.portfolio
	vp := p.Viewport()

	ptr := utils.GetPointerState(int(vp.WidthPx), int(vp.HeightPx))
	p.SetPointerPixels(float64(ptr.X), float64(ptr.Y), ptr.Present)

	if dy := utils.GetWheelDelta(); dy != 0 {
		p.Scroll(dy * wheelStepPx)
	}
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		p.Scroll(keyScrollPx / 10)
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		p.Scroll(-keyScrollPx / 10)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		p.Scroll(vp.HeightPx * 0.9)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		p.Scroll(-vp.HeightPx * 0.9)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.ToggleReducedMotion()
		log.Info().Str("component", "PortfolioScene").Bool("reducedMotion", p.RenderPolicy().ReducedMotion).Msg("toggled reduced motion")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		shape := p.CycleShape()
		log.Info().Str("component", "PortfolioScene").Str("shape", string(shape)).Msg("shape changed")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		enabled := p.ToggleAutoAnimate()
		log.Info().Str("component", "PortfolioScene").Bool("autoAnimate", enabled).Msg("toggled auto animate")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		p.SetParticleCount(p.Field().Len() + countStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		p.SetParticleCount(p.Field().Len() - countStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		s.showHelp = !s.showHelp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	p.Tick(timestampMs)
	return nil
}

// Draw 绘制首屏粒子层、区块面板和 HUD
func (s *PortfolioScene) Draw(screen *ebiten.Image) {
	p := s.portfolio
	screen.Fill(backgroundColor)

	// 粒子场画在首屏图层上，随首屏一起滚动并渐隐
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if s.heroLayer == nil || s.heroLayer.Bounds().Dx() != w || s.heroLayer.Bounds().Dy() != h {
		if s.heroLayer != nil {
			s.heroLayer.Deallocate()
		}
		s.heroLayer = ebiten.NewImage(w, h)
	}
	s.heroLayer.Clear()
	s.fieldRender.SetField(p.Field())
	s.fieldRender.Draw(s.heroLayer)

	pose := p.HeroPose()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, pose.TranslateY-p.ScrollY())
	op.ColorScale.ScaleAlpha(float32(pose.Opacity))
	screen.DrawImage(s.heroLayer, op)

	s.panelRender.Draw(screen, p.ScrollY())

	y := h - hudLineHeight - hudMarginPx
	ebitenutil.DebugPrintAt(screen, p.Status(), hudMarginPx, y)
	if s.showHelp {
		ebitenutil.DebugPrintAt(screen, "wheel/arrows scroll  R reduced motion  S shape  A auto  +/- particles  H help  Esc quit",
			hudMarginPx, y-hudLineHeight)
	}
}

// Resize 实现 game.Resizable
func (s *PortfolioScene) Resize(widthPx, heightPx int) {
	s.portfolio.Resize(widthPx, heightPx)
}

// SaveOnExit 实现 game.Saveable
func (s *PortfolioScene) SaveOnExit() bool {
	return s.portfolio.SaveOnExit()
}
