package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/antigravity/pkg/ecs"
	"github.com/decker502/antigravity/pkg/render"
)

// RevealRenderSystem 绘制滚动显现与渐隐的面板
type RevealRenderSystem struct {
	entityManager *ecs.EntityManager
	panels        []render.Panel
}

// NewRevealRenderSystem 创建面板渲染系统
func NewRevealRenderSystem(em *ecs.EntityManager) *RevealRenderSystem {
	return &RevealRenderSystem{entityManager: em}
}

// Draw 按当前滚动距离绘制所有面板
func (s *RevealRenderSystem) Draw(screen *ebiten.Image, scrollY float64) {
	s.panels = CollectPanels(s.entityManager, scrollY, s.panels)

	for _, p := range s.panels {
		if !p.Visible() {
			continue
		}
		r := p.Placement()
		alpha := p.Pose.Opacity

		// 模糊近似：以递减透明度绘制几层外扩矩形
		for blur := p.Pose.BlurPx; blur >= 1; blur /= 2 {
			vector.DrawFilledRect(screen,
				float32(r.X-blur), float32(r.Y-blur), float32(r.W+2*blur), float32(r.H+2*blur),
				panelColor(0.04*alpha), true)
		}
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), panelColor(0.12*alpha), true)
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, panelColor(0.5*alpha), true)

		if alpha > 0.5 {
			ebitenutil.DebugPrintAt(screen, p.Label, int(r.X)+12, int(r.Y)+10)
		}
	}
}

func panelColor(alpha float64) color.Color {
	a := uint8(255 * min(max(alpha, 0), 1))
	return color.NRGBA{R: 0xf4, G: 0xf1, B: 0xff, A: a}
}
