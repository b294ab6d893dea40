package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/antigravity/pkg/render"
)

// maxBatchVertices keeps a batch addressable with uint16 indices.
const maxBatchVertices = math.MaxUint16

// newWhiteSubImage returns a 1x1 white source image; the 1px border keeps
// linear filtering from sampling outside it.
func newWhiteSubImage() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// FieldRenderSystem 用 ebiten 批量绘制粒子场
//
// 每个粒子的轮廓以扇形三角化写入共享顶点缓冲，
// 缓冲接近 uint16 索引上限时提前提交一次 DrawTriangles。
type FieldRenderSystem struct {
	field *ParticleField
	color colorful.Color

	white    *ebiten.Image
	sprites  []render.Sprite
	outline  []render.Point
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewFieldRenderSystem 创建粒子场渲染系统
func NewFieldRenderSystem(field *ParticleField) *FieldRenderSystem {
	c, err := field.Config().ParticleColor()
	if err != nil {
		c = colorful.Color{R: 1, G: 1, B: 1}
	}
	return &FieldRenderSystem{field: field, color: c}
}

// SetField 切换要绘制的粒子场（粒子数量变化后重建时使用）
func (s *FieldRenderSystem) SetField(field *ParticleField) {
	s.field = field
}

// Draw 绘制最近一次 Step 的结果
func (s *FieldRenderSystem) Draw(screen *ebiten.Image) {
	f := s.field
	s.sprites = render.ProjectAll(f.Transforms(), f.Viewport(), s.sprites)
	if len(s.sprites) == 0 {
		return
	}
	shape := f.Config().Shape

	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
	for _, sp := range s.sprites {
		s.outline = render.Outline(shape, sp, s.outline)
		if len(s.outline) < 3 {
			continue
		}
		if len(s.vertices)+len(s.outline) > maxBatchVertices {
			s.flush(screen)
		}

		r, g, b := float32(s.color.R), float32(s.color.G), float32(s.color.B)
		a := float32(sp.Alpha)
		base := uint16(len(s.vertices))
		for _, p := range s.outline {
			s.vertices = append(s.vertices, ebiten.Vertex{
				DstX: float32(p.X), DstY: float32(p.Y),
				SrcX: 1, SrcY: 1,
				ColorR: r, ColorG: g, ColorB: b, ColorA: a,
			})
		}
		// 扇形三角化（轮廓均为凸多边形）
		for i := 1; i+1 < len(s.outline); i++ {
			s.indices = append(s.indices, base, base+uint16(i), base+uint16(i+1))
		}
	}
	s.flush(screen)
}

func (s *FieldRenderSystem) flush(screen *ebiten.Image) {
	if len(s.indices) == 0 {
		return
	}
	if s.white == nil {
		s.white = newWhiteSubImage()
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	screen.DrawTriangles(s.vertices, s.indices, s.white, op)
	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
}
