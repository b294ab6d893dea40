package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/antigravity/pkg/components"
	"github.com/decker502/antigravity/pkg/config"
	"github.com/decker502/antigravity/pkg/utils"
)

// cellAspect is the height/width ratio of a terminal cell.
const cellAspect = 2.0

// Terminal draws the particle field with one glyph per cell.
//
// 一个字符单元按 1×2 个"像素"计算，使视口的宽高比接近真实屏幕。
type Terminal struct {
	screen   tcell.Screen
	particle colorful.Color
	sprites  []Sprite
}

// NewTerminal wraps an initialized screen.
func NewTerminal(screen tcell.Screen, particle colorful.Color) *Terminal {
	return &Terminal{screen: screen, particle: particle}
}

// Viewport returns the world viewport matching the current screen size.
// The bottom row is reserved for the status line.
func (t *Terminal) Viewport() utils.Viewport {
	w, h := t.screen.Size()
	return utils.DefaultViewport(float64(w), float64(max(h-1, 0))*cellAspect)
}

// CellToPixel converts a cell position to viewport pixels (cell center).
func CellToPixel(col, row int) (float64, float64) {
	return float64(col) + 0.5, (float64(row) + 0.5) * cellAspect
}

// Draw renders one frame and flushes it to the terminal.
func (t *Terminal) Draw(transforms []components.Transform, vp utils.Viewport, shape config.ShapeKind, panels []Panel, status string) {
	s := t.screen
	s.Clear()
	w, h := s.Size()
	rows := h - 1

	for _, p := range panels {
		if p.Visible() {
			t.drawPanel(p, w, rows)
		}
	}

	t.sprites = ProjectAll(transforms, vp, t.sprites)
	for _, sp := range t.sprites {
		col := int(sp.X)
		row := int(sp.Y / cellAspect)
		if col < 0 || row < 0 || col >= w || row >= rows {
			continue
		}
		c := colorful.Color{R: t.particle.R * sp.Alpha, G: t.particle.G * sp.Alpha, B: t.particle.B * sp.Alpha}
		style := tcell.StyleDefault.Foreground(toTcell(c))
		s.SetContent(col, row, Glyph(shape, sp, 1), nil, style)
	}

	statusStyle := tcell.StyleDefault.Reverse(true)
	for x := 0; x < w; x++ {
		s.SetContent(x, h-1, ' ', nil, statusStyle)
	}
	for i, r := range []rune(status) {
		if i >= w {
			break
		}
		s.SetContent(i, h-1, r, nil, statusStyle)
	}

	s.Show()
}

func (t *Terminal) drawPanel(p Panel, w, rows int) {
	r := p.Placement()
	x0, x1 := int(r.X), int(r.Right())-1
	y0, y1 := int(r.Y/cellAspect), int(r.Bottom()/cellAspect)-1
	if x1 <= x0 || y1 <= y0 {
		return
	}

	level := 0.25 + 0.75*utils.Clamp01(p.Pose.Opacity)
	gray := colorful.Color{R: level * 0.8, G: level * 0.8, B: level}
	style := tcell.StyleDefault.Foreground(toTcell(gray))

	put := func(x, y int, ch rune) {
		if x >= 0 && y >= 0 && x < w && y < rows {
			t.screen.SetContent(x, y, ch, nil, style)
		}
	}
	for x := x0 + 1; x < x1; x++ {
		put(x, y0, '─')
		put(x, y1, '─')
	}
	for y := y0 + 1; y < y1; y++ {
		put(x0, y, '│')
		put(x1, y, '│')
	}
	put(x0, y0, '┌')
	put(x1, y0, '┐')
	put(x0, y1, '└')
	put(x1, y1, '┘')

	for i, ch := range []rune(p.Label) {
		if x0+2+i >= x1 {
			break
		}
		put(x0+2+i, y0+1, ch)
	}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
