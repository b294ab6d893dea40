package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/decker502/antigravity/pkg/render"
	"github.com/decker502/antigravity/pkg/scenes"
)

// 滚动步长（终端像素）
const (
	wheelStepPx = 4
	keyStepPx   = 2
	countStep   = 100
)

// handleEvent 把终端事件转换为 Portfolio 操作，返回 true 表示退出
// 滚动只修改 sc 的目标，由帧循环平滑推进
func handleEvent(p *scenes.Portfolio, sc *smoothScroll, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyUp:
			sc.By(p, -keyStepPx)
		case tcell.KeyDown:
			sc.By(p, keyStepPx)
		case tcell.KeyPgUp:
			sc.By(p, -p.Viewport().HeightPx * 0.9)
		case tcell.KeyPgDn:
			sc.By(p, p.Viewport().HeightPx * 0.9)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case 'r':
				p.ToggleReducedMotion()
			case 's':
				p.CycleShape()
			case 'a':
				p.ToggleAutoAnimate()
			case '+', '=':
				p.SetParticleCount(p.Field().Len() + countStep)
			case '-':
				p.SetParticleCount(p.Field().Len() - countStep)
			}
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := render.CellToPixel(col, row)
		vp := p.Viewport()
		p.SetPointerPixels(x, y, y < vp.HeightPx)

		buttons := ev.Buttons()
		if buttons&tcell.WheelUp != 0 {
			sc.By(p, -wheelStepPx)
		}
		if buttons&tcell.WheelDown != 0 {
			sc.By(p, wheelStepPx)
		}
	}
	return false
}
