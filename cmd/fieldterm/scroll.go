package main

import (
	"github.com/decker502/antigravity/pkg/scenes"
	"github.com/decker502/antigravity/pkg/utils"
)

// scrollSmoothTime 滚动到达目标所需的大约时间（秒）
const scrollSmoothTime = 0.12

// smoothScroll 终端滚轮与按键一次跳动多个单元，文档沿阻尼弹簧平滑地滚到目标位置
type smoothScroll struct {
	target   float64
	velocity float64
}

// By 按增量移动滚动目标，目标限制在可滚动范围内
func (s *smoothScroll) By(p *scenes.Portfolio, dy float64) {
	s.target = utils.Clamp(s.target+dy, 0, p.MaxScroll())
}

// Target 返回当前滚动目标
func (s *smoothScroll) Target() float64 {
	return s.target
}

// Step 推进一帧；减少动态效果时直接跳到目标
func (s *smoothScroll) Step(p *scenes.Portfolio, deltaSeconds float64) {
	// 视口变化后可滚动范围可能缩小
	s.target = utils.Clamp(s.target, 0, p.MaxScroll())

	cur := p.ScrollY()
	if p.RenderPolicy().ReducedMotion {
		s.velocity = 0
		p.Scroll(s.target - cur)
		return
	}
	next, v := utils.SmoothDamp(cur, s.target, s.velocity, scrollSmoothTime, 0, deltaSeconds)
	s.velocity = v
	p.Scroll(next - cur)
}
