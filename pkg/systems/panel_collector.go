package systems

import (
	"github.com/decker502/antigravity/pkg/components"
	"github.com/decker502/antigravity/pkg/ecs"
	"github.com/decker502/antigravity/pkg/render"
	"github.com/decker502/antigravity/pkg/visibility"
)

// CollectPanels 收集所有区域实体在屏幕上的面板
//
// 同一实体同时拥有显现与滚动渐隐时，两者的姿态叠加：
// 不透明度与缩放相乘，偏移与模糊相加。
//
// 参数：
//   - em: 实体管理器
//   - scrollY: 文档滚动距离，区域坐标减去它得到屏幕坐标
//   - dst: 复用的输出切片，可为 nil
func CollectPanels(em *ecs.EntityManager, scrollY float64, dst []render.Panel) []render.Panel {
	dst = dst[:0]
	for _, id := range ecs.GetEntitiesWith1[*components.RegionComponent](em) {
		region, _ := ecs.GetComponent[*components.RegionComponent](em, id)

		pose := components.RestPose()
		if reveal, ok := ecs.GetComponent[*components.RevealComponent](em, id); ok {
			pose = reveal.Current
		}
		if fade, ok := ecs.GetComponent[*components.ScrollFadeComponent](em, id); ok {
			pose = composePose(pose, fade.Current)
		}

		b := region.Bounds
		dst = append(dst, render.Panel{
			Label:  region.Label,
			Bounds: visibility.Rect{X: b.X, Y: b.Y - scrollY, W: b.W, H: b.H},
			Pose:   pose,
		})
	}
	return dst
}

func composePose(a, b components.Pose) components.Pose {
	return components.Pose{
		Opacity:    a.Opacity * b.Opacity,
		TranslateY: a.TranslateY + b.TranslateY,
		Scale:      a.Scale * b.Scale,
		BlurPx:     a.BlurPx + b.BlurPx,
	}
}
