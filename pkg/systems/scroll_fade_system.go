package systems

import (
	"github.com/decker502/antigravity/pkg/components"
	"github.com/decker502/antigravity/pkg/config"
	"github.com/decker502/antigravity/pkg/ecs"
	"github.com/decker502/antigravity/pkg/frame"
	"github.com/decker502/antigravity/pkg/utils"
)

// ScrollFadeSystem 让元素随文档滚动淡出并上移
type ScrollFadeSystem struct {
	entityManager *ecs.EntityManager
	scrollY       float64
	policy        RenderPolicy
}

// NewScrollFadeSystem 创建滚动渐隐系统
func NewScrollFadeSystem(em *ecs.EntityManager) *ScrollFadeSystem {
	return &ScrollFadeSystem{entityManager: em}
}

// Attach 为已有实体添加滚动渐隐
func (s *ScrollFadeSystem) Attach(id ecs.EntityID, cfg config.ScrollFadeConfig) {
	rest := components.RestPose()
	ecs.AddComponent(s.entityManager, id, &components.ScrollFadeComponent{
		StartPx:    cfg.StartPx,
		EndPx:      cfg.EndPx,
		MinOpacity: cfg.MinOpacity,
		ParallaxPx: cfg.ParallaxPx,
		Rate:       cfg.Rate,
		Target:     rest,
		Current:    rest,
	})
}

// SetScroll 设置文档滚动距离（像素）
func (s *ScrollFadeSystem) SetScroll(y float64) {
	s.scrollY = y
}

// SetRenderPolicy 应用渲染策略
func (s *ScrollFadeSystem) SetRenderPolicy(p RenderPolicy) {
	s.policy = p
}

// Advance 实现 frame.Advancer
func (s *ScrollFadeSystem) Advance(sample frame.Sample) {
	for _, id := range ecs.GetEntitiesWith1[*components.ScrollFadeComponent](s.entityManager) {
		fade, _ := ecs.GetComponent[*components.ScrollFadeComponent](s.entityManager, id)

		span := fade.EndPx - fade.StartPx
		if span > 0 {
			fade.Progress = utils.Clamp01((s.scrollY - fade.StartPx) / span)
		} else if s.scrollY >= fade.EndPx {
			fade.Progress = 1
		} else {
			fade.Progress = 0
		}

		fade.Target = components.Pose{
			Opacity:    1 - utils.EaseOutCubic(fade.Progress)*(1-fade.MinOpacity),
			TranslateY: -fade.Progress * fade.ParallaxPx,
			Scale:      1,
		}

		if s.policy.ReducedMotion {
			fade.Current = fade.Target
			continue
		}
		fade.Current = lerpPose(fade.Current, fade.Target, fade.Rate, sample.DeltaScale)
	}
}

// Style 返回元素当前的渐隐姿态
func (s *ScrollFadeSystem) Style(id ecs.EntityID) (components.Pose, bool) {
	if !s.entityManager.Exists(id) {
		return components.Pose{}, false
	}
	fade, ok := ecs.GetComponent[*components.ScrollFadeComponent](s.entityManager, id)
	if !ok {
		return components.Pose{}, false
	}
	return fade.Current, true
}
