package systems

import "github.com/decker502/antigravity/pkg/config"

// Environment 宿主环境中会影响动画策略的属性
type Environment struct {
	ViewportWidthPx      float64
	ViewportHeightPx     float64
	PrefersReducedMotion bool // 系统"减少动态效果"偏好
}

// RenderPolicy 在环境变化时计算一次，再通过 SetRenderPolicy 交给各系统
//
// ReducedMotion: 跳过插值，Current 直接等于 Target
// Narrow: 窄屏，使用较小的偏移/缩放幅度且不模糊
type RenderPolicy struct {
	ReducedMotion bool
	Narrow        bool
}

// DetectRenderPolicy 根据环境与配置计算渲染策略
func DetectRenderPolicy(env Environment, cfg config.PolicyConfig) RenderPolicy {
	return RenderPolicy{
		ReducedMotion: cfg.HonorReducedMotion && env.PrefersReducedMotion,
		Narrow:        env.ViewportWidthPx > 0 && env.ViewportWidthPx < cfg.NarrowBreakpointPx,
	}
}
