package config

import "fmt"

// TrackerConfig 指针追踪配置
type TrackerConfig struct {
	// IdleTimeoutMs 指针静止超过该时长（墙钟毫秒）后切换到自动轨迹
	IdleTimeoutMs float64 `yaml:"idleTimeoutMs"`

	// MoveEpsilon 小于该 NDC 距离的移动视为静止
	MoveEpsilon float64 `yaml:"moveEpsilon"`

	// Smoothing 第一级平滑比例（每次调用固定比例，不按 deltaScale 折算）
	Smoothing float64 `yaml:"smoothing"`

	// VirtualSmoothing 第二级平滑比例
	VirtualSmoothing float64 `yaml:"virtualSmoothing"`

	// AutoPathSpeed 自动轨迹的角速度系数
	AutoPathSpeed float64 `yaml:"autoPathSpeed"`
}

// DefaultTrackerConfig 返回默认指针追踪配置
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		IdleTimeoutMs:    1500,
		MoveEpsilon:      0.001,
		Smoothing:        0.12,
		VirtualSmoothing: 0.15,
		AutoPathSpeed:    0.5,
	}
}

// Validate 验证配置有效性
func (c TrackerConfig) Validate() error {
	if c.IdleTimeoutMs < 0 {
		return fmt.Errorf("idleTimeoutMs must not be negative, got %.1f", c.IdleTimeoutMs)
	}
	if c.MoveEpsilon < 0 {
		return fmt.Errorf("moveEpsilon must not be negative, got %.4f", c.MoveEpsilon)
	}
	if c.Smoothing <= 0 || c.Smoothing > 1 {
		return fmt.Errorf("smoothing must be in (0, 1], got %.3f", c.Smoothing)
	}
	if c.VirtualSmoothing <= 0 || c.VirtualSmoothing > 1 {
		return fmt.Errorf("virtualSmoothing must be in (0, 1], got %.3f", c.VirtualSmoothing)
	}
	return nil
}

// PoseMagnitudes 退出姿态的幅度与插值速度
type PoseMagnitudes struct {
	// OffsetPx 退出姿态的纵向偏移（像素）
	OffsetPx float64 `yaml:"offsetPx"`
	// Scale 退出姿态的缩放
	Scale float64 `yaml:"scale"`
	// BlurPx 退出姿态的模糊半径（像素）
	BlurPx float64 `yaml:"blurPx"`
	// Rate 每个参考帧向目标姿态逼近的比例
	Rate float64 `yaml:"rate"`
}

// RevealConfig 滚动显现配置
type RevealConfig struct {
	// Threshold 可见比例阈值 [0, 1]
	Threshold float64 `yaml:"threshold"`
	// RootMarginPx 视口外扩（负值为内缩）
	RootMarginPx float64 `yaml:"rootMarginPx"`
	// Once 首次显现后不再重新布防
	Once bool `yaml:"once"`
	// AnimateOnExit 离开视口时回到退出姿态
	AnimateOnExit bool `yaml:"animateOnExit"`

	// Desktop / Mobile 宽屏与窄屏的姿态参数
	Desktop PoseMagnitudes `yaml:"desktop"`
	Mobile  PoseMagnitudes `yaml:"mobile"`
}

// DefaultRevealConfig 返回默认滚动显现配置
func DefaultRevealConfig() RevealConfig {
	return RevealConfig{
		Threshold:     0.1,
		RootMarginPx:  0,
		Once:          true,
		AnimateOnExit: false,
		Desktop:       PoseMagnitudes{OffsetPx: 40, Scale: 0.95, BlurPx: 8, Rate: 0.1},
		Mobile:        PoseMagnitudes{OffsetPx: 20, Scale: 0.98, BlurPx: 0, Rate: 0.18},
	}
}

// Validate 验证配置有效性
func (c RevealConfig) Validate() error {
	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("threshold must be in [0, 1], got %.3f", c.Threshold)
	}
	for _, entry := range []struct {
		name string
		m    PoseMagnitudes
	}{{"desktop", c.Desktop}, {"mobile", c.Mobile}} {
		name, m := entry.name, entry.m
		if m.Scale <= 0 {
			return fmt.Errorf("%s.scale must be positive, got %.3f", name, m.Scale)
		}
		if m.BlurPx < 0 {
			return fmt.Errorf("%s.blurPx must not be negative, got %.3f", name, m.BlurPx)
		}
		if m.Rate <= 0 || m.Rate > 1 {
			return fmt.Errorf("%s.rate must be in (0, 1], got %.3f", name, m.Rate)
		}
	}
	return nil
}

// PolicyConfig 渲染策略检测参数
type PolicyConfig struct {
	// NarrowBreakpointPx 视口宽度小于该值视为窄屏（移动端）
	NarrowBreakpointPx float64 `yaml:"narrowBreakpointPx"`
	// HonorReducedMotion 是否遵循系统"减少动态效果"偏好
	HonorReducedMotion bool `yaml:"honorReducedMotion"`
}

// DefaultPolicyConfig 返回默认渲染策略参数
func DefaultPolicyConfig() PolicyConfig {
	return PolicyConfig{
		NarrowBreakpointPx: 768,
		HonorReducedMotion: true,
	}
}

// ScrollFadeConfig 滚动渐隐配置
type ScrollFadeConfig struct {
	// StartPx / EndPx 滚动距离区间，区间内不透明度从 1 过渡到 MinOpacity
	StartPx float64 `yaml:"startPx"`
	EndPx   float64 `yaml:"endPx"`
	// MinOpacity 完全滚出后的不透明度
	MinOpacity float64 `yaml:"minOpacity"`
	// ParallaxPx 滚完区间时的上移距离
	ParallaxPx float64 `yaml:"parallaxPx"`
	// Rate 每个参考帧向目标逼近的比例
	Rate float64 `yaml:"rate"`
}

// DefaultScrollFadeConfig 返回默认滚动渐隐配置
func DefaultScrollFadeConfig() ScrollFadeConfig {
	return ScrollFadeConfig{
		StartPx:    0,
		EndPx:      600,
		MinOpacity: 0,
		ParallaxPx: 80,
		Rate:       0.15,
	}
}

// Validate 验证配置有效性
func (c ScrollFadeConfig) Validate() error {
	if c.EndPx <= c.StartPx {
		return fmt.Errorf("scroll fade range invalid: endPx(%.1f) <= startPx(%.1f)", c.EndPx, c.StartPx)
	}
	if c.MinOpacity < 0 || c.MinOpacity > 1 {
		return fmt.Errorf("minOpacity must be in [0, 1], got %.3f", c.MinOpacity)
	}
	if c.Rate <= 0 || c.Rate > 1 {
		return fmt.Errorf("rate must be in (0, 1], got %.3f", c.Rate)
	}
	return nil
}
