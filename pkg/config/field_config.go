package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ShapeKind 粒子形状（仅影响渲染器，不影响模拟）
type ShapeKind string

const (
	ShapeCapsule     ShapeKind = "capsule"
	ShapeSphere      ShapeKind = "sphere"
	ShapeBox         ShapeKind = "box"
	ShapeTetrahedron ShapeKind = "tetrahedron"
)

// ShapeKinds 按切换顺序列出所有形状
var ShapeKinds = []ShapeKind{ShapeCapsule, ShapeSphere, ShapeBox, ShapeTetrahedron}

// Valid reports whether k is a known shape.
func (k ShapeKind) Valid() bool {
	for _, s := range ShapeKinds {
		if s == k {
			return true
		}
	}
	return false
}

// Next returns the shape after k in ShapeKinds, wrapping around.
func (k ShapeKind) Next() ShapeKind {
	for i, s := range ShapeKinds {
		if s == k {
			return ShapeKinds[(i+1)%len(ShapeKinds)]
		}
	}
	return ShapeKinds[0]
}

// MaxParticleCount 粒子数量上限
const MaxParticleCount = 100000

// FieldConfig 粒子场（Antigravity）配置
//
// 所有字段均为可选，未出现在 YAML 中的字段保留 DefaultFieldConfig 中的默认值。
// 长度单位均为世界单位（默认相机下视口高度约 31.5 个单位）。
type FieldConfig struct {
	// Count 粒子数量，0 表示空粒子场
	Count int `yaml:"count"`

	// MagnetRadius 吸引半径：粒子的 home 与目标点距离小于此值时进入环绕
	MagnetRadius float64 `yaml:"magnetRadius"`

	// MagnetHysteresis 离开吸引状态需要额外超出的距离，避免在边界处逐帧抖动
	MagnetHysteresis float64 `yaml:"magnetHysteresis"`

	// RingRadius 环绕半径
	RingRadius float64 `yaml:"ringRadius"`

	// WaveSpeed / WaveAmplitude 环上波动的速度与幅度
	WaveSpeed     float64 `yaml:"waveSpeed"`
	WaveAmplitude float64 `yaml:"waveAmplitude"`

	// ParticleSize 全局尺寸系数
	ParticleSize float64 `yaml:"particleSize"`

	// FollowSpeed 每个参考帧向目标位置逼近的比例 (0, 1]
	FollowSpeed float64 `yaml:"followSpeed"`

	// Color 粒子颜色（十六进制，如 "#FF9FFC"）
	Color string `yaml:"color"`

	// AutoAnimate 指针空闲时是否沿自动轨迹移动目标点
	AutoAnimate bool `yaml:"autoAnimate"`

	// DepthFactor home 位置 z 轴缩放
	DepthFactor float64 `yaml:"depthFactor"`

	// RotationSpeed 整个环的集体旋转速度（弧度/秒）
	RotationSpeed float64 `yaml:"rotationSpeed"`

	// PulseSpeed 粒子尺寸脉动速度
	PulseSpeed float64 `yaml:"pulseSpeed"`

	// Shape 粒子形状
	Shape ShapeKind `yaml:"shape"`

	// FieldStrength 越大环越"薄"：半径抖动贡献 = jitter * 5 / (FieldStrength + 0.1)
	FieldStrength float64 `yaml:"fieldStrength"`

	// ParticleVariance 粒子间尺寸与脉动差异 [0, 1]
	ParticleVariance float64 `yaml:"particleVariance"`

	// TumbleSpeed 粒子自转速度（弧度/秒，按墙钟时间推进）
	TumbleSpeed float64 `yaml:"tumbleSpeed"`

	// Seed 随机种子，0 表示按启动时间取种
	Seed int64 `yaml:"seed"`
}

// DefaultFieldConfig 返回默认粒子场配置
func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		Count:            2000,
		MagnetRadius:     15,
		MagnetHysteresis: 0.5,
		RingRadius:       10,
		WaveSpeed:        0.3,
		WaveAmplitude:    0.8,
		ParticleSize:     0.6,
		FollowSpeed:      0.1,
		Color:            "#FF9FFC",
		AutoAnimate:      true,
		DepthFactor:      1,
		RotationSpeed:    0,
		PulseSpeed:       3,
		Shape:            ShapeCapsule,
		FieldStrength:    10,
		ParticleVariance: 1,
		TumbleSpeed:      0.6,
	}
}

// RadiusJitterMax 返回半径抖动对环半径的最大贡献
func (c FieldConfig) RadiusJitterMax() float64 {
	return 5 / (c.FieldStrength + 0.1)
}

// ParticleColor 解析粒子颜色
func (c FieldConfig) ParticleColor() (colorful.Color, error) {
	col, err := colorful.Hex(c.Color)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid particle color %q: %w", c.Color, err)
	}
	return col, nil
}

// Validate 验证配置有效性
func (c FieldConfig) Validate() error {
	if c.Count < 0 || c.Count > MaxParticleCount {
		return fmt.Errorf("count must be in [0, %d], got %d", MaxParticleCount, c.Count)
	}
	if c.MagnetRadius <= 0 {
		return fmt.Errorf("magnetRadius must be positive, got %.3f", c.MagnetRadius)
	}
	if c.MagnetHysteresis < 0 {
		return fmt.Errorf("magnetHysteresis must not be negative, got %.3f", c.MagnetHysteresis)
	}
	if c.RingRadius < 0 {
		return fmt.Errorf("ringRadius must not be negative, got %.3f", c.RingRadius)
	}
	if c.WaveAmplitude < 0 {
		return fmt.Errorf("waveAmplitude must not be negative, got %.3f", c.WaveAmplitude)
	}
	if c.ParticleSize <= 0 {
		return fmt.Errorf("particleSize must be positive, got %.3f", c.ParticleSize)
	}
	if c.FollowSpeed <= 0 || c.FollowSpeed > 1 {
		return fmt.Errorf("followSpeed must be in (0, 1], got %.3f", c.FollowSpeed)
	}
	if c.FieldStrength < 0 {
		return fmt.Errorf("fieldStrength must not be negative, got %.3f", c.FieldStrength)
	}
	if c.ParticleVariance < 0 || c.ParticleVariance > 1 {
		return fmt.Errorf("particleVariance must be in [0, 1], got %.3f", c.ParticleVariance)
	}
	if !c.Shape.Valid() {
		return fmt.Errorf("unknown shape %q", c.Shape)
	}
	if _, err := c.ParticleColor(); err != nil {
		return err
	}
	return nil
}
