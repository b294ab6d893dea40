// Package config 定义动画引擎的静态配置及其 YAML 加载
//
// 配置文件位置: data/motion.yaml（随二进制嵌入，也可通过 --config 指定外部文件）
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/antigravity/pkg/embedded"
)

// EmbeddedMotionConfigPath 嵌入的默认配置路径
const EmbeddedMotionConfigPath = "data/motion.yaml"

// MotionConfig 动画引擎完整配置
type MotionConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Tracker    TrackerConfig    `yaml:"tracker"`
	Reveal     RevealConfig     `yaml:"reveal"`
	Policy     PolicyConfig     `yaml:"policy"`
	ScrollFade ScrollFadeConfig `yaml:"scrollFade"`
}

// DefaultMotionConfig 返回全部默认值
func DefaultMotionConfig() *MotionConfig {
	return &MotionConfig{
		Field:      DefaultFieldConfig(),
		Tracker:    DefaultTrackerConfig(),
		Reveal:     DefaultRevealConfig(),
		Policy:     DefaultPolicyConfig(),
		ScrollFade: DefaultScrollFadeConfig(),
	}
}

// ParseMotionConfig 解析 YAML 配置
//
// YAML 在默认配置之上解码，文件中未出现的字段保留默认值。
//
// 参数:
//   - data: YAML 内容
//
// 返回:
//   - *MotionConfig: 解析并验证后的配置
//   - error: 解析或验证失败时返回错误
func ParseMotionConfig(data []byte) (*MotionConfig, error) {
	cfg := DefaultMotionConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse motion config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid motion config: %w", err)
	}
	return cfg, nil
}

// LoadMotionConfig 从文件加载配置
//
// 参数:
//   - path: 配置文件路径（如 "data/motion.yaml"）
func LoadMotionConfig(path string) (*MotionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read motion config: %w", err)
	}
	return ParseMotionConfig(data)
}

// LoadEmbeddedMotionConfig 加载随二进制嵌入的默认配置
// 调用前必须先调用 embedded.Init()
func LoadEmbeddedMotionConfig() (*MotionConfig, error) {
	data, err := embedded.ReadFile(EmbeddedMotionConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded motion config: %w", err)
	}
	return ParseMotionConfig(data)
}

// Validate 验证所有子配置
func (c *MotionConfig) Validate() error {
	if err := c.Field.Validate(); err != nil {
		return fmt.Errorf("field: %w", err)
	}
	if err := c.Tracker.Validate(); err != nil {
		return fmt.Errorf("tracker: %w", err)
	}
	if err := c.Reveal.Validate(); err != nil {
		return fmt.Errorf("reveal: %w", err)
	}
	if c.Policy.NarrowBreakpointPx < 0 {
		return fmt.Errorf("policy: narrowBreakpointPx must not be negative, got %.1f", c.Policy.NarrowBreakpointPx)
	}
	if err := c.ScrollFade.Validate(); err != nil {
		return fmt.Errorf("scrollFade: %w", err)
	}
	return nil
}
