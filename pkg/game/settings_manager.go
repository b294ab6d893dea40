package game

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/decker502/antigravity/pkg/config"
)

// MotionSettings 演示程序的用户偏好
// 注意：这些设置只属于桌面演示外壳，核心动画包不读取持久化状态
type MotionSettings struct {
	ReducedMotion bool             `yaml:"reducedMotion"` // 用户手动开启"减少动态效果"
	Shape         config.ShapeKind `yaml:"shape"`         // 粒子形状
	ParticleCount int              `yaml:"particleCount"` // 粒子数量
	AutoAnimate   bool             `yaml:"autoAnimate"`   // 指针空闲时是否沿自动轨迹移动
}

// DefaultSettings 返回与配置文件一致的默认设置
func DefaultSettings(field config.FieldConfig) *MotionSettings {
	return &MotionSettings{
		ReducedMotion: false,
		Shape:         field.Shape,
		ParticleCount: field.Count,
		AutoAnimate:   field.AutoAnimate,
	}
}

// SettingsManager 设置管理器
// 负责演示设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	defaults     MotionSettings
	settings     *MotionSettings
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "motion"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//   - field: 粒子场配置，提供默认值
//
// 返回：
//   - *SettingsManager: 设置管理器实例（加载失败时使用默认设置）
func NewSettingsManager(gdataManager *gdata.Manager, field config.FieldConfig) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		defaults:     *DefaultSettings(field),
	}

	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Warn().Str("component", "SettingsManager").Err(err).Msg("failed to load settings, using defaults")
	}
	return sm
}

func (sm *SettingsManager) resetToDefaults() {
	d := sm.defaults
	sm.settings = &d
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
//
// 返回：
//   - error: 如果读取或反序列化失败返回错误
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.resetToDefaults()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.resetToDefaults()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.resetToDefaults()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 在默认值之上解码，旧版本存档缺少的字段保留默认值
	loaded := sm.defaults
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.resetToDefaults()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if !loaded.Shape.Valid() {
		loaded.Shape = sm.defaults.Shape
	}
	loaded.ParticleCount = clampCount(loaded.ParticleCount)

	sm.settings = &loaded
	log.Debug().Str("component", "SettingsManager").Interface("settings", loaded).Msg("settings loaded")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Debug().Str("component", "SettingsManager").Msg("settings saved")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *MotionSettings {
	return sm.settings
}

// SetReducedMotion 设置"减少动态效果"
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetReducedMotion(enabled bool) {
	sm.settings.ReducedMotion = enabled
}

// SetShape 设置粒子形状；未知形状被忽略
//
// 返回：
//   - bool: 是否接受了该形状
func (sm *SettingsManager) SetShape(shape config.ShapeKind) bool {
	if !shape.Valid() {
		return false
	}
	sm.settings.Shape = shape
	return true
}

// SetParticleCount 设置粒子数量，限制在 [0, config.MaxParticleCount]
func (sm *SettingsManager) SetParticleCount(count int) {
	sm.settings.ParticleCount = clampCount(count)
}

// SetAutoAnimate 设置自动轨迹开关
func (sm *SettingsManager) SetAutoAnimate(enabled bool) {
	sm.settings.AutoAnimate = enabled
}

// Apply 把设置覆盖到粒子场配置上
func (s MotionSettings) Apply(field config.FieldConfig) config.FieldConfig {
	field.Shape = s.Shape
	field.Count = s.ParticleCount
	field.AutoAnimate = s.AutoAnimate
	return field
}

func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	if n > config.MaxParticleCount {
		return config.MaxParticleCount
	}
	return n
}
