package game

import (
	"fmt"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/antigravity/pkg/config"
)

// newTestStorage 在临时 HOME 下创建 gdata Manager
func newTestStorage(t *testing.T) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")

	manager, err := gdata.Open(gdata.Config{
		AppName: fmt.Sprintf("antigravity_test_%d", time.Now().UnixNano()),
	})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}
	return manager
}

func TestDefaultSettings(t *testing.T) {
	field := config.DefaultFieldConfig()
	s := DefaultSettings(field)

	if s.ReducedMotion {
		t.Error("ReducedMotion: got true, want false")
	}
	if s.Shape != config.ShapeCapsule {
		t.Errorf("Shape: got %q, want capsule", s.Shape)
	}
	if s.ParticleCount != 2000 {
		t.Errorf("ParticleCount: got %d, want 2000", s.ParticleCount)
	}
	if !s.AutoAnimate {
		t.Error("AutoAnimate: got false, want true")
	}
}

// TestSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil, config.DefaultFieldConfig())
	if sm.GetSettings() == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}

	sm.SetReducedMotion(true)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode should not fail: %v", err)
	}
	if sm.GetSettings().ReducedMotion {
		t.Error("degraded Load() should reset to defaults")
	}
}

func TestSettingsLoadSave(t *testing.T) {
	storage := newTestStorage(t)
	field := config.DefaultFieldConfig()

	sm := NewSettingsManager(storage, field)
	sm.SetReducedMotion(true)
	if !sm.SetShape(config.ShapeBox) {
		t.Fatal("SetShape(box) rejected")
	}
	sm.SetParticleCount(500)
	sm.SetAutoAnimate(false)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 新实例从存储读取
	reloaded := NewSettingsManager(storage, field)
	got := *reloaded.GetSettings()
	want := MotionSettings{ReducedMotion: true, Shape: config.ShapeBox, ParticleCount: 500, AutoAnimate: false}
	if got != want {
		t.Errorf("reloaded settings = %+v, want %+v", got, want)
	}
}

func TestSettingsLoadCorrupted(t *testing.T) {
	storage := newTestStorage(t)
	if err := storage.SaveObjectProp(settingsObject, settingsProperty, []byte("shape: [")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm := &SettingsManager{gdataManager: storage, defaults: *DefaultSettings(config.DefaultFieldConfig())}
	if err := sm.Load(); err == nil {
		t.Error("Load() should report corrupted data")
	}
	if sm.GetSettings().Shape != config.ShapeCapsule {
		t.Errorf("corrupted data should fall back to defaults, got %+v", sm.GetSettings())
	}
}

func TestSettingsLoadSanitizes(t *testing.T) {
	storage := newTestStorage(t)
	data := []byte("shape: star\nparticleCount: -4\n")
	if err := storage.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm := NewSettingsManager(storage, config.DefaultFieldConfig())
	s := sm.GetSettings()
	if s.Shape != config.ShapeCapsule {
		t.Errorf("unknown shape should fall back to default, got %q", s.Shape)
	}
	if s.ParticleCount != 0 {
		t.Errorf("negative count should clamp to 0, got %d", s.ParticleCount)
	}
	// 缺失字段保留默认值
	if !s.AutoAnimate {
		t.Error("missing autoAnimate should keep default true")
	}
}

func TestSetShapeRejectsUnknown(t *testing.T) {
	sm := NewSettingsManager(nil, config.DefaultFieldConfig())
	if sm.SetShape("star") {
		t.Error("SetShape(star) should be rejected")
	}
	if sm.GetSettings().Shape != config.ShapeCapsule {
		t.Errorf("Shape changed to %q", sm.GetSettings().Shape)
	}
}

func TestSetParticleCountClamp(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  int
	}{
		{"负数", -1, 0},
		{"零", 0, 0},
		{"正常值", 1200, 1200},
		{"超过上限", config.MaxParticleCount + 1, config.MaxParticleCount},
	}

	sm := NewSettingsManager(nil, config.DefaultFieldConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm.SetParticleCount(tt.input)
			if got := sm.GetSettings().ParticleCount; got != tt.want {
				t.Errorf("SetParticleCount(%d) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestMotionSettingsApply(t *testing.T) {
	field := config.DefaultFieldConfig()
	s := MotionSettings{Shape: config.ShapeSphere, ParticleCount: 42, AutoAnimate: false}

	got := s.Apply(field)
	if got.Shape != config.ShapeSphere || got.Count != 42 || got.AutoAnimate {
		t.Errorf("Apply() = shape %q count %d auto %v", got.Shape, got.Count, got.AutoAnimate)
	}
	if got.RingRadius != field.RingRadius {
		t.Error("Apply() should not touch unrelated fields")
	}
}
