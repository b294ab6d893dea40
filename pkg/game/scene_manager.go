package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

// SceneManager manages which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	widthPx      int
	heightPx     int
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene.
//
// The outgoing scene is given a chance to save, and the incoming scene
// receives the last known screen size.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if prev, ok := sm.currentScene.(Saveable); ok && sm.currentScene != scene {
		if !prev.SaveOnExit() {
			log.Warn().Str("component", "SceneManager").Msg("outgoing scene failed to save")
		}
	}
	sm.currentScene = scene
	if r, ok := scene.(Resizable); ok && sm.widthPx > 0 && sm.heightPx > 0 {
		r.Resize(sm.widthPx, sm.heightPx)
	}
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Resize 记录逻辑屏幕尺寸并转发给当前场景；尺寸未变化时为空操作
func (sm *SceneManager) Resize(widthPx, heightPx int) {
	if widthPx == sm.widthPx && heightPx == sm.heightPx {
		return
	}
	sm.widthPx, sm.heightPx = widthPx, heightPx
	if r, ok := sm.currentScene.(Resizable); ok {
		r.Resize(widthPx, heightPx)
	}
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(timestampMs float64) error {
	if sm.currentScene == nil {
		return nil
	}
	return sm.currentScene.Update(timestampMs)
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// SaveOnExit 让当前场景保存状态
func (sm *SceneManager) SaveOnExit() bool {
	if s, ok := sm.currentScene.(Saveable); ok {
		return s.SaveOnExit()
	}
	return true
}
