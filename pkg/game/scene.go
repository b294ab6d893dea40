package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the demo shell.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene to the given host timestamp in milliseconds.
	// Scenes derive their own frame deltas from consecutive timestamps.
	Update(timestampMs float64) error

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，逻辑屏幕尺寸变化时被调用
type Resizable interface {
	Resize(widthPx, heightPx int)
}

// Saveable 是一个可选接口，用于支持场景在退出时保存状态
//
// 实现此接口的场景会在以下时机被调用 SaveOnExit()：
//   - 窗口关闭
//   - 场景被切换掉
type Saveable interface {
	// SaveOnExit 在场景退出时保存状态
	// 返回 true 表示保存成功或无需保存
	// 返回 false 表示保存失败（但程序仍会正常退出）
	SaveOnExit() bool
}
