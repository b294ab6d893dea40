package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerState 存储当前帧的指针状态
// 同时支持鼠标和触摸，优先使用触摸
type PointerState struct {
	// 指针位置（像素）
	X, Y int
	// 指针是否在视口内（鼠标移出窗口视为不存在）
	Present bool
	// 是否来自触摸
	IsTouching bool
}

// GetPointerState 获取当前帧的指针状态
//
// 参数：
//   - width, height: 视口像素尺寸，用于判断鼠标是否在窗口内
func GetPointerState(width, height int) PointerState {
	state := PointerState{}

	// 首先检查触摸输入（移动设备）
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.IsTouching = true
		state.Present = true
		return state
	}

	// 其次检查鼠标（桌面设备）
	state.X, state.Y = ebiten.CursorPosition()
	state.Present = state.X >= 0 && state.Y >= 0 && state.X < width && state.Y < height
	return state
}

// GetWheelDelta 返回本帧的滚轮纵向增量（向下为正）
func GetWheelDelta() float64 {
	_, dy := ebiten.Wheel()
	return -dy
}
