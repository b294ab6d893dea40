package components

import "github.com/decker502/antigravity/pkg/visibility"

// RevealState 滚动显现状态
type RevealState int

const (
	// RevealPending 尚未收到任何进入事件，停留在退出姿态
	RevealPending RevealState = iota
	// RevealIn 目标为静止姿态
	RevealIn
	// RevealOut 目标为退出姿态
	RevealOut
)

func (s RevealState) String() string {
	switch s {
	case RevealPending:
		return "pending"
	case RevealIn:
		return "in"
	case RevealOut:
		return "out"
	default:
		return "unknown"
	}
}

// RevealPolicy 创建时固定的可见性策略
type RevealPolicy struct {
	Threshold     float64 // 可见比例阈值
	RootMarginPx  float64 // 视口外扩
	Once          bool    // 显现后不再重新布防
	AnimateOnExit bool    // 离开视口时回到退出姿态
}

// RevealComponent 滚动显现状态机
//
// Target 只在可见性事件或渲染策略变化时改变；Current 每帧向 Target 插值。
type RevealComponent struct {
	State   RevealState
	Visible bool    // 最近一次事件报告的可见性
	Ratio   float64 // 最近一次事件报告的可见比例

	Target  Pose
	Current Pose

	Policy RevealPolicy

	// Observation 挂载时创建，卸载时释放（恰好一次）
	Observation visibility.Observation
	// ExitEdge 最近一次离开视口的方向，决定退出姿态的偏移符号
	ExitEdge visibility.Edge
}
