package systems

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/decker502/antigravity/pkg/config"
	"github.com/decker502/antigravity/pkg/frame"
	"github.com/decker502/antigravity/pkg/utils"
)

// TargetPoint 粒子场追逐的点（世界坐标）
type TargetPoint struct {
	X, Y float64
}

// Target 指针追踪的完整状态，仅用于诊断
type Target struct {
	RawX, RawY                 float64 // 最近一次指针位置（NDC）
	DestinationX, DestinationY float64 // 本帧目的地（世界坐标）
	SmoothedX, SmoothedY       float64 // 第一级平滑
	VirtualX, VirtualY         float64 // 第二级平滑，粒子场读取的值
	LastMoveMs                 float64 // 最近一次有效移动的墙钟时间
	Autonomous                 bool    // 本帧是否使用自动轨迹
}

// PointerTracker 把原始指针样本转换为两级平滑后的目标点
//
// 指针静止超过 IdleTimeoutMs（按墙钟计算，不按帧数）后，目的地切换为
// 只依赖时间的自动轨迹，使无人操作时粒子场仍然保持活动。
// 指针不存在（纯触摸设备、移出窗口）同样视为静止。
type PointerTracker struct {
	cfg         config.TrackerConfig
	autoAnimate bool
	clock       frame.TimeSource
	viewport    utils.Viewport

	state      Target
	hasPointer bool
	hasMoved   bool
}

// NewPointerTracker 创建指针追踪器
//
// 参数：
//   - cfg: 追踪配置
//   - autoAnimate: 空闲时是否启用自动轨迹
//   - clock: 墙钟来源，测试中使用 frame.ManualTime
func NewPointerTracker(cfg config.TrackerConfig, autoAnimate bool, clock frame.TimeSource) *PointerTracker {
	return &PointerTracker{
		cfg:         cfg,
		autoAnimate: autoAnimate,
		clock:       clock,
	}
}

// SetViewport 更新世界坐标范围
func (pt *PointerTracker) SetViewport(vp utils.Viewport) {
	pt.viewport = vp
}

// SetAutoAnimate 开关自动轨迹
func (pt *PointerTracker) SetAutoAnimate(enabled bool) {
	pt.autoAnimate = enabled
}

// AutoAnimate 返回自动轨迹是否启用
func (pt *PointerTracker) AutoAnimate() bool {
	return pt.autoAnimate
}

// SetPointer 记录本帧的指针位置（NDC）
func (pt *PointerTracker) SetPointer(ndcX, ndcY float64) {
	dx := ndcX - pt.state.RawX
	dy := ndcY - pt.state.RawY
	eps := pt.cfg.MoveEpsilon

	if !pt.hasPointer || dx*dx+dy*dy >= eps*eps {
		pt.state.LastMoveMs = pt.clock.NowMs()
		pt.hasMoved = true
	}
	pt.state.RawX, pt.state.RawY = ndcX, ndcY
	pt.hasPointer = true
}

// ClearPointer 标记指针不存在
func (pt *PointerTracker) ClearPointer() {
	pt.hasPointer = false
}

// Idle 返回指针是否已空闲超过超时
func (pt *PointerTracker) Idle() bool {
	if !pt.hasMoved {
		return true
	}
	return pt.clock.NowMs()-pt.state.LastMoveMs > pt.cfg.IdleTimeoutMs
}

// AutoPath 返回时间 t（秒）时自动轨迹的位置，只依赖 t 与视口尺寸
func (pt *PointerTracker) AutoPath(t float64) (float64, float64) {
	s := pt.cfg.AutoPathSpeed
	return math.Sin(t*s) * pt.viewport.WorldWidth / 4,
		math.Cos(2*t*s) * pt.viewport.WorldHeight / 4
}

// Advance 实现 frame.Advancer
//
// 两级平滑均为每次调用固定比例，不按 DeltaScale 折算。
func (pt *PointerTracker) Advance(frame.Sample) {
	s := &pt.state
	idle := pt.Idle()

	switch {
	case idle && pt.autoAnimate:
		if !s.Autonomous {
			log.Debug().Str("component", "PointerTracker").Msg("pointer idle, switching to autonomous path")
		}
		s.Autonomous = true
		s.DestinationX, s.DestinationY = pt.AutoPath(pt.clock.NowMs() / 1000)
	case pt.hasPointer || pt.hasMoved:
		s.Autonomous = false
		s.DestinationX, s.DestinationY = pt.viewport.NDCToWorld(s.RawX, s.RawY)
	default:
		s.Autonomous = false
	}

	s.SmoothedX = utils.Lerp(s.SmoothedX, s.DestinationX, pt.cfg.Smoothing)
	s.SmoothedY = utils.Lerp(s.SmoothedY, s.DestinationY, pt.cfg.Smoothing)
	s.VirtualX = utils.Lerp(s.VirtualX, s.SmoothedX, pt.cfg.VirtualSmoothing)
	s.VirtualY = utils.Lerp(s.VirtualY, s.SmoothedY, pt.cfg.VirtualSmoothing)
}

// Point 返回粒子场读取的目标点（按值返回，调用方无法修改追踪器状态）
func (pt *PointerTracker) Point() TargetPoint {
	return TargetPoint{X: pt.state.VirtualX, Y: pt.state.VirtualY}
}

// State 返回完整状态快照
func (pt *PointerTracker) State() Target {
	return pt.state
}
