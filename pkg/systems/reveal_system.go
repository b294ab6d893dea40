package systems

import (
	"github.com/rs/zerolog/log"

	"github.com/decker502/antigravity/pkg/components"
	"github.com/decker502/antigravity/pkg/config"
	"github.com/decker502/antigravity/pkg/ecs"
	"github.com/decker502/antigravity/pkg/frame"
	"github.com/decker502/antigravity/pkg/utils"
	"github.com/decker502/antigravity/pkg/visibility"
)

// RevealSystem 驱动滚动显现状态机
//
// 状态转换：
//
//	Pending --进入--> In
//	Pending --减少动态效果--> In（Current 直接等于 Target）
//	In --离开, once=false 且 animateOnExit=true--> Out
//	In --离开, once=true--> In（锁定）
//	Out --再次进入--> In
//
// Pending 状态忽略离开事件：从未收到进入事件的元素停留在退出姿态。
// 每帧无论状态如何，Current 都以帧率无关的插值逼近 Target。
type RevealSystem struct {
	entityManager *ecs.EntityManager
	bridge        visibility.Bridge
	cfg           config.RevealConfig
	policy        RenderPolicy
}

// NewRevealSystem 创建滚动显现系统
func NewRevealSystem(em *ecs.EntityManager, bridge visibility.Bridge, cfg config.RevealConfig) *RevealSystem {
	return &RevealSystem{
		entityManager: em,
		bridge:        bridge,
		cfg:           cfg,
	}
}

// DefaultPolicy 返回配置中的默认可见性策略
func (rs *RevealSystem) DefaultPolicy() components.RevealPolicy {
	return components.RevealPolicy{
		Threshold:     rs.cfg.Threshold,
		RootMarginPx:  rs.cfg.RootMarginPx,
		Once:          rs.cfg.Once,
		AnimateOnExit: rs.cfg.AnimateOnExit,
	}
}

// regionTarget 让可见性桥读取实体的实时布局
type regionTarget struct {
	em *ecs.EntityManager
	id ecs.EntityID
}

func (t regionTarget) Bounds() visibility.Rect {
	region, ok := ecs.GetComponent[*components.RegionComponent](t.em, t.id)
	if !ok {
		return visibility.Rect{}
	}
	return region.Bounds
}

// Mount 为一个区域创建显现实体并开始观察其可见性
//
// 参数：
//   - region: 区域布局
//   - policy: 可见性策略，创建后不再改变
//
// 返回：
//   - ecs.EntityID: 实体 ID，卸载时传给 Unmount
func (rs *RevealSystem) Mount(region components.RegionComponent, policy components.RevealPolicy) ecs.EntityID {
	em := rs.entityManager
	id := em.CreateEntity()

	exit := rs.exitPose(visibility.EdgeBelow)
	reveal := &components.RevealComponent{
		State:    components.RevealPending,
		Target:   exit,
		Current:  exit,
		Policy:   policy,
		ExitEdge: visibility.EdgeBelow,
	}
	if rs.policy.ReducedMotion {
		rs.snapIn(reveal)
	}

	ecs.AddComponent(em, id, &region)
	ecs.AddComponent(em, id, reveal)

	reveal.Observation = rs.bridge.Observe(
		regionTarget{em: em, id: id},
		visibility.Options{Threshold: policy.Threshold, RootMarginPx: policy.RootMarginPx},
		func(ev visibility.Event) { rs.handle(id, ev) },
	)

	log.Debug().Str("component", "RevealSystem").Uint64("entity", uint64(id)).
		Str("label", region.Label).Stringer("observation", reveal.Observation.ID()).
		Msg("mounted")
	return id
}

// Unmount 释放观察并销毁实体；重复调用是安全的
func (rs *RevealSystem) Unmount(id ecs.EntityID) {
	reveal, ok := ecs.GetComponent[*components.RevealComponent](rs.entityManager, id)
	if !ok {
		return
	}
	if reveal.Observation != nil {
		reveal.Observation.Unobserve()
		reveal.Observation = nil
		log.Debug().Str("component", "RevealSystem").Uint64("entity", uint64(id)).Msg("unmounted")
	}
	rs.entityManager.DestroyEntity(id)
}

// UnmountAll 卸载所有显现实体
func (rs *RevealSystem) UnmountAll() {
	for _, id := range ecs.GetEntitiesWith1[*components.RevealComponent](rs.entityManager) {
		rs.Unmount(id)
	}
}

// handle 处理可见性事件；实体已卸载时为空操作
func (rs *RevealSystem) handle(id ecs.EntityID, ev visibility.Event) {
	if !rs.entityManager.Exists(id) {
		return
	}
	reveal, ok := ecs.GetComponent[*components.RevealComponent](rs.entityManager, id)
	if !ok || reveal.Observation == nil {
		return
	}

	reveal.Visible = ev.Entering
	reveal.Ratio = ev.Ratio

	if ev.Entering {
		switch reveal.State {
		case components.RevealPending, components.RevealOut:
			reveal.State = components.RevealIn
			reveal.Target = components.RestPose()
			if rs.policy.ReducedMotion {
				reveal.Current = reveal.Target
			}
		}
		return
	}

	if ev.Edge != visibility.EdgeNone {
		reveal.ExitEdge = ev.Edge
	}
	if reveal.State != components.RevealIn {
		return
	}
	if reveal.Policy.Once || !reveal.Policy.AnimateOnExit || rs.policy.ReducedMotion {
		return
	}
	reveal.State = components.RevealOut
	reveal.Target = rs.exitPose(reveal.ExitEdge)
}

// magnitudes 返回当前视口宽度对应的姿态参数
func (rs *RevealSystem) magnitudes() config.PoseMagnitudes {
	if rs.policy.Narrow {
		return rs.cfg.Mobile
	}
	return rs.cfg.Desktop
}

// exitPose 计算退出姿态：从上方离开的元素向上偏移，其余向下
func (rs *RevealSystem) exitPose(edge visibility.Edge) components.Pose {
	m := rs.magnitudes()
	offset := m.OffsetPx
	if edge == visibility.EdgeAbove {
		offset = -offset
	}
	blur := m.BlurPx
	if rs.policy.Narrow {
		blur = 0
	}
	return components.Pose{Opacity: 0, TranslateY: offset, Scale: m.Scale, BlurPx: blur}
}

func (rs *RevealSystem) snapIn(reveal *components.RevealComponent) {
	reveal.State = components.RevealIn
	reveal.Target = components.RestPose()
	reveal.Current = reveal.Target
}

// SetRenderPolicy 应用新的渲染策略
//
// 开启减少动态效果时，Pending 元素立即进入 In，所有元素跳过插值；
// 窄屏切换时重新计算退出姿态。
func (rs *RevealSystem) SetRenderPolicy(p RenderPolicy) {
	if p == rs.policy {
		return
	}
	rs.policy = p

	for _, id := range ecs.GetEntitiesWith1[*components.RevealComponent](rs.entityManager) {
		reveal, _ := ecs.GetComponent[*components.RevealComponent](rs.entityManager, id)
		if p.ReducedMotion {
			if reveal.State == components.RevealPending {
				rs.snapIn(reveal)
			}
			reveal.Current = reveal.Target
			continue
		}
		if reveal.State != components.RevealIn {
			reveal.Target = rs.exitPose(reveal.ExitEdge)
		}
	}
}

// RenderPolicy 返回当前渲染策略
func (rs *RevealSystem) RenderPolicy() RenderPolicy {
	return rs.policy
}

// Advance 实现 frame.Advancer，推进所有元素的 Current
func (rs *RevealSystem) Advance(s frame.Sample) {
	rate := rs.magnitudes().Rate
	reduced := rs.policy.ReducedMotion

	for _, id := range ecs.GetEntitiesWith1[*components.RevealComponent](rs.entityManager) {
		reveal, _ := ecs.GetComponent[*components.RevealComponent](rs.entityManager, id)
		if reduced {
			reveal.Current = reveal.Target
			continue
		}
		reveal.Current = lerpPose(reveal.Current, reveal.Target, rate, s.DeltaScale)
	}
}

// Style 返回元素当前的样式元组
func (rs *RevealSystem) Style(id ecs.EntityID) (components.Pose, bool) {
	if !rs.entityManager.Exists(id) {
		return components.Pose{}, false
	}
	reveal, ok := ecs.GetComponent[*components.RevealComponent](rs.entityManager, id)
	if !ok {
		return components.Pose{}, false
	}
	return reveal.Current, true
}

// State 返回元素的显现状态
func (rs *RevealSystem) State(id ecs.EntityID) (components.RevealState, bool) {
	if !rs.entityManager.Exists(id) {
		return components.RevealPending, false
	}
	reveal, ok := ecs.GetComponent[*components.RevealComponent](rs.entityManager, id)
	if !ok {
		return components.RevealPending, false
	}
	return reveal.State, true
}

// TargetPose 返回元素的目标姿态
func (rs *RevealSystem) TargetPose(id ecs.EntityID) (components.Pose, bool) {
	if !rs.entityManager.Exists(id) {
		return components.Pose{}, false
	}
	reveal, ok := ecs.GetComponent[*components.RevealComponent](rs.entityManager, id)
	if !ok {
		return components.Pose{}, false
	}
	return reveal.Target, true
}

func lerpPose(cur, target components.Pose, rate, deltaScale float64) components.Pose {
	return components.Pose{
		Opacity:    utils.FrameLerp(cur.Opacity, target.Opacity, rate, deltaScale),
		TranslateY: utils.FrameLerp(cur.TranslateY, target.TranslateY, rate, deltaScale),
		Scale:      utils.FrameLerp(cur.Scale, target.Scale, rate, deltaScale),
		BlurPx:     utils.FrameLerp(cur.BlurPx, target.BlurPx, rate, deltaScale),
	}
}
