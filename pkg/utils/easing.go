package utils

import "math"

// Easing and smoothing functions (缓动与平滑函数)
//
// 缓动函数接受进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 平滑函数（FrameLerp / SmoothDamp）以帧为单位逼近目标值，
// 通过 deltaScale 折算刷新率，同一 rate 在 60Hz 与 240Hz 下观感一致。
//
// 参考：https://easings.net/

// settleEpsilon is the distance under which FrameLerp snaps to its target.
const settleEpsilon = 1e-9

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// FrameFactor returns the interpolation factor for a per-reference-frame
// rate applied over deltaScale reference frames:
//
//	factor = 1 - (1 - rate)^deltaScale
//
// rate is clamped to [0, 1]; deltaScale must already be clamped by the
// frame clock, so the result never leaves [0, 1].
func FrameFactor(rate, deltaScale float64) float64 {
	rate = Clamp01(rate)
	if deltaScale <= 0 {
		return 0
	}
	return 1 - math.Pow(1-rate, deltaScale)
}

// FrameLerp moves current toward target by FrameFactor(rate, deltaScale).
//
// Applying it once with deltaScale=2 equals applying it twice with
// deltaScale=1. It never overshoots, and snaps to target once the remaining
// distance is below 1e-9 so state settles instead of creeping forever.
func FrameLerp(current, target, rate, deltaScale float64) float64 {
	next := current + (target-current)*FrameFactor(rate, deltaScale)
	if math.Abs(target-next) < settleEpsilon {
		return target
	}
	return next
}

// SmoothDamp moves current toward target like a critically damped spring.
//
// 参数：
//   - velocity: 上一次调用返回的速度（首次传 0）
//   - smoothTime: 大约到达目标所需的秒数
//   - maxSpeed: 最大速度（单位/秒），<= 0 表示不限制
//   - deltaSeconds: 本帧时长（秒）
//
// 返回：新的位置与速度
func SmoothDamp(current, target, velocity, smoothTime, maxSpeed, deltaSeconds float64) (float64, float64) {
	if deltaSeconds <= 0 {
		return current, velocity
	}
	smoothTime = math.Max(0.0001, smoothTime)
	omega := 2 / smoothTime

	x := omega * deltaSeconds
	decay := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	originalTarget := target
	if maxSpeed > 0 {
		maxChange := maxSpeed * smoothTime
		change = Clamp(change, -maxChange, maxChange)
	}
	target = current - change

	temp := (velocity + omega*change) * deltaSeconds
	velocity = (velocity - omega*temp) * decay
	output := target + (change+temp)*decay

	// 防止越过目标
	if (originalTarget-current > 0) == (output > originalTarget) {
		output = originalTarget
		velocity = 0
	}
	return output, velocity
}
