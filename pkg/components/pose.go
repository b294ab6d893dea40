package components

// Pose 元素的样式元组，等价于 CSS 的 opacity / translateY / scale / filter: blur
//
// 滚动显现与滚动渐隐都输出 Pose，渲染器只读取 Current。
type Pose struct {
	Opacity    float64 // 不透明度 0~1
	TranslateY float64 // 纵向偏移（像素，向下为正）
	Scale      float64 // 缩放（1.0 = 原始大小）
	BlurPx     float64 // 模糊半径（像素）
}

// RestPose 静止姿态：完全可见、无偏移、无缩放、无模糊
func RestPose() Pose {
	return Pose{Opacity: 1, TranslateY: 0, Scale: 1, BlurPx: 0}
}
