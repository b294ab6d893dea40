package components

// ScrollFadeComponent 随滚动距离淡出并上移的元素（如首屏标题）
type ScrollFadeComponent struct {
	StartPx    float64 // 开始淡出的滚动距离
	EndPx      float64 // 淡出完成的滚动距离
	MinOpacity float64 // 淡出完成后的不透明度
	ParallaxPx float64 // 淡出完成时的上移距离
	Rate       float64 // 每个参考帧向目标逼近的比例

	Progress float64 // 当前滚动进度 0~1
	Target   Pose
	Current  Pose
}
