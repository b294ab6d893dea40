package components

// Vec3 世界坐标中的点，或按 X/Y/Z 轴顺序的欧拉角（弧度）
type Vec3 struct {
	X, Y, Z float64
}

// Transform 单个粒子每帧的渲染输出
type Transform struct {
	Position Vec3
	Rotation Vec3
	Scale    float64
}
