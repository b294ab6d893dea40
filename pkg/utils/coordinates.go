// Package utils 提供动画引擎通用的数学与坐标工具
//
// coordinates.go 负责三种坐标系之间的转换：
//   - **像素坐标**：相对于视口左上角，Y 轴向下
//   - **NDC 坐标**：归一化设备坐标，X/Y ∈ [-1, 1]，原点在视口中心，Y 轴向上
//   - **世界坐标**：粒子场使用的单位，原点在视口中心，Y 轴向上；
//     可见范围由透视相机的视场角与相机距离决定
//
// 核心公式：
//
//	worldHeight = 2 * tan(fov/2) * cameraZ
//	worldWidth  = worldHeight * (widthPx / heightPx)
package utils

import "math"

// Default camera used to derive the visible world extent.
const (
	DefaultFOVDegrees = 35.0
	DefaultCameraZ    = 50.0
)

// Viewport describes the drawable area in pixels and in world units.
type Viewport struct {
	WidthPx     float64
	HeightPx    float64
	WorldWidth  float64
	WorldHeight float64
}

// NewViewport derives the world extent visible to a perspective camera
// placed at cameraZ looking at the origin.
func NewViewport(widthPx, heightPx, fovDegrees, cameraZ float64) Viewport {
	if widthPx <= 0 || heightPx <= 0 {
		return Viewport{WidthPx: math.Max(widthPx, 0), HeightPx: math.Max(heightPx, 0)}
	}
	fov := fovDegrees * math.Pi / 180
	worldHeight := 2 * math.Tan(fov/2) * cameraZ
	return Viewport{
		WidthPx:     widthPx,
		HeightPx:    heightPx,
		WorldWidth:  worldHeight * widthPx / heightPx,
		WorldHeight: worldHeight,
	}
}

// DefaultViewport uses DefaultFOVDegrees and DefaultCameraZ.
func DefaultViewport(widthPx, heightPx float64) Viewport {
	return NewViewport(widthPx, heightPx, DefaultFOVDegrees, DefaultCameraZ)
}

// IsEmpty reports whether the viewport has no drawable area.
func (v Viewport) IsEmpty() bool {
	return v.WidthPx <= 0 || v.HeightPx <= 0 || v.WorldWidth <= 0 || v.WorldHeight <= 0
}

// NDCToWorld maps normalized device coordinates to world units.
func (v Viewport) NDCToWorld(ndcX, ndcY float64) (float64, float64) {
	return ndcX * v.WorldWidth / 2, ndcY * v.WorldHeight / 2
}

// PixelToNDC maps a pixel position to normalized device coordinates.
func (v Viewport) PixelToNDC(px, py float64) (float64, float64) {
	if v.WidthPx <= 0 || v.HeightPx <= 0 {
		return 0, 0
	}
	return px/v.WidthPx*2 - 1, 1 - py/v.HeightPx*2
}

// PixelsPerUnit returns how many pixels one world unit spans at z = 0.
func (v Viewport) PixelsPerUnit() float64 {
	if v.WorldHeight <= 0 {
		return 0
	}
	return v.HeightPx / v.WorldHeight
}

// WorldToPixel maps a point on the z = 0 plane to pixel coordinates.
func (v Viewport) WorldToPixel(x, y float64) (float64, float64) {
	ppu := v.PixelsPerUnit()
	return v.WidthPx/2 + x*ppu, v.HeightPx/2 - y*ppu
}
