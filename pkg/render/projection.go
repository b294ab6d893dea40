// Package render 把粒子场与显现元素的输出转换为屏幕上的图元
//
// 模拟层只产出世界坐标的 Transform 与 Pose，本包负责透视投影、
// 形状轮廓与深度排序，供 ebiten、gg（离线 PNG）和 tcell（终端）三个后端共用。
package render

import (
	"math"
	"sort"

	"github.com/decker502/antigravity/pkg/components"
	"github.com/decker502/antigravity/pkg/utils"
)

// particleRadiusWorld is the world-space radius of a particle at scale 1.
const particleRadiusWorld = 0.25

// Sprite is a particle projected onto the screen.
type Sprite struct {
	X, Y   float64 // 屏幕像素坐标
	Radius float64 // 像素半径
	Angle  float64 // 屏幕平面内的朝向（弧度，逆时针）
	Aspect float64 // 胶囊/方块沿朝向的拉伸，随自转变化 [0.35, 1]
	Depth  float64 // 世界 z，越大越靠近相机
	Alpha  float64 // 按深度衰减的不透明度
}

// Project maps one particle transform to screen space with a perspective
// camera at utils.DefaultCameraZ. It reports false for particles behind the
// camera or on an empty viewport.
func Project(tr components.Transform, vp utils.Viewport) (Sprite, bool) {
	ppu := vp.PixelsPerUnit()
	if ppu <= 0 {
		return Sprite{}, false
	}
	distance := utils.DefaultCameraZ - tr.Position.Z
	if distance <= 0 {
		return Sprite{}, false
	}
	persp := utils.DefaultCameraZ / distance

	return Sprite{
		X:      vp.WidthPx/2 + tr.Position.X*ppu*persp,
		Y:      vp.HeightPx/2 - tr.Position.Y*ppu*persp,
		Radius: tr.Scale * particleRadiusWorld * ppu * persp,
		// 屏幕 Y 轴向下，角度取反
		Angle:  -tr.Rotation.Z,
		Aspect: 0.35 + 0.65*math.Abs(math.Sin(tr.Rotation.X)),
		Depth:  tr.Position.Z,
		Alpha:  utils.Clamp(0.55+0.45*(tr.Position.Z+10)/20, 0.2, 1),
	}, true
}

// ProjectAll projects every transform into dst (reusing its capacity) and
// sorts the result back to front.
func ProjectAll(transforms []components.Transform, vp utils.Viewport, dst []Sprite) []Sprite {
	dst = dst[:0]
	for _, tr := range transforms {
		if s, ok := Project(tr, vp); ok {
			dst = append(dst, s)
		}
	}
	sort.SliceStable(dst, func(i, j int) bool { return dst[i].Depth < dst[j].Depth })
	return dst
}
