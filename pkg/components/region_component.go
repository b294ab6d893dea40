package components

import "github.com/decker502/antigravity/pkg/visibility"

// RegionComponent 元素在文档中的布局矩形
// 可见性观察读取它的实时值，布局变化后直接修改 Bounds 即可
type RegionComponent struct {
	Bounds visibility.Rect
	Label  string // 调试与渲染用的名称
}
