package render

import (
	"math"

	"github.com/decker502/antigravity/pkg/config"
)

// Point is a screen-space vertex.
type Point struct {
	X, Y float64
}

const circleSegments = 16

// Outline returns the closed polygon drawn for a sprite of the given shape.
// Vertices are appended to dst, which may be nil.
func Outline(kind config.ShapeKind, s Sprite, dst []Point) []Point {
	dst = dst[:0]
	switch kind {
	case config.ShapeSphere:
		return appendEllipse(dst, s, s.Radius, s.Radius)
	case config.ShapeBox:
		h := s.Radius * 0.9
		return appendRotated(dst, s, []Point{{-h, -h * s.Aspect}, {h, -h * s.Aspect}, {h, h * s.Aspect}, {-h, h * s.Aspect}})
	case config.ShapeTetrahedron:
		r := s.Radius * 1.1
		pts := make([]Point, 3)
		for i := range pts {
			a := -math.Pi/2 + float64(i)*2*math.Pi/3
			pts[i] = Point{r * math.Cos(a), r * math.Sin(a) * (0.5 + 0.5*s.Aspect)}
		}
		return appendRotated(dst, s, pts)
	default:
		return appendCapsule(dst, s)
	}
}

// appendCapsule builds a stadium: two half circles joined along the sprite
// angle. Its length shrinks as the particle tumbles away from the screen.
func appendCapsule(dst []Point, s Sprite) []Point {
	r := s.Radius * 0.45
	half := s.Radius * 1.4 * s.Aspect
	const arc = circleSegments / 2
	var pts []Point
	for i := 0; i <= arc; i++ {
		a := -math.Pi/2 + math.Pi*float64(i)/arc
		pts = append(pts, Point{half + r*math.Cos(a), r * math.Sin(a)})
	}
	for i := 0; i <= arc; i++ {
		a := math.Pi/2 + math.Pi*float64(i)/arc
		pts = append(pts, Point{-half + r*math.Cos(a), r * math.Sin(a)})
	}
	return appendRotated(dst, s, pts)
}

func appendEllipse(dst []Point, s Sprite, rx, ry float64) []Point {
	for i := 0; i < circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		dst = append(dst, Point{s.X + rx*math.Cos(a), s.Y + ry*math.Sin(a)})
	}
	return dst
}

func appendRotated(dst []Point, s Sprite, local []Point) []Point {
	sin, cos := math.Sincos(s.Angle)
	for _, p := range local {
		dst = append(dst, Point{
			X: s.X + p.X*cos - p.Y*sin,
			Y: s.Y + p.X*sin + p.Y*cos,
		})
	}
	return dst
}

// Glyph returns the terminal rune for a shape; tiny sprites collapse to a dot.
func Glyph(kind config.ShapeKind, s Sprite, cellPx float64) rune {
	if s.Radius < cellPx*0.25 {
		return '·'
	}
	switch kind {
	case config.ShapeSphere:
		return '●'
	case config.ShapeBox:
		return '■'
	case config.ShapeTetrahedron:
		return '▲'
	}
	// 胶囊按朝向选字符
	a := math.Mod(s.Angle, math.Pi)
	if a < 0 {
		a += math.Pi
	}
	switch {
	case a < math.Pi/8 || a > 7*math.Pi/8:
		return '━'
	case a < 3*math.Pi/8:
		return '╲'
	case a < 5*math.Pi/8:
		return '┃'
	default:
		return '╱'
	}
}
