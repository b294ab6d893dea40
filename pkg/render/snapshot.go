package render

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/antigravity/pkg/components"
	"github.com/decker502/antigravity/pkg/config"
	"github.com/decker502/antigravity/pkg/utils"
)

// Snapshot rasterizes a frame offline with the gg software renderer.
type Snapshot struct {
	dc         *gg.Context
	background gg.RGBA
	particle   gg.RGBA
	panel      gg.RGBA

	sprites []Sprite
	outline []Point
}

// NewSnapshot creates a width×height canvas drawing particles in the given color.
func NewSnapshot(width, height int, particle colorful.Color) *Snapshot {
	return &Snapshot{
		dc:         gg.NewContext(width, height),
		background: gg.Hex("#0b0b12"),
		particle:   gg.RGB(particle.R, particle.G, particle.B),
		panel:      gg.Hex("#f4f1ff"),
	}
}

// Draw clears the canvas and paints panels below the particle field.
func (s *Snapshot) Draw(transforms []components.Transform, vp utils.Viewport, shape config.ShapeKind, panels []Panel) error {
	dc := s.dc
	dc.ClearWithColor(s.background)

	for _, p := range panels {
		if !p.Visible() {
			continue
		}
		r := p.Placement()
		dc.SetRGBA(s.panel.R, s.panel.G, s.panel.B, 0.12*p.Pose.Opacity)
		dc.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, 12)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("fill panel %q: %w", p.Label, err)
		}
	}

	s.sprites = ProjectAll(transforms, vp, s.sprites)
	for _, sp := range s.sprites {
		s.outline = Outline(shape, sp, s.outline)
		if len(s.outline) < 3 {
			continue
		}
		dc.SetRGBA(s.particle.R, s.particle.G, s.particle.B, sp.Alpha)
		dc.MoveTo(s.outline[0].X, s.outline[0].Y)
		for _, pt := range s.outline[1:] {
			dc.LineTo(pt.X, pt.Y)
		}
		dc.ClosePath()
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("fill particle: %w", err)
		}
	}
	return nil
}

// Image returns the rendered canvas.
func (s *Snapshot) Image() image.Image {
	return s.dc.Image()
}

// SavePNG writes the canvas to path.
func (s *Snapshot) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	return nil
}

// Close releases the drawing context.
func (s *Snapshot) Close() error {
	return s.dc.Close()
}
