package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/decker502/antigravity/pkg/config"
	"github.com/decker502/antigravity/pkg/frame"
	"github.com/decker502/antigravity/pkg/render"
	"github.com/decker502/antigravity/pkg/scenes"
)

// snapOptions 离线模拟参数
type snapOptions struct {
	Frames        int
	Hz            float64
	Width, Height int
	Pointer       *[2]float64 // nil 表示指针不存在
	ScrollPx      float64
	ReducedMotion bool
}

// simulate 以固定刷新率推进 Portfolio 并把最后一帧画到画布上
//
// 时间戳与指针空闲判断共用一个手动时钟，结果与运行速度无关。
func simulate(cfg *config.MotionConfig, opts snapOptions) (*render.Snapshot, error) {
	if opts.Frames < 1 {
		return nil, fmt.Errorf("frames must be at least 1, got %d", opts.Frames)
	}
	if opts.Hz <= 0 {
		return nil, fmt.Errorf("hz must be positive, got %.2f", opts.Hz)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", opts.Width, opts.Height)
	}
	particleColor, err := cfg.Field.ParticleColor()
	if err != nil {
		return nil, err
	}

	clock := frame.NewManualTime(0)
	p := scenes.NewPortfolio(scenes.PortfolioOptions{
		Config:               cfg,
		Clock:                clock,
		PrefersReducedMotion: opts.ReducedMotion,
		WidthPx:              opts.Width,
		HeightPx:             opts.Height,
	})
	defer p.Close()

	if opts.Pointer != nil {
		p.SetPointerPixels(opts.Pointer[0], opts.Pointer[1], true)
	}
	p.Scroll(opts.ScrollPx)

	stepMs := 1000 / opts.Hz
	for i := 0; i < opts.Frames; i++ {
		clock.Set(float64(i) * stepMs)
		p.Tick(clock.NowMs())
	}

	snap := render.NewSnapshot(opts.Width, opts.Height, particleColor)
	if err := snap.Draw(p.Transforms(), p.Viewport(), p.Shape(), p.Panels()); err != nil {
		snap.Close()
		return nil, err
	}
	return snap, nil
}

// parsePoint 解析 "x,y"
func parsePoint(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid point %q, want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid x in %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid y in %q: %w", s, err)
	}
	return x, y, nil
}
