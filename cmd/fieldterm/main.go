// Package main 在终端中运行粒子场演示
//
// Usage:
//
//	go run ./cmd/fieldterm [flags]
//
// Flags:
//
//	--config <path>    Motion config file (default: embedded data/motion.yaml)
//	--fps <n>          Frame rate (default 60)
//	--count <n>        Override particle count (terminal cells are coarse, default 600)
//	--reduced-motion   Start with reduced motion enabled
//	--log <path>       Write debug logs to a file (the terminal is busy)
//
// Controls:
//
//	Mouse move        - Move the target point
//	Wheel/Up/Down     - Scroll the document
//	PgUp/PgDn         - Scroll one screen
//	r                 - Toggle reduced motion
//	s                 - Cycle particle shape
//	a                 - Toggle auto animate
//	+ / -             - More/fewer particles
//	q/Escape          - Quit
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/decker502/antigravity/pkg/app"
	"github.com/decker502/antigravity/pkg/config"
	"github.com/decker502/antigravity/pkg/embedded"
	"github.com/decker502/antigravity/pkg/frame"
	"github.com/decker502/antigravity/pkg/render"
	"github.com/decker502/antigravity/pkg/scenes"
)

var (
	configFlag        = flag.String("config", "", "Motion config file (default: embedded data/motion.yaml)")
	fpsFlag           = flag.Int("fps", 60, "Frames per second")
	countFlag         = flag.Int("count", 600, "Particle count override (-1 keeps the config value)")
	reducedMotionFlag = flag.Bool("reduced-motion", false, "Start with reduced motion enabled")
	logFlag           = flag.String("log", "", "Debug log file")
)

// 终端中一个单元按 1×2 像素计算，区块尺寸相应缩小
var terminalSections = []scenes.Section{
	{Label: "About", HeightPx: 24},
	{Label: "Projects", HeightPx: 40},
	{Label: "Experience", HeightPx: 32},
	{Label: "Contact", HeightPx: 20},
}

const terminalSectionGapPx = 16

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fieldterm: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig 读取外部配置；path 为空时使用嵌入的 data/motion.yaml
func loadConfig(path string) (*config.MotionConfig, error) {
	if path == "" {
		embedded.Init(dataFS)
	}
	return app.LoadConfig(path)
}

func run() error {
	if *logFlag != "" {
		f, err := os.Create(*logFlag)
		if err != nil {
			return fmt.Errorf("failed to create log file: %w", err)
		}
		defer f.Close()
		app.SetupLoggingTo(f, true)
	} else {
		app.SetupLogging(false)
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		return err
	}
	if *countFlag >= 0 {
		cfg.Field.Count = min(*countFlag, config.MaxParticleCount)
	}
	particleColor, err := cfg.Field.ParticleColor()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	term := render.NewTerminal(screen, particleColor)
	vp := term.Viewport()
	clock := frame.NewSystemTime()
	p := scenes.NewPortfolio(scenes.PortfolioOptions{
		Config:               cfg,
		Clock:                clock,
		Sections:             terminalSections,
		SectionGapPx:         terminalSectionGapPx,
		PrefersReducedMotion: *reducedMotionFlag,
		WidthPx:              int(vp.WidthPx),
		HeightPx:             int(vp.HeightPx),
	})
	defer p.Close()

	fps := max(*fpsFlag, 1)
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	// PollEvent 阻塞，放在单独的 goroutine 中，通过 channel 交给帧循环
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(screen.PollEvent, events, done)

	var scroll smoothScroll

	log.Info().Str("component", "fieldterm").Int("fps", fps).Msg("started")
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
				vp := term.Viewport()
				p.Resize(int(vp.WidthPx), int(vp.HeightPx))
				continue
			}
			if handleEvent(p, &scroll, ev) {
				return nil
			}

		case <-ticker.C:
			sample := p.Tick(clock.NowMs())
			scroll.Step(p, sample.DeltaSeconds)
			term.Draw(p.Transforms(), p.Viewport(), p.Shape(), p.Panels(), p.Status()+"  [q]uit [r]educed [s]hape [a]uto [+/-]")
		}
	}
}
