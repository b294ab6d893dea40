// Package main 离线模拟粒子场并输出 PNG
//
// 以任意刷新率推进固定帧数，用于比较不同刷新率下的运动是否一致，
// 以及在没有显示器的环境中检查效果。
//
// Usage:
//
//	go run ./cmd/fieldsnap --frames 180 --hz 144 --out field.png
//
// Flags:
//
//	--frames <n>       Number of frames to simulate (default 180)
//	--hz <n>           Simulated refresh rate (default 60)
//	--width/--height   Canvas size in pixels (default 1280x720)
//	--pointer <x,y>    Pointer position in pixels; empty leaves the pointer idle
//	--scroll <px>      Document scroll before rendering
//	--shape <name>     capsule | sphere | box | tetrahedron
//	--seed <n>         Random seed (default 1)
//	--reduced-motion   Simulate with reduced motion
//	--config <path>    Motion config file
//	--out <path>       Output PNG path (default field.png)
//	--verbose          Enable verbose logging
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/decker502/antigravity/pkg/app"
	"github.com/decker502/antigravity/pkg/config"
)

var (
	framesFlag        = flag.Int("frames", 180, "Number of frames to simulate")
	hzFlag            = flag.Float64("hz", 60, "Simulated refresh rate")
	widthFlag         = flag.Int("width", 1280, "Canvas width")
	heightFlag        = flag.Int("height", 720, "Canvas height")
	pointerFlag       = flag.String("pointer", "", "Pointer position in pixels, e.g. 640,360")
	scrollFlag        = flag.Float64("scroll", 0, "Document scroll in pixels")
	shapeFlag         = flag.String("shape", "", "Particle shape override")
	seedFlag          = flag.Int64("seed", 1, "Random seed")
	reducedMotionFlag = flag.Bool("reduced-motion", false, "Simulate with reduced motion")
	configFlag        = flag.String("config", "", "Motion config file (default: built-in defaults)")
	outFlag           = flag.String("out", "field.png", "Output PNG path")
	verboseFlag       = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

func main() {
	flag.Parse()
	app.SetupLogging(*verboseFlag)

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fieldsnap: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.DefaultMotionConfig()
	if *configFlag != "" {
		loaded, err := config.LoadMotionConfig(*configFlag)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *shapeFlag != "" {
		shape := config.ShapeKind(*shapeFlag)
		if !shape.Valid() {
			return fmt.Errorf("unknown shape %q", *shapeFlag)
		}
		cfg.Field.Shape = shape
	}
	cfg.Field.Seed = *seedFlag

	opts := snapOptions{
		Frames:        *framesFlag,
		Hz:            *hzFlag,
		Width:         *widthFlag,
		Height:        *heightFlag,
		ScrollPx:      *scrollFlag,
		ReducedMotion: *reducedMotionFlag,
	}
	if *pointerFlag != "" {
		x, y, err := parsePoint(*pointerFlag)
		if err != nil {
			return err
		}
		opts.Pointer = &[2]float64{x, y}
	}

	snap, err := simulate(cfg, opts)
	if err != nil {
		return err
	}
	defer snap.Close()

	if err := snap.SavePNG(*outFlag); err != nil {
		return err
	}
	log.Info().Str("component", "fieldsnap").Str("out", *outFlag).Int("frames", opts.Frames).
		Float64("hz", opts.Hz).Msg("snapshot written")
	fmt.Println(*outFlag)
	return nil
}
