// Package main 启动 Antigravity 窗口演示
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose          Enable verbose logging
//	--config <path>    Load motion config from a file instead of the embedded default
//	--reduced-motion   Start with reduced motion enabled
//	--no-save          Do not read or write persisted settings
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/antigravity/pkg/app"
	"github.com/decker502/antigravity/pkg/embedded"
)

var (
	verboseFlag       = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	configFlag        = flag.String("config", "", "Motion config file (default: embedded data/motion.yaml)")
	reducedMotionFlag = flag.Bool("reduced-motion", false, "Start with reduced motion enabled")
	noSaveFlag        = flag.Bool("no-save", false, "Do not persist settings")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:              *verboseFlag,
		ConfigPath:           *configFlag,
		PrefersReducedMotion: *reducedMotionFlag,
		NoSave:               *noSaveFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(app.DefaultWindowWidth, app.DefaultWindowHeight)
	ebiten.SetWindowTitle("Antigravity")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// 每个显示帧更新一次，帧间隔由真实时间戳折算
	ebiten.SetTPS(ebiten.SyncWithFPS)

	err = ebiten.RunGame(gameApp)
	gameApp.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintf(os.Stderr, "运行失败: %v\n", err)
		os.Exit(1)
	}
}
