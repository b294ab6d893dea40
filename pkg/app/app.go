// Package app 提供演示程序的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/decker502/antigravity/pkg/config"
	"github.com/decker502/antigravity/pkg/frame"
	"github.com/decker502/antigravity/pkg/game"
	"github.com/decker502/antigravity/pkg/scenes"
)

// 默认窗口尺寸
const (
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 720
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部配置文件路径，为空则使用嵌入的 data/motion.yaml
	ConfigPath string
	// PrefersReducedMotion 启动时即开启"减少动态效果"
	PrefersReducedMotion bool
	// NoSave 不读写持久化设置
	NoSave bool
}

// SetupLogging 配置全局 zerolog 日志
//
// 非 verbose 模式下关闭所有日志；verbose 模式下以可读格式输出到 stderr。
func SetupLogging(verbose bool) {
	SetupLoggingTo(os.Stderr, verbose)
}

// SetupLoggingTo 与 SetupLogging 相同，但输出到指定 writer
func SetupLoggingTo(w io.Writer, verbose bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w})
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}
}

// LoadConfig 加载动画配置
//
// 参数：
//   - path: 外部配置文件路径；为空时读取嵌入配置（需要先调用 embedded.Init()）
func LoadConfig(path string) (*config.MotionConfig, error) {
	if path != "" {
		cfg, err := config.LoadMotionConfig(path)
		if err != nil {
			return nil, fmt.Errorf("配置加载失败 %s: %w", path, err)
		}
		log.Info().Str("component", "App").Str("path", path).Msg("loaded motion config")
		return cfg, nil
	}
	cfg, err := config.LoadEmbeddedMotionConfig()
	if err != nil {
		return nil, fmt.Errorf("嵌入配置加载失败: %w", err)
	}
	return cfg, nil
}

// App 是演示程序的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	clock        *frame.SystemTime
}

// NewApp 创建并初始化应用
//
// 调用此函数前，如果 cfg.ConfigPath 为空，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	SetupLogging(cfg.Verbose)

	motionCfg, err := LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	var settings *game.SettingsManager
	if !cfg.NoSave {
		settings = game.NewSettingsManager(game.OpenStorage(game.AppName), motionCfg.Field)
	}

	// 帧时间戳与指针空闲判断共用同一个墙钟
	clock := frame.NewSystemTime()
	portfolio := scenes.NewPortfolio(scenes.PortfolioOptions{
		Config:               motionCfg,
		Settings:             settings,
		Clock:                clock,
		PrefersReducedMotion: cfg.PrefersReducedMotion,
		WidthPx:              DefaultWindowWidth,
		HeightPx:             DefaultWindowHeight,
	})

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewPortfolioScene(portfolio))

	log.Info().Str("component", "App").Bool("persist", settings != nil).Msg("app initialized")
	return &App{
		sceneManager: sceneManager,
		clock:        clock,
	}, nil
}

// Update 更新逻辑
// 每个 tick 调用一次；TPS 与显示器刷新率同步，帧间隔由真实时间戳决定
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	return a.sceneManager.Update(a.clock.NowMs())
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
// 逻辑尺寸跟随窗口尺寸，布局与渲染策略（窄屏）随之更新
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return DefaultWindowWidth, DefaultWindowHeight
	}
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Close 保存设置
func (a *App) Close() {
	if !a.sceneManager.SaveOnExit() {
		log.Warn().Str("component", "App").Msg("settings were not saved on exit")
	}
}
