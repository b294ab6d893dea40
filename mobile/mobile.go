//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.antigravity -o build/android/antigravity.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Antigravity.xcframework -v ./mobile
package mobile

import (
	"github.com/hajimehoshi/ebiten/v2/mobile"
	"github.com/rs/zerolog/log"

	"github.com/decker502/antigravity/pkg/app"
	"github.com/decker502/antigravity/pkg/embedded"
)

func init() {
	embedded.Init(dataFS)

	// 移动端视口通常小于窄屏断点，布局与显现姿态自动切换到窄屏参数
	gameApp, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatal().Err(err).Msg("初始化失败")
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
