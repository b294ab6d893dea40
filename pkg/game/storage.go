package game

import (
	"github.com/quasilyte/gdata/v2"
	"github.com/rs/zerolog/log"
)

// AppName gdata 存储目录名
const AppName = "antigravity"

// OpenStorage 打开跨平台存储
//
// 打开失败（如只读文件系统、受限沙箱）时返回 nil，
// 调用方以降级模式继续运行。
func OpenStorage(appName string) *gdata.Manager {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Warn().Str("component", "Storage").Err(err).Str("app", appName).
			Msg("persistent storage unavailable, settings will not be saved")
		return nil
	}
	return manager
}
