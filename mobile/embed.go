//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// mobile/data/motion.yaml 是根目录 data/motion.yaml 的副本，修改配置时两处保持一致。
package mobile

import "embed"

//go:embed data/motion.yaml
var dataFS embed.FS
