package main

import "embed"

// cmd/fieldterm/data/motion.yaml 是根目录 data/motion.yaml 的副本，修改配置时两处保持一致。
//
//go:embed data/motion.yaml
var dataFS embed.FS
