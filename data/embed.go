// Package data 嵌入默认配置文件
//
// 通过 embedded.Init(data.FS) 注册后，以 "data/eyes.yaml" 的路径访问。
package data

import "embed"

// FS 包含 eyes.yaml
//
//go:embed eyes.yaml
var FS embed.FS
