// Package configs 内置的默认配置文件
package configs

import _ "embed"

//go:embed mintdapp.json
var defaultConfig []byte

// GetDefaultConfig 获取内置的默认配置（与 configs/mintdapp.json 相同）
func GetDefaultConfig() []byte {
	return defaultConfig
}
