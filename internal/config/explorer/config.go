// Package explorer 区块浏览器配置
package explorer

import (
	"strings"

	"github.com/c0np4nn4/dapp-practice/pkg/types"
)

// defaultBaseURL 默认使用 Sepolia 测试网浏览器
const defaultBaseURL = "https://sepolia.etherscan.io"

// ExplorerOptions 区块浏览器配置选项
type ExplorerOptions struct {
	BaseURL string `json:"base_url"`
}

// Config 区块浏览器配置实现
type Config struct {
	options *ExplorerOptions
}

// New 创建区块浏览器配置，末尾的 "/" 会被去掉
func New(userConfig *types.UserExplorerConfig) *Config {
	options := &ExplorerOptions{BaseURL: defaultBaseURL}
	if userConfig != nil && userConfig.BaseURL != nil && strings.TrimSpace(*userConfig.BaseURL) != "" {
		options.BaseURL = strings.TrimRight(strings.TrimSpace(*userConfig.BaseURL), "/")
	}
	return &Config{options: options}
}

// GetOptions 获取区块浏览器配置选项
func (c *Config) GetOptions() *ExplorerOptions {
	return c.options
}
