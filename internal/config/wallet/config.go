// Package wallet 钱包连接配置
package wallet

import (
	"strings"
	"time"

	"github.com/c0np4nn4/dapp-practice/pkg/types"
)

// WalletOptions 钱包配置选项
type WalletOptions struct {
	ProviderEndpoint string        `json:"provider_endpoint"` // EIP-1193 JSON-RPC 端点
	ConnectTimeout   time.Duration `json:"connect_timeout"`   // 0 表示不超时
}

// Config 钱包配置实现
type Config struct {
	options *WalletOptions
}

// New 创建钱包配置实现
//
// 无法解析的时长保持默认值，由 config.ValidateAppConfig 负责报告
func New(userConfig *types.UserWalletConfig) *Config {
	options := &WalletOptions{
		ProviderEndpoint: defaultProviderEndpoint,
		ConnectTimeout:   defaultConnectTimeout,
	}
	if userConfig != nil {
		if userConfig.ProviderEndpoint != nil {
			options.ProviderEndpoint = strings.TrimSpace(*userConfig.ProviderEndpoint)
		}
		if userConfig.ConnectTimeout != nil {
			if d, err := time.ParseDuration(*userConfig.ConnectTimeout); err == nil && d >= 0 {
				options.ConnectTimeout = d
			}
		}
	}
	return &Config{options: options}
}

// GetOptions 获取钱包配置选项
func (c *Config) GetOptions() *WalletOptions {
	return c.options
}

// HasProvider 是否配置了钱包 provider
func (o *WalletOptions) HasProvider() bool {
	return o.ProviderEndpoint != ""
}
