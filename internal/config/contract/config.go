// Package contract 合约注册表与铸造配置
package contract

import (
	"strings"
	"time"

	"github.com/c0np4nn4/dapp-practice/pkg/types"
)

// Entry 注册表中的一个合约
type Entry struct {
	Label   string `json:"label"`
	Address string `json:"address"`
}

// ContractOptions 合约配置选项
type ContractOptions struct {
	ABIFile             string        `json:"abi_file"`              // 空表示使用内置 ABI
	Registry            []Entry       `json:"registry"`              // 有序，第一个为默认选择
	MintTimeout         time.Duration `json:"mint_timeout"`          // 0 表示不超时
	ReceiptPollInterval time.Duration `json:"receipt_poll_interval"` // 回执轮询间隔
}

// Config 合约配置实现
type Config struct {
	options *ContractOptions
}

// New 创建合约配置实现
//
// 用户提供的注册表整体替换默认注册表；地址格式由 config.ValidateAppConfig 校验
func New(userConfig *types.UserContractConfig) *Config {
	options := &ContractOptions{
		Registry:            []Entry{{Label: defaultContractLabel, Address: defaultContractAddress}},
		MintTimeout:         defaultMintTimeout,
		ReceiptPollInterval: defaultReceiptPollInterval,
	}
	if userConfig != nil {
		applyUserContractConfig(options, userConfig)
	}
	return &Config{options: options}
}

func applyUserContractConfig(options *ContractOptions, userConfig *types.UserContractConfig) {
	if userConfig.ABIFile != nil {
		options.ABIFile = strings.TrimSpace(*userConfig.ABIFile)
	}
	if userConfig.Registry != nil {
		registry := make([]Entry, 0, len(userConfig.Registry))
		for _, e := range userConfig.Registry {
			registry = append(registry, Entry{
				Label:   strings.TrimSpace(e.Label),
				Address: strings.TrimSpace(e.Address),
			})
		}
		options.Registry = registry
	}
	if userConfig.MintTimeout != nil {
		if d, err := time.ParseDuration(*userConfig.MintTimeout); err == nil && d >= 0 {
			options.MintTimeout = d
		}
	}
	if userConfig.ReceiptPollInterval != nil {
		if d, err := time.ParseDuration(*userConfig.ReceiptPollInterval); err == nil && d > 0 {
			options.ReceiptPollInterval = d
		}
	}
}

// GetOptions 获取合约配置选项
func (c *Config) GetOptions() *ContractOptions {
	return c.options
}
