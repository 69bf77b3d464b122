// Package config provides configuration provider interfaces.
package config

import (
	apiconfig "github.com/c0np4nn4/dapp-practice/internal/config/api"
	contractconfig "github.com/c0np4nn4/dapp-practice/internal/config/contract"
	explorerconfig "github.com/c0np4nn4/dapp-practice/internal/config/explorer"
	logconfig "github.com/c0np4nn4/dapp-practice/internal/config/log"
	walletconfig "github.com/c0np4nn4/dapp-practice/internal/config/wallet"
	"github.com/c0np4nn4/dapp-practice/pkg/types"
)

// Provider 配置提供者接口
type Provider interface {
	// GetLog 获取日志配置
	GetLog() *logconfig.LogOptions

	// GetAPI 获取HTTP服务配置
	GetAPI() *apiconfig.APIOptions

	// GetWallet 获取钱包配置
	GetWallet() *walletconfig.WalletOptions

	// GetContract 获取合约注册表与铸造配置
	GetContract() *contractconfig.ContractOptions

	// GetExplorer 获取区块浏览器配置
	GetExplorer() *explorerconfig.ExplorerOptions

	// GetAppConfig 获取原始用户配置
	GetAppConfig() *types.AppConfig
}
