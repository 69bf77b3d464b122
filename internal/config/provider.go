package config

import (
	"github.com/c0np4nn4/dapp-practice/internal/config/api"
	"github.com/c0np4nn4/dapp-practice/internal/config/contract"
	"github.com/c0np4nn4/dapp-practice/internal/config/explorer"
	"github.com/c0np4nn4/dapp-practice/internal/config/log"
	"github.com/c0np4nn4/dapp-practice/internal/config/wallet"
	"github.com/c0np4nn4/dapp-practice/pkg/interfaces/config"
	"github.com/c0np4nn4/dapp-practice/pkg/types"
)

// Provider 实现配置提供者接口
type Provider struct {
	appConfig *types.AppConfig
}

// 编译时校验
var _ config.Provider = (*Provider)(nil)

// NewProvider 创建配置提供者
func NewProvider(appConfig *types.AppConfig) config.Provider {
	if appConfig == nil {
		appConfig = &types.AppConfig{}
	}
	return &Provider{
		appConfig: appConfig,
	}
}

// GetLog 获取日志配置
func (p *Provider) GetLog() *log.LogOptions {
	return log.New(p.appConfig.Log).GetOptions()
}

// GetAPI 获取HTTP服务配置
func (p *Provider) GetAPI() *api.APIOptions {
	return api.New(p.appConfig.API).GetOptions()
}

// GetWallet 获取钱包配置
func (p *Provider) GetWallet() *wallet.WalletOptions {
	return wallet.New(p.appConfig.Wallet).GetOptions()
}

// GetContract 获取合约配置
func (p *Provider) GetContract() *contract.ContractOptions {
	return contract.New(p.appConfig.Contract).GetOptions()
}

// GetExplorer 获取区块浏览器配置
func (p *Provider) GetExplorer() *explorer.ExplorerOptions {
	return explorer.New(p.appConfig.Explorer).GetOptions()
}

// GetAppConfig 获取原始用户配置
func (p *Provider) GetAppConfig() *types.AppConfig {
	return p.appConfig
}
