// Package config 提供应用配置管理功能
package config

import (
	apiconfig "github.com/c0np4nn4/dapp-practice/internal/config/api"
	contractconfig "github.com/c0np4nn4/dapp-practice/internal/config/contract"
	explorerconfig "github.com/c0np4nn4/dapp-practice/internal/config/explorer"
	walletconfig "github.com/c0np4nn4/dapp-practice/internal/config/wallet"
	"github.com/c0np4nn4/dapp-practice/pkg/interfaces/config"
	"github.com/c0np4nn4/dapp-practice/pkg/types"
	"go.uber.org/fx"
)

// ConfigParams 定义配置模块的依赖参数
type ConfigParams struct {
	fx.In

	// 应用配置选项
	AppOptions config.AppOptions `optional:"true"`
}

// ConfigOutput 定义配置模块的输出结构
type ConfigOutput struct {
	fx.Out

	// 配置提供者
	Provider config.Provider
}

// Module 返回配置模块
func Module() fx.Option {
	return fx.Module("config",
		fx.Provide(
			ProvideConfigServices,
			// 提供具体的配置类型用于依赖注入
			func(provider config.Provider) *apiconfig.APIOptions {
				return provider.GetAPI()
			},
			func(provider config.Provider) *walletconfig.WalletOptions {
				return provider.GetWallet()
			},
			func(provider config.Provider) *contractconfig.ContractOptions {
				return provider.GetContract()
			},
			func(provider config.Provider) *explorerconfig.ExplorerOptions {
				return provider.GetExplorer()
			},
		),
	)
}

// ProvideConfigServices 提供配置服务
func ProvideConfigServices(params ConfigParams) (ConfigOutput, error) {
	var appConfig *types.AppConfig
	if params.AppOptions != nil {
		appConfig = params.AppOptions.GetAppConfig()
	}
	if err := ValidateAppConfig(appConfig); err != nil {
		return ConfigOutput{}, err
	}

	return ConfigOutput{
		Provider: NewProvider(appConfig),
	}, nil
}
