package app

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/c0np4nn4/dapp-practice/client/core/contract"
	"github.com/c0np4nn4/dapp-practice/client/core/dapp"
	"github.com/c0np4nn4/dapp-practice/client/core/explorer"
	"github.com/c0np4nn4/dapp-practice/client/core/transport"
	"github.com/c0np4nn4/dapp-practice/client/core/wallet"
	contractconfig "github.com/c0np4nn4/dapp-practice/internal/config/contract"
	explorerconfig "github.com/c0np4nn4/dapp-practice/internal/config/explorer"
	walletconfig "github.com/c0np4nn4/dapp-practice/internal/config/wallet"
	logmodule "github.com/c0np4nn4/dapp-practice/internal/core/infrastructure/log"
	"github.com/c0np4nn4/dapp-practice/pkg/interfaces/infrastructure/event"
)

// WalletModule 钱包模块
//
// 提供：
// - transport.Detector（按配置端点探测 provider，停止时关闭连接）
// - *wallet.Manager
func WalletModule() fx.Option {
	return fx.Module("wallet",
		fx.Provide(
			func(lc fx.Lifecycle, opts *walletconfig.WalletOptions, logger *zap.Logger) transport.Detector {
				if !opts.HasProvider() {
					logmodule.NewModuleZapLogger(logger, "wallet").Warn("未配置钱包 provider 端点，连接钱包时将提示安装")
				}
				detector := transport.NewEndpointDetector(opts.ProviderEndpoint)
				lc.Append(fx.Hook{
					OnStop: func(context.Context) error {
						detector.Close()
						return nil
					},
				})
				return detector
			},
			func(detector transport.Detector, logger *zap.Logger) *wallet.Manager {
				return wallet.NewManager(detector, logmodule.NewModuleZapLogger(logger, "wallet"))
			},
		),
	)
}

// ContractModule 合约模块，提供 *contract.Invoker
func ContractModule() fx.Option {
	return fx.Module("contract",
		fx.Provide(
			func(opts *contractconfig.ContractOptions, logger *zap.Logger) (*contract.Invoker, error) {
				parsed, err := contract.LoadABI(opts.ABIFile)
				if err != nil {
					return nil, fmt.Errorf("加载合约 ABI 失败: %w", err)
				}
				return contract.NewInvoker(parsed, contract.Options{
					PollInterval: opts.ReceiptPollInterval,
					Timeout:      opts.MintTimeout,
				}, logmodule.NewModuleZapLogger(logger, "contract")), nil
			},
		),
	)
}

// ControllerParams 页面控制器依赖
type ControllerParams struct {
	fx.In

	Wallet         *wallet.Manager
	Invoker        *contract.Invoker
	Contracts      *contractconfig.ContractOptions
	ExplorerConfig *explorerconfig.ExplorerOptions
	WalletConfig   *walletconfig.WalletOptions
	EventBus       event.EventBus `optional:"true"`
	Logger         *zap.Logger
}

// DappModule 页面模块
//
// 提供：
// - *dapp.Registry
// - *explorer.Explorer
// - *dapp.Controller
func DappModule() fx.Option {
	return fx.Module("dapp",
		fx.Provide(
			NewRegistry,
			func(opts *explorerconfig.ExplorerOptions) *explorer.Explorer {
				return explorer.New(opts.BaseURL)
			},
			func(p ControllerParams, registry *dapp.Registry, exp *explorer.Explorer) *dapp.Controller {
				return dapp.NewController(dapp.Deps{
					Wallet:         p.Wallet,
					Minter:         p.Invoker,
					Registry:       registry,
					Explorer:       exp,
					EventBus:       p.EventBus,
					Logger:         logmodule.NewModuleZapLogger(p.Logger, "dapp"),
					ConnectTimeout: p.WalletConfig.ConnectTimeout,
				})
			},
		),
	)
}

// NewRegistry 由合约配置创建注册表
func NewRegistry(opts *contractconfig.ContractOptions) (*dapp.Registry, error) {
	entries := make([]dapp.ContractEntry, len(opts.Registry))
	for i, e := range opts.Registry {
		entries[i] = dapp.ContractEntry{Label: e.Label, Address: e.Address}
	}
	return dapp.NewRegistry(entries)
}
