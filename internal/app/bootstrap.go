package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/fx"

	"github.com/c0np4nn4/dapp-practice/client/core/dapp"
	apihttp "github.com/c0np4nn4/dapp-practice/internal/api/http"
	config "github.com/c0np4nn4/dapp-practice/internal/config"
	"github.com/c0np4nn4/dapp-practice/internal/core/infrastructure/event"
	log "github.com/c0np4nn4/dapp-practice/internal/core/infrastructure/log"
	"github.com/c0np4nn4/dapp-practice/internal/core/infrastructure/metrics"
	configiface "github.com/c0np4nn4/dapp-practice/pkg/interfaces/config"
	logiface "github.com/c0np4nn4/dapp-practice/pkg/interfaces/infrastructure/log"
)

// Framework layers
const (
	// 基础设施层
	LayerInfrastructure = "infrastructure"
	// 业务逻辑层
	LayerBusiness = "business"
	// 应用层
	LayerApplication = "application"
)

// startTimeout 启动所有模块的最长时间
const startTimeout = 30 * time.Second

// Bootstrap 应用引导程序
type Bootstrap struct {
	opts  *options
	fxApp *fx.App

	controller *dapp.Controller
	logger     logiface.Logger
}

// NewBootstrap 创建引导程序
func NewBootstrap(opts *options) *Bootstrap {
	return &Bootstrap{opts: opts}
}

// SetupInfrastructureLayer 设置基础设施层模块
func (b *Bootstrap) SetupInfrastructureLayer() []fx.Option {
	return []fx.Option{
		fx.Provide(func() configiface.AppOptions { return b.opts }),
		config.Module(),  // 1. 配置(不依赖其他)
		log.Module(),     // 2. 日志(依赖配置)
		event.Module(),   // 3. 事件(依赖日志)
		metrics.Module(), // 4. 指标(依赖事件)
	}
}

// SetupBusinessLayer 设置业务逻辑层模块
func (b *Bootstrap) SetupBusinessLayer() []fx.Option {
	return []fx.Option{
		WalletModule(),
		ContractModule(),
		DappModule(),
	}
}

// SetupApplicationLayer 设置应用层模块
func (b *Bootstrap) SetupApplicationLayer() []fx.Option {
	var modules []fx.Option
	if b.opts.enableAPI {
		modules = append(modules, apihttp.Module())
	}
	modules = append(modules, b.opts.extra...)
	return modules
}

// SetupModules 设置所有应用模块
func (b *Bootstrap) SetupModules() []fx.Option {
	var all []fx.Option
	all = append(all, b.SetupInfrastructureLayer()...)
	all = append(all, b.SetupBusinessLayer()...)
	all = append(all, b.SetupApplicationLayer()...)
	return all
}

// CreateFxApp 创建并配置fx应用
func (b *Bootstrap) CreateFxApp() error {
	if err := b.opts.resolve(); err != nil {
		return fmt.Errorf("加载配置失败: %w", err)
	}

	b.fxApp = fx.New(
		fx.Options(b.SetupModules()...),
		fx.Populate(&b.controller, &b.logger),
		// 禁用fx内部日志
		fx.NopLogger,
	)
	return b.fxApp.Err()
}

// StartApp 启动应用程序
func (b *Bootstrap) StartApp(ctx context.Context) error {
	if err := b.fxApp.Start(ctx); err != nil {
		return fmt.Errorf("启动应用失败: %w", err)
	}
	return nil
}

// StopApp 停止应用程序
func (b *Bootstrap) StopApp(ctx context.Context) error {
	if err := b.fxApp.Stop(ctx); err != nil {
		return fmt.Errorf("停止应用失败: %w", err)
	}
	return nil
}

// BootstrapApp 执行完整的引导过程并返回已启动的应用
func BootstrapApp(options ...Option) (App, error) {
	bootstrap := NewBootstrap(newOptions(options...))
	if err := bootstrap.CreateFxApp(); err != nil {
		return nil, fmt.Errorf("创建应用失败: %w", err)
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), startTimeout)
	defer cancel()
	if err := bootstrap.StartApp(startupCtx); err != nil {
		return nil, err
	}

	return &internalApp{bootstrap: bootstrap}, nil
}
