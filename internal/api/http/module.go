package http

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/c0np4nn4/dapp-practice/client/core/dapp"
	apiconfig "github.com/c0np4nn4/dapp-practice/internal/config/api"
	logmodule "github.com/c0np4nn4/dapp-practice/internal/core/infrastructure/log"
)

// ServerParams HTTP模块的依赖参数
type ServerParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Options    *apiconfig.APIOptions
	Controller *dapp.Controller
	Registerer prometheus.Registerer `optional:"true"`
	Gatherer   prometheus.Gatherer   `optional:"true"`
	Logger     *zap.Logger           `optional:"true"`
}

// Module 返回HTTP模块
func Module() fx.Option {
	return fx.Module("http",
		fx.Provide(ProvideServer),
		fx.Invoke(func(*Server) {}),
	)
}

// ProvideServer 创建服务器并注册生命周期钩子
func ProvideServer(params ServerParams) (*Server, error) {
	server, err := NewServer(ServerDeps{
		Options:    params.Options,
		Controller: params.Controller,
		Registerer: params.Registerer,
		Gatherer:   params.Gatherer,
		Logger:     logmodule.NewModuleZapLogger(params.Logger, "api"),
	})
	if err != nil {
		return nil, err
	}

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return server.Start()
		},
		OnStop: func(ctx context.Context) error {
			return server.Stop(ctx)
		},
	})
	return server, nil
}
