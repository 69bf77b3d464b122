package event

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	logmodule "github.com/c0np4nn4/dapp-practice/internal/core/infrastructure/log"
	eventInterface "github.com/c0np4nn4/dapp-practice/pkg/interfaces/infrastructure/event"
)

// ModuleInput 事件模块输入依赖
type ModuleInput struct {
	fx.In

	ZapLogger *zap.Logger  `optional:"true"`
	Lifecycle fx.Lifecycle // 生命周期管理
}

// ModuleOutput 事件模块输出服务
type ModuleOutput struct {
	fx.Out

	EventBus eventInterface.EventBus // 基础事件总线
}

// Module 返回事件模块
func Module() fx.Option {
	return fx.Module("event",
		fx.Provide(
			func(input ModuleInput) ModuleOutput {
				bus := New(logmodule.NewModuleZapLogger(input.ZapLogger, "event"))
				// 停止时等待异步处理器结束
				input.Lifecycle.Append(fx.Hook{
					OnStop: func(context.Context) error {
						bus.WaitAsync()
						return nil
					},
				})
				return ModuleOutput{EventBus: bus}
			},
		),
	)
}
