package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"

	logmodule "github.com/c0np4nn4/dapp-practice/internal/core/infrastructure/log"
	"github.com/c0np4nn4/dapp-practice/pkg/interfaces/infrastructure/event"
)

// RegistryOutput 同一个注册表以两种身份提供：注册指标与 /metrics 采集
type RegistryOutput struct {
	fx.Out

	Registry   *prometheus.Registry
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// MintMetricsInput 定义 MintMetrics 的输入依赖
type MintMetricsInput struct {
	fx.In

	Registerer prometheus.Registerer
	EventBus   event.EventBus
	Logger     *zap.Logger `optional:"true"`
}

// Module 返回 metrics 模块
//
// 提供：
// - *prometheus.Registry / Registerer / Gatherer
// - *MintMetrics（启动时订阅事件总线）
func Module() fx.Option {
	return fx.Module("metrics",
		fx.Provide(
			func() RegistryOutput {
				reg := NewRegistry()
				return RegistryOutput{Registry: reg, Registerer: reg, Gatherer: reg}
			},
			func(in MintMetricsInput) (*MintMetrics, error) {
				m := NewMintMetrics(in.Registerer, logmodule.NewModuleZapLogger(in.Logger, "metrics"))
				if err := m.Subscribe(in.EventBus); err != nil {
					return nil, err
				}
				return m, nil
			},
		),
		fx.Invoke(func(*MintMetrics) {}),
	)
}
