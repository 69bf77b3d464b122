package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/c0np4nn4/dapp-practice/pkg/interfaces/infrastructure/event"
	"github.com/c0np4nn4/dapp-practice/pkg/types"
)

// MintMetrics 钱包连接与铸造指标
//
// 通过订阅事件总线更新，业务代码不直接依赖本包
type MintMetrics struct {
	logger         *zap.Logger
	connectCounter *prometheus.CounterVec
	mintCounter    *prometheus.CounterVec
	mintDuration   *prometheus.HistogramVec
	mintsInFlight  prometheus.Gauge
}

// NewMintMetrics 创建并注册指标
func NewMintMetrics(reg prometheus.Registerer, logger *zap.Logger) *MintMetrics {
	if logger == nil {
		logger = zap.NewNop()
	}
	factory := promauto.With(reg)

	return &MintMetrics{
		logger: logger,
		connectCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: "wallet",
				Name:      "connect_total",
				Help:      "Total number of wallet connection attempts",
			},
			[]string{"result"},
		),
		mintCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: "mint",
				Name:      "attempts_total",
				Help:      "Total number of finished mint attempts",
			},
			[]string{"result", "failure_kind"},
		),
		mintDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Subsystem: "mint",
				Name:      "duration_seconds",
				Help:      "Time from submission to receipt or failure",
				Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120, 300},
			},
			[]string{"result"},
		),
		mintsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Subsystem: "mint",
				Name:      "in_flight",
				Help:      "Mint attempts waiting for a receipt",
			},
		),
	}
}

// Subscribe 订阅钱包与铸造事件
func (m *MintMetrics) Subscribe(bus event.EventBus) error {
	handlers := []struct {
		topic   types.EventType
		handler interface{}
	}{
		{types.EventWalletConnected, m.onWalletConnected},
		{types.EventWalletConnectFailed, m.onWalletConnectFailed},
		{types.EventMintSubmitted, m.onMintSubmitted},
		{types.EventMintSucceeded, m.onMintSucceeded},
		{types.EventMintFailed, m.onMintFailed},
	}
	for _, h := range handlers {
		if err := bus.Subscribe(h.topic, h.handler); err != nil {
			return fmt.Errorf("订阅 %s 失败: %w", h.topic, err)
		}
	}
	m.logger.Debug("铸造指标已订阅事件总线")
	return nil
}

func (m *MintMetrics) onWalletConnected(types.WalletConnectedEvent) {
	m.connectCounter.WithLabelValues("success").Inc()
}

func (m *MintMetrics) onWalletConnectFailed(e types.WalletConnectFailedEvent) {
	m.connectCounter.WithLabelValues(e.Reason).Inc()
}

func (m *MintMetrics) onMintSubmitted(types.MintSubmittedEvent) {
	m.mintsInFlight.Inc()
}

func (m *MintMetrics) onMintSucceeded(e types.MintSucceededEvent) {
	m.mintsInFlight.Dec()
	m.mintCounter.WithLabelValues("success", "").Inc()
	m.mintDuration.WithLabelValues("success").Observe(e.Duration.Seconds())
}

func (m *MintMetrics) onMintFailed(e types.MintFailedEvent) {
	m.mintsInFlight.Dec()
	m.mintCounter.WithLabelValues("failure", e.Kind).Inc()
	m.mintDuration.WithLabelValues("failure").Observe(e.Duration.Seconds())
}
