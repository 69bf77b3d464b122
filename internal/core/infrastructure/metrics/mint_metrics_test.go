package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eventbus "github.com/c0np4nn4/dapp-practice/internal/core/infrastructure/event"
	"github.com/c0np4nn4/dapp-practice/pkg/types"
)

func newTestMetrics(t *testing.T) (*MintMetrics, *eventbus.EventBus) {
	t.Helper()
	bus := eventbus.New(nil)
	m := NewMintMetrics(prometheus.NewRegistry(), nil)
	require.NoError(t, m.Subscribe(bus))
	return m, bus
}

func TestMintMetrics(t *testing.T) {
	t.Run("钱包连接计数", func(t *testing.T) {
		m, bus := newTestMetrics(t)
		bus.Publish(types.EventWalletConnected, types.WalletConnectedEvent{Account: "0x1"})
		bus.Publish(types.EventWalletConnectFailed, types.WalletConnectFailedEvent{Reason: "rejected"})
		bus.Publish(types.EventWalletConnectFailed, types.WalletConnectFailedEvent{Reason: "rejected"})

		assert.Equal(t, 1.0, testutil.ToFloat64(m.connectCounter.WithLabelValues("success")))
		assert.Equal(t, 2.0, testutil.ToFloat64(m.connectCounter.WithLabelValues("rejected")))
	})

	t.Run("铸造成功与失败", func(t *testing.T) {
		m, bus := newTestMetrics(t)
		bus.Publish(types.EventMintSubmitted, types.MintSubmittedEvent{AttemptID: "a"})
		bus.Publish(types.EventMintSubmitted, types.MintSubmittedEvent{AttemptID: "b"})
		assert.Equal(t, 2.0, testutil.ToFloat64(m.mintsInFlight))

		bus.Publish(types.EventMintSucceeded, types.MintSucceededEvent{AttemptID: "a", Duration: time.Second})
		bus.Publish(types.EventMintFailed, types.MintFailedEvent{AttemptID: "b", Kind: "reverted", Err: errors.New("x")})

		assert.Equal(t, 0.0, testutil.ToFloat64(m.mintsInFlight))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.mintCounter.WithLabelValues("success", "")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.mintCounter.WithLabelValues("failure", "reverted")))
		assert.Equal(t, 2, testutil.CollectAndCount(m.mintDuration))
	})

	t.Run("注册表包含运行时指标", func(t *testing.T) {
		reg := NewRegistry()
		NewMintMetrics(reg, nil)
		families, err := reg.Gather()
		require.NoError(t, err)

		names := make(map[string]bool, len(families))
		for _, f := range families {
			names[f.GetName()] = true
		}
		assert.True(t, names["go_goroutines"])
		assert.True(t, names["mintdapp_mint_in_flight"])
	})
}
