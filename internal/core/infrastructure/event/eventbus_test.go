package event

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/c0np4nn4/dapp-practice/pkg/types"
)

func TestEventBus(t *testing.T) {
	t.Run("同步订阅收到事件", func(t *testing.T) {
		bus := New(nil)
		var got types.WalletConnectedEvent
		require.NoError(t, bus.Subscribe(types.EventWalletConnected, func(e types.WalletConnectedEvent) {
			got = e
		}))
		assert.True(t, bus.HasCallback(types.EventWalletConnected))

		bus.Publish(types.EventWalletConnected, types.WalletConnectedEvent{Account: "0xabc"})
		assert.Equal(t, "0xabc", got.Account)
	})

	t.Run("异步订阅", func(t *testing.T) {
		bus := New(nil)
		var count atomic.Int32
		require.NoError(t, bus.SubscribeAsync(types.EventMintSucceeded, func(types.MintSucceededEvent) {
			count.Add(1)
		}, true))

		for i := 0; i < 5; i++ {
			bus.Publish(types.EventMintSucceeded, types.MintSucceededEvent{})
		}
		bus.WaitAsync()
		assert.EqualValues(t, 5, count.Load())
	})

	t.Run("取消订阅", func(t *testing.T) {
		bus := New(nil)
		handler := func(types.MintFailedEvent) {}
		require.NoError(t, bus.Subscribe(types.EventMintFailed, handler))
		require.NoError(t, bus.Unsubscribe(types.EventMintFailed, handler))
		assert.False(t, bus.HasCallback(types.EventMintFailed))
	})

	t.Run("非函数处理器被拒绝", func(t *testing.T) {
		bus := New(nil)
		assert.Error(t, bus.Subscribe(types.EventMintFailed, "not a func"))
	})

	t.Run("处理器 panic 不影响发布方", func(t *testing.T) {
		core, logs := observer.New(zapcore.ErrorLevel)
		bus := New(zap.New(core))
		require.NoError(t, bus.Subscribe(types.EventMintSubmitted, func(types.MintSubmittedEvent) {
			panic("boom")
		}))

		assert.NotPanics(t, func() {
			bus.Publish(types.EventMintSubmitted, types.MintSubmittedEvent{AttemptID: "1"})
		})
		assert.Equal(t, 1, logs.FilterMessage("事件处理器异常").Len())
	})
}
