// Package event 基于asaskevich/EventBus的事件总线实现
package event

import (
	"fmt"

	evbus "github.com/asaskevich/EventBus"
	"go.uber.org/zap"

	"github.com/c0np4nn4/dapp-practice/pkg/interfaces/infrastructure/event"
)

// EventBus 是 asaskevich/EventBus 的薄封装
//
// 处理器 panic 不会影响发布方：同步处理器的 panic 被恢复并记录
type EventBus struct {
	bus    evbus.Bus
	logger *zap.Logger
}

// 编译时校验
var _ event.EventBus = (*EventBus)(nil)

// New 创建事件总线实例
func New(logger *zap.Logger) *EventBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventBus{
		bus:    evbus.New(),
		logger: logger,
	}
}

// Subscribe 实现订阅
func (eb *EventBus) Subscribe(eventType event.EventType, handler interface{}) error {
	if err := eb.bus.Subscribe(string(eventType), handler); err != nil {
		return fmt.Errorf("订阅事件 %s 失败: %w", eventType, err)
	}
	return nil
}

// SubscribeAsync 实现异步订阅
func (eb *EventBus) SubscribeAsync(eventType event.EventType, handler interface{}, transactional bool) error {
	if err := eb.bus.SubscribeAsync(string(eventType), handler, transactional); err != nil {
		return fmt.Errorf("异步订阅事件 %s 失败: %w", eventType, err)
	}
	return nil
}

// Publish 实现发布
func (eb *EventBus) Publish(eventType event.EventType, args ...interface{}) {
	defer func() {
		if r := recover(); r != nil {
			eb.logger.Error("事件处理器异常",
				zap.String("event", string(eventType)),
				zap.Any("panic", r))
		}
	}()
	eb.bus.Publish(string(eventType), args...)
}

// Unsubscribe 取消订阅
func (eb *EventBus) Unsubscribe(eventType event.EventType, handler interface{}) error {
	return eb.bus.Unsubscribe(string(eventType), handler)
}

// WaitAsync 等待异步处理完成
func (eb *EventBus) WaitAsync() {
	eb.bus.WaitAsync()
}

// HasCallback 检查是否有回调
func (eb *EventBus) HasCallback(eventType event.EventType) bool {
	return eb.bus.HasCallback(string(eventType))
}
