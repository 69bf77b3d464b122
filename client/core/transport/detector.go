package transport

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/rpc"
)

// DialFunc 建立 RPC 连接
type DialFunc func(ctx context.Context, endpoint string) (*rpc.Client, error)

// EndpointDetector 按配置的端点探测 provider
//
// 第一次成功拨号并应答后缓存 provider，后续调用直接复用；
// 拨号失败或端点无法访问时不缓存，下一次调用会重新尝试
type EndpointDetector struct {
	endpoint string
	dial     DialFunc

	mu       sync.Mutex
	provider *RPCProvider
}

// 编译时校验
var _ Detector = (*EndpointDetector)(nil)

// DetectorOption 探测器选项
type DetectorOption func(*EndpointDetector)

// WithDialer 替换拨号函数（测试中用于进程内 RPC）
func WithDialer(dial DialFunc) DetectorOption {
	return func(d *EndpointDetector) {
		d.dial = dial
	}
}

// NewEndpointDetector 创建探测器；endpoint 为空表示没有 provider
func NewEndpointDetector(endpoint string, opts ...DetectorOption) *EndpointDetector {
	d := &EndpointDetector{
		endpoint: strings.TrimSpace(endpoint),
		dial:     rpc.DialContext,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect 返回缓存的或新拨号的 provider
func (d *EndpointDetector) Detect(ctx context.Context) (Provider, error) {
	if d.endpoint == "" {
		return nil, ErrProviderNotFound
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.provider != nil {
		return d.provider, nil
	}

	client, err := d.dial(ctx, d.endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %w", ErrProviderNotFound, d.endpoint, err)
	}

	// http(s) 拨号不会建立连接，用 eth_chainId 确认端点上确实有 provider
	provider := NewRPCProvider(client)
	if _, err := provider.ChainID(ctx); err != nil {
		switch {
		case errors.Is(err, ErrNetwork):
			provider.Close()
			return nil, fmt.Errorf("%w: %s: %w", ErrProviderNotFound, d.endpoint, err)
		case ctx.Err() != nil:
			provider.Close()
			return nil, err
		}
	}
	d.provider = provider
	return d.provider, nil
}

// Close 关闭缓存的 provider
func (d *EndpointDetector) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.provider != nil {
		d.provider.Close()
		d.provider = nil
	}
}

// StaticDetector 总是返回同一个 provider；Provider 为 nil 表示没有 provider
type StaticDetector struct {
	Provider Provider
}

// Detect 实现 Detector
func (d StaticDetector) Detect(context.Context) (Provider, error) {
	if d.Provider == nil {
		return nil, ErrProviderNotFound
	}
	return d.Provider, nil
}
