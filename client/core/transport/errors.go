package transport

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/rpc"
)

// CodeUserRejected EIP-1193 用户拒绝请求的错误码
const CodeUserRejected = 4001

var (
	// ErrProviderNotFound 环境中没有钱包 provider
	ErrProviderNotFound = errors.New("wallet provider not found")

	// ErrUserRejected 用户在钱包中拒绝了请求
	ErrUserRejected = errors.New("user rejected request")

	// ErrNetwork 与 provider 的通信失败（连接、HTTP状态、编解码）
	ErrNetwork = errors.New("provider unreachable")
)

// wrapCallError 按错误来源包装 RPC 调用错误，原始错误保留在链上
func wrapCallError(method string, err error) error {
	var rpcErr rpc.Error
	switch {
	case errors.As(err, &rpcErr) && rpcErr.ErrorCode() == CodeUserRejected:
		return fmt.Errorf("%w: %w", ErrUserRejected, err)
	case errors.As(err, &rpcErr):
		return fmt.Errorf("%s: %w", method, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w", method, err)
	default:
		return fmt.Errorf("%s: %w: %w", method, ErrNetwork, err)
	}
}

// ErrorCode 取出 provider 返回的 JSON-RPC 错误码
func ErrorCode(err error) (int, bool) {
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return rpcErr.ErrorCode(), true
	}
	return 0, false
}
