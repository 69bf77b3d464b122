package contract

import (
	"context"
	"errors"

	"github.com/c0np4nn4/dapp-practice/client/core/transport"
)

var (
	// ErrMissingSender 没有发送账户
	ErrMissingSender = errors.New("sender account is required")

	// ErrMissingRecipient 没有接收地址
	ErrMissingRecipient = errors.New("recipient address is required")

	// ErrEncoding 无法构造调用数据（地址格式错误等）
	ErrEncoding = errors.New("cannot encode contract call")

	// ErrReverted 交易已上链但执行失败
	ErrReverted = errors.New("transaction reverted")
)

// FailureKind 铸造失败分类，只用于日志和指标
type FailureKind string

const (
	FailureRejected FailureKind = "rejected"
	FailureReverted FailureKind = "reverted"
	FailureNetwork  FailureKind = "network"
	FailureEncoding FailureKind = "encoding"
	FailureUnknown  FailureKind = "unknown"
)

// Classify 对铸造错误分类；nil 返回空字符串
func Classify(err error) FailureKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, transport.ErrUserRejected):
		return FailureRejected
	case errors.Is(err, ErrReverted):
		return FailureReverted
	case errors.Is(err, ErrEncoding), errors.Is(err, ErrMissingSender), errors.Is(err, ErrMissingRecipient):
		return FailureEncoding
	case errors.Is(err, transport.ErrNetwork),
		errors.Is(err, transport.ErrProviderNotFound),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return FailureNetwork
	default:
		return FailureUnknown
	}
}
