package types

import (
	"math/big"
	"time"
)

// EventType 事件类型
type EventType string

// 钱包与铸造事件
const (
	EventWalletConnected     EventType = "wallet:connected"
	EventWalletConnectFailed EventType = "wallet:connect_failed"
	EventMintSubmitted       EventType = "mint:submitted"
	EventMintSucceeded       EventType = "mint:succeeded"
	EventMintFailed          EventType = "mint:failed"
)

// WalletConnectedEvent 钱包连接成功
type WalletConnectedEvent struct {
	Account string
	ChainID *big.Int // provider 未返回时为 nil
}

// WalletConnectFailedEvent 钱包连接失败
type WalletConnectFailedEvent struct {
	// Reason 取值：provider_not_found / rejected / no_accounts / error
	Reason string
	Err    error
}

// MintSubmittedEvent 铸造请求已开始（通过校验后）
type MintSubmittedEvent struct {
	AttemptID string
	Contract  string
	Recipient string
	Sender    string
}

// MintSucceededEvent 铸造成功
type MintSucceededEvent struct {
	AttemptID   string
	TxHash      string
	BlockNumber uint64
	Duration    time.Duration
}

// MintFailedEvent 铸造失败
type MintFailedEvent struct {
	AttemptID string
	Kind      string // rejected / reverted / network / encoding / unknown
	Err       error
	Duration  time.Duration
}
