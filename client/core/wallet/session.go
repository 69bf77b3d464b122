// Package wallet 钱包会话管理
//
// 会话在第一次成功连接时建立，进程生命周期内不会断开；再次连接成功会替换会话。
package wallet

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/c0np4nn4/dapp-practice/client/core/transport"
)

var (
	// ErrNoAccounts provider 没有返回任何账户
	ErrNoAccounts = errors.New("wallet returned no accounts")

	// ErrInvalidAccount provider 返回的账户不是合法地址
	ErrInvalidAccount = errors.New("wallet returned an invalid account")
)

// Session 钱包会话
type Session struct {
	Account   common.Address
	Connected bool
	ChainID   *big.Int // provider 未返回时为 nil
}

// Manager 钱包会话管理器，并发安全
type Manager struct {
	detector transport.Detector
	logger   *zap.Logger

	mu       sync.RWMutex
	session  *Session
	provider transport.Provider
}

// NewManager 创建会话管理器
func NewManager(detector transport.Detector, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		detector: detector,
		logger:   logger,
	}
}

// Connect 请求钱包授权并建立会话
//
// 失败时原会话保持不变；不重试，超时只来自调用方的 ctx
func (m *Manager) Connect(ctx context.Context) (*Session, error) {
	provider, err := m.detector.Detect(ctx)
	if err != nil {
		return nil, err
	}

	accounts, err := provider.RequestAccounts(ctx)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, ErrNoAccounts
	}

	first := strings.TrimSpace(accounts[0])
	if !common.IsHexAddress(first) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAccount, accounts[0])
	}

	session := &Session{
		Account:   common.HexToAddress(first),
		Connected: true,
	}
	if id, err := provider.ChainID(ctx); err == nil {
		session.ChainID = id
	} else {
		m.logger.Debug("获取链ID失败", zap.Error(err))
	}

	m.mu.Lock()
	m.session = session
	m.provider = provider
	m.mu.Unlock()

	m.logger.Info("钱包已连接",
		zap.String("account", session.Account.Hex()),
		zap.Int("accounts", len(accounts)))

	copied := *session
	return &copied, nil
}

// Session 返回当前会话的副本
func (m *Manager) Session() (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session == nil {
		return Session{}, false
	}
	return *m.session, true
}

// Account 返回当前账户
func (m *Manager) Account() (common.Address, bool) {
	s, ok := m.Session()
	return s.Account, ok
}

// Provider 返回建立会话时使用的 provider，未连接时为 nil
func (m *Manager) Provider() transport.Provider {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.provider
}
