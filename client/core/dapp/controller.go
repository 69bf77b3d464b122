// Package dapp 铸造页面控制器
//
// 控制器持有页面状态（选择的合约、接收地址、消息、铸造状态、交易链接），
// 把钱包与合约层的错误转换为页面消息；错误不会继续向上传递。
// Web 页面和控制台界面共用同一个控制器。
package dapp

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/c0np4nn4/dapp-practice/client/core/contract"
	"github.com/c0np4nn4/dapp-practice/client/core/explorer"
	"github.com/c0np4nn4/dapp-practice/client/core/transport"
	"github.com/c0np4nn4/dapp-practice/client/core/wallet"
	"github.com/c0np4nn4/dapp-practice/pkg/interfaces/infrastructure/event"
	"github.com/c0np4nn4/dapp-practice/pkg/types"
)

// WalletSession 钱包会话
type WalletSession interface {
	Connect(ctx context.Context) (*wallet.Session, error)
	Session() (wallet.Session, bool)
	Provider() transport.Provider
}

// Minter 铸造调用
type Minter interface {
	Mint(ctx context.Context, provider transport.Provider, req contract.MintRequest) (*contract.MintResult, error)
}

// Deps 控制器依赖
type Deps struct {
	Wallet   WalletSession
	Minter   Minter
	Registry *Registry
	Explorer *explorer.Explorer
	EventBus event.EventBus // 可选
	Logger   *zap.Logger    // 可选

	// ConnectTimeout 连接钱包超时，0 表示不超时
	ConnectTimeout time.Duration
}

// Controller 页面控制器，并发安全
//
// 锁只保护页面状态，不在网络调用期间持有；
// 重叠的铸造互不阻塞，最后完成的一次决定显示结果
type Controller struct {
	wallet         WalletSession
	minter         Minter
	registry       *Registry
	explorer       *explorer.Explorer
	bus            event.EventBus
	logger         *zap.Logger
	connectTimeout time.Duration

	mu          sync.Mutex
	selected    string
	recipient   string
	message     string
	messageKind MessageKind
	attempt     AttemptState
	txHash      string
	txURL       string
}

// NewController 创建页面控制器
func NewController(deps Deps) *Controller {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	exp := deps.Explorer
	if exp == nil {
		exp = explorer.New("")
	}
	return &Controller{
		wallet:         deps.Wallet,
		minter:         deps.Minter,
		registry:       deps.Registry,
		explorer:       exp,
		bus:            deps.EventBus,
		logger:         logger,
		connectTimeout: deps.ConnectTimeout,
		selected:       deps.Registry.Default().Address,
		messageKind:    MessageNone,
		attempt:        AttemptIdle,
	}
}

// Registry 返回合约注册表
func (c *Controller) Registry() *Registry {
	return c.registry
}

// View 返回一致的页面状态快照
func (c *Controller) View() View {
	session, connected := c.wallet.Session()

	c.mu.Lock()
	v := View{
		Connected:        connected && session.Connected,
		Contracts:        c.registry.Entries(),
		SelectedContract: c.selected,
		ContractURL:      c.explorer.AddressLink(common.HexToAddress(c.selected)),
		Recipient:        c.recipient,
		Message:          c.message,
		MessageKind:      c.messageKind,
		Attempt:          c.attempt,
		TxHash:           c.txHash,
		TxURL:            c.txURL,
	}
	c.mu.Unlock()

	if v.Connected {
		v.Account = session.Account.Hex()
		if session.ChainID != nil {
			v.ChainID = session.ChainID.String()
		}
	}
	return v
}

// ConnectWallet 连接钱包并更新页面消息
func (c *Controller) ConnectWallet(ctx context.Context) View {
	if c.connectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.connectTimeout)
		defer cancel()
	}

	session, err := c.wallet.Connect(ctx)
	switch {
	case errors.Is(err, transport.ErrProviderNotFound):
		c.logger.Warn("没有可用的钱包 provider", zap.Error(err))
		c.setMessage(MsgInstallWallet, MessageError)
		c.publish(types.EventWalletConnectFailed, types.WalletConnectFailedEvent{Reason: "provider_not_found", Err: err})
	case err != nil:
		c.logger.Warn("钱包连接失败", zap.Error(err))
		c.setMessage(MsgConnectFailed+err.Error(), MessageError)
		c.publish(types.EventWalletConnectFailed, types.WalletConnectFailedEvent{Reason: connectFailureReason(err), Err: err})
	default:
		c.setMessage(MsgConnected, MessageSuccess)
		c.publish(types.EventWalletConnected, types.WalletConnectedEvent{
			Account: session.Account.Hex(),
			ChainID: session.ChainID,
		})
	}
	return c.View()
}

// SelectContract 选择合约；不在注册表中时返回 ErrUnknownContract，选择不变
func (c *Controller) SelectContract(address string) error {
	entry, ok := c.registry.Lookup(address)
	if !ok {
		return ErrUnknownContract
	}
	c.mu.Lock()
	c.selected = entry.Address
	c.mu.Unlock()
	return nil
}

// SetRecipient 设置接收地址（不做格式校验）
func (c *Controller) SetRecipient(recipient string) {
	c.mu.Lock()
	c.recipient = recipient
	c.mu.Unlock()
}

// Submit 选择合约、设置接收地址并铸造
func (c *Controller) Submit(ctx context.Context, contractAddr, recipient string) (View, error) {
	if err := c.SelectContract(contractAddr); err != nil {
		return c.View(), err
	}
	c.SetRecipient(recipient)
	return c.Mint(ctx), nil
}

// Mint 使用当前选择的合约和接收地址铸造
//
// 未连接或接收地址为空时只给出提示，不与合约交互
func (c *Controller) Mint(ctx context.Context) View {
	session, connected := c.wallet.Session()

	c.mu.Lock()
	c.txHash, c.txURL = "", ""
	req := contract.MintRequest{
		Contract:  c.selected,
		Recipient: strings.TrimSpace(c.recipient),
		Sender:    session.Account,
	}
	switch {
	case !connected || !session.Connected:
		c.message, c.messageKind = MsgConnectFirst, MessageError
		c.attempt = AttemptIdle
		c.mu.Unlock()
		return c.View()
	case req.Recipient == "":
		c.message, c.messageKind = MsgRecipientRequired, MessageError
		c.attempt = AttemptIdle
		c.mu.Unlock()
		return c.View()
	}
	c.message, c.messageKind = MsgMinting, MessageInfo
	c.attempt = AttemptPending
	c.mu.Unlock()

	attemptID := uuid.NewString()
	started := time.Now()
	c.publish(types.EventMintSubmitted, types.MintSubmittedEvent{
		AttemptID: attemptID,
		Contract:  req.Contract,
		Recipient: req.Recipient,
		Sender:    req.Sender.Hex(),
	})

	result, err := c.minter.Mint(ctx, c.wallet.Provider(), req)
	if err != nil {
		c.fail(attemptID, req, err, time.Since(started))
		return c.View()
	}

	c.mu.Lock()
	c.txHash = result.TxHash.Hex()
	c.txURL = c.explorer.Link(result.TxHash)
	c.message, c.messageKind = MsgMintSucceeded, MessageSuccess
	c.attempt = AttemptSucceeded
	c.mu.Unlock()

	c.logger.Info("铸造成功",
		zap.String("attempt_id", attemptID),
		zap.String("tx_hash", result.TxHash.Hex()),
		zap.Uint64("block_number", result.BlockNumber))
	c.publish(types.EventMintSucceeded, types.MintSucceededEvent{
		AttemptID:   attemptID,
		TxHash:      result.TxHash.Hex(),
		BlockNumber: result.BlockNumber,
		Duration:    time.Since(started),
	})
	return c.View()
}

// fail 记录诊断日志并显示统一的失败消息
func (c *Controller) fail(attemptID string, req contract.MintRequest, err error, elapsed time.Duration) {
	kind := contract.Classify(err)

	c.mu.Lock()
	c.txHash, c.txURL = "", ""
	c.message, c.messageKind = MsgMintFailed, MessageError
	c.attempt = AttemptFailed
	c.mu.Unlock()

	fields := []zap.Field{
		zap.String("attempt_id", attemptID),
		zap.String("failure_kind", string(kind)),
		zap.String("contract", req.Contract),
		zap.String("recipient", req.Recipient),
		zap.String("sender", req.Sender.Hex()),
		zap.Error(err),
	}
	if code, ok := transport.ErrorCode(err); ok {
		fields = append(fields, zap.Int("rpc_code", code))
	}
	c.logger.Error("铸造失败", fields...)

	c.publish(types.EventMintFailed, types.MintFailedEvent{
		AttemptID: attemptID,
		Kind:      string(kind),
		Err:       err,
		Duration:  elapsed,
	})
}

func (c *Controller) setMessage(msg string, kind MessageKind) {
	c.mu.Lock()
	c.message, c.messageKind = msg, kind
	c.mu.Unlock()
}

func (c *Controller) publish(topic types.EventType, payload interface{}) {
	if c.bus != nil {
		c.bus.Publish(topic, payload)
	}
}

func connectFailureReason(err error) string {
	switch {
	case errors.Is(err, transport.ErrUserRejected):
		return "rejected"
	case errors.Is(err, wallet.ErrNoAccounts), errors.Is(err, wallet.ErrInvalidAccount):
		return "no_accounts"
	default:
		return "error"
	}
}
