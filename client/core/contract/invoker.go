// Package contract 调用 NFT 合约的 safeMint
package contract

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/c0np4nn4/dapp-practice/client/core/transport"
)

// defaultPollInterval 回执轮询间隔
const defaultPollInterval = 2 * time.Second

// MintRequest 铸造请求
type MintRequest struct {
	Contract  string         // 合约地址
	Recipient string         // 接收地址
	Sender    common.Address // 发送账户，由钱包签名
}

// MintResult 铸造结果
type MintResult struct {
	TxHash      common.Hash
	BlockNumber uint64
	GasUsed     uint64
	Contract    common.Address
	Recipient   common.Address
}

// Options 调用选项
type Options struct {
	// PollInterval 回执轮询间隔，<=0 使用默认值
	PollInterval time.Duration
	// Timeout 整个铸造过程的超时，0 表示不超时
	Timeout time.Duration
}

// Invoker 铸造调用器，无状态，可并发使用
type Invoker struct {
	abi     abi.ABI
	options Options
	logger  *zap.Logger
}

// NewInvoker 创建铸造调用器
func NewInvoker(parsed abi.ABI, options Options, logger *zap.Logger) *Invoker {
	if options.PollInterval <= 0 {
		options.PollInterval = defaultPollInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Invoker{
		abi:     parsed,
		options: options,
		logger:  logger,
	}
}

// PackMint 编码 safeMint(recipient) 调用数据
func (i *Invoker) PackMint(recipient string) ([]byte, error) {
	to, err := parseAddress("recipient", recipient)
	if err != nil {
		return nil, err
	}
	data, err := i.abi.Pack(MintMethod, to)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return data, nil
}

// Mint 提交 safeMint 交易并等待回执
//
// 前置条件不满足或无法编码时不会与 provider 通信
func (i *Invoker) Mint(ctx context.Context, provider transport.Provider, req MintRequest) (*MintResult, error) {
	if req.Sender == (common.Address{}) {
		return nil, ErrMissingSender
	}
	if strings.TrimSpace(req.Recipient) == "" {
		return nil, ErrMissingRecipient
	}
	if provider == nil {
		return nil, transport.ErrProviderNotFound
	}

	contractAddr, err := parseAddress("contract", req.Contract)
	if err != nil {
		return nil, err
	}
	data, err := i.PackMint(req.Recipient)
	if err != nil {
		return nil, err
	}

	if i.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.options.Timeout)
		defer cancel()
	}

	hash, err := provider.SendTransaction(ctx, transport.TxRequest{
		From: req.Sender,
		To:   contractAddr,
		Data: data,
	})
	if err != nil {
		return nil, err
	}
	i.logger.Info("铸造交易已提交",
		zap.String("tx_hash", hash.Hex()),
		zap.String("contract", contractAddr.Hex()))

	receipt, err := i.waitReceipt(ctx, provider, hash)
	if err != nil {
		return nil, fmt.Errorf("等待交易 %s 回执: %w", hash.Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%w: %s", ErrReverted, hash.Hex())
	}

	result := &MintResult{
		TxHash:    hash,
		GasUsed:   receipt.GasUsed,
		Contract:  contractAddr,
		Recipient: common.HexToAddress(strings.TrimSpace(req.Recipient)),
	}
	if receipt.BlockNumber != nil {
		result.BlockNumber = receipt.BlockNumber.Uint64()
	}
	return result, nil
}

// waitReceipt 轮询回执直到交易上链或 ctx 结束
func (i *Invoker) waitReceipt(ctx context.Context, provider transport.Provider, hash common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(i.options.PollInterval)
	defer ticker.Stop()

	for {
		receipt, err := provider.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			return nil, err
		}
		i.logger.Debug("交易尚未上链", zap.String("tx_hash", hash.Hex()))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func parseAddress(field, value string) (common.Address, error) {
	value = strings.TrimSpace(value)
	if !common.IsHexAddress(value) {
		return common.Address{}, fmt.Errorf("%w: %s %q is not a hex address", ErrEncoding, field, value)
	}
	return common.HexToAddress(value), nil
}
