// Package transport 钱包 provider 传输层
//
// provider 是一个兼容 EIP-1193 的 JSON-RPC 端点（本地签名器、钱包桥接或开发节点），
// 由它持有私钥并完成签名，客户端只发送未签名的交易请求。
package transport

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

// Provider 钱包 provider 接口
type Provider interface {
	// RequestAccounts 请求账户授权（eth_requestAccounts），返回 provider 给出的原始地址列表
	RequestAccounts(ctx context.Context) ([]string, error)

	// SendTransaction 提交交易，由 provider 签名（eth_sendTransaction）
	SendTransaction(ctx context.Context, tx TxRequest) (common.Hash, error)

	// TransactionReceipt 查询交易回执；交易未上链时返回 ethereum.NotFound
	TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)

	// ChainID 查询链ID（eth_chainId）
	ChainID(ctx context.Context) (*big.Int, error)

	// Close 关闭底层连接
	Close()
}

// Detector 探测环境中的钱包 provider
type Detector interface {
	// Detect 返回可用的 provider；没有 provider 时返回 ErrProviderNotFound
	Detect(ctx context.Context) (Provider, error)
}

// TxRequest eth_sendTransaction 的交易参数
//
// 不设置 gas、gasPrice 和 nonce，交给 provider 决定
type TxRequest struct {
	From common.Address `json:"from"`
	To   common.Address `json:"to"`
	Data hexutil.Bytes  `json:"data"`
}
