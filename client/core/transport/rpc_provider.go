package transport

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

// RPCProvider 基于 go-ethereum rpc.Client 的 provider 实现
//
// 账户授权与发送交易使用原始 RPC 调用，回执与链ID复用 ethclient
type RPCProvider struct {
	rpc *rpc.Client
	eth *ethclient.Client
}

// 编译时校验
var _ Provider = (*RPCProvider)(nil)

// NewRPCProvider 包装已建立的 RPC 连接
func NewRPCProvider(client *rpc.Client) *RPCProvider {
	return &RPCProvider{
		rpc: client,
		eth: ethclient.NewClient(client),
	}
}

// RequestAccounts 请求账户授权
func (p *RPCProvider) RequestAccounts(ctx context.Context) ([]string, error) {
	var accounts []string
	if err := p.rpc.CallContext(ctx, &accounts, "eth_requestAccounts"); err != nil {
		return nil, wrapCallError("eth_requestAccounts", err)
	}
	return accounts, nil
}

// SendTransaction 提交交易
func (p *RPCProvider) SendTransaction(ctx context.Context, tx TxRequest) (common.Hash, error) {
	var hash common.Hash
	if err := p.rpc.CallContext(ctx, &hash, "eth_sendTransaction", tx); err != nil {
		return common.Hash{}, wrapCallError("eth_sendTransaction", err)
	}
	return hash, nil
}

// TransactionReceipt 查询交易回执
func (p *RPCProvider) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	receipt, err := p.eth.TransactionReceipt(ctx, hash)
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return nil, err
		}
		return nil, wrapCallError("eth_getTransactionReceipt", err)
	}
	return receipt, nil
}

// ChainID 查询链ID
func (p *RPCProvider) ChainID(ctx context.Context) (*big.Int, error) {
	id, err := p.eth.ChainID(ctx)
	if err != nil {
		return nil, wrapCallError("eth_chainId", err)
	}
	return id, nil
}

// Close 关闭连接
func (p *RPCProvider) Close() {
	p.rpc.Close()
}
