// Package providertest 提供进程内的模拟钱包 provider，供各层测试使用
package providertest

import (
	"context"
	"encoding/binary"
	"errors"
	"math/big"
	"net"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/c0np4nn4/dapp-practice/client/core/transport"
)

// RejectedError 模拟 EIP-1193 的用户拒绝错误（code 4001）
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string { return e.Message }

// ErrorCode 实现 rpc.Error
func (e *RejectedError) ErrorCode() int { return transport.CodeUserRejected }

// Wallet 模拟钱包，以 "eth" 命名空间注册到 rpc.Server
//
// 导出字段在启动前设置；运行中通过 Set* 方法修改
type Wallet struct {
	mu sync.Mutex

	accounts      []string
	rejectConnect bool
	rejectSend    bool
	sendErr       error
	revert        bool
	pendingPolls  int
	chainID       int64
	blockNumber   uint64

	sent     []transport.TxRequest
	receipts map[common.Hash]*pendingReceipt

	connectCalls int
}

type pendingReceipt struct {
	remaining int
	receipt   *types.Receipt
}

// NewWallet 创建模拟钱包（Sepolia 链ID）
func NewWallet(accounts ...string) *Wallet {
	return &Wallet{
		accounts:    accounts,
		chainID:     11155111,
		blockNumber: 100,
		receipts:    make(map[common.Hash]*pendingReceipt),
	}
}

// SetRejectConnect 设置账户授权时用户拒绝
func (w *Wallet) SetRejectConnect(reject bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.rejectConnect = reject
}

// SetRejectSend 设置发送交易时用户拒绝
func (w *Wallet) SetRejectSend(reject bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.rejectSend = reject
}

// SetSendError 设置发送交易时返回的普通错误
func (w *Wallet) SetSendError(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.sendErr = err
}

// SetRevert 设置后续交易执行失败（回执 status=0）
func (w *Wallet) SetRevert(revert bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.revert = revert
}

// SetPendingPolls 设置回执在返回前需要被查询为空的次数
func (w *Wallet) SetPendingPolls(n int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pendingPolls = n
}

// Sent 返回收到的交易请求
func (w *Wallet) Sent() []transport.TxRequest {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]transport.TxRequest(nil), w.sent...)
}

// ConnectCalls 返回 eth_requestAccounts 被调用的次数
func (w *Wallet) ConnectCalls() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.connectCalls
}

// RequestAccounts eth_requestAccounts
func (w *Wallet) RequestAccounts() ([]string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.connectCalls++
	if w.rejectConnect {
		return nil, &RejectedError{Message: "User rejected the request."}
	}
	return append([]string{}, w.accounts...), nil
}

// SendTransaction eth_sendTransaction
func (w *Wallet) SendTransaction(tx transport.TxRequest) (common.Hash, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.rejectSend {
		return common.Hash{}, &RejectedError{Message: "User denied transaction signature."}
	}
	if w.sendErr != nil {
		return common.Hash{}, w.sendErr
	}

	w.sent = append(w.sent, tx)
	nonce := make([]byte, 8)
	binary.BigEndian.PutUint64(nonce, uint64(len(w.sent)))
	hash := crypto.Keccak256Hash(tx.From.Bytes(), tx.To.Bytes(), tx.Data, nonce)

	w.blockNumber++
	status := types.ReceiptStatusSuccessful
	if w.revert {
		status = types.ReceiptStatusFailed
	}
	w.receipts[hash] = &pendingReceipt{
		remaining: w.pendingPolls,
		receipt: &types.Receipt{
			Status:            status,
			CumulativeGasUsed: 21000,
			GasUsed:           21000,
			Logs:              []*types.Log{},
			TxHash:            hash,
			BlockNumber:       new(big.Int).SetUint64(w.blockNumber),
		},
	}
	return hash, nil
}

// GetTransactionReceipt eth_getTransactionReceipt，未上链时返回 null
func (w *Wallet) GetTransactionReceipt(hash common.Hash) (*types.Receipt, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	p, ok := w.receipts[hash]
	if !ok {
		return nil, nil
	}
	if p.remaining > 0 {
		p.remaining--
		return nil, nil
	}
	return p.receipt, nil
}

// ChainId eth_chainId
func (w *Wallet) ChainId() *hexutil.Big {
	w.mu.Lock()
	defer w.mu.Unlock()
	return (*hexutil.Big)(big.NewInt(w.chainID))
}

// Server 启动进程内 RPC 服务，测试结束时自动关闭
func (w *Wallet) Server(t testing.TB) *rpc.Server {
	t.Helper()
	server := rpc.NewServer()
	if err := server.RegisterName("eth", w); err != nil {
		t.Fatalf("register fake wallet: %v", err)
	}
	t.Cleanup(server.Stop)
	return server
}

// Provider 返回连接到模拟钱包的 provider
func (w *Wallet) Provider(t testing.TB) *transport.RPCProvider {
	t.Helper()
	client := rpc.DialInProc(w.Server(t))
	t.Cleanup(client.Close)
	return transport.NewRPCProvider(client)
}

// Detector 返回通过进程内拨号连接模拟钱包的探测器
func (w *Wallet) Detector(t testing.TB) *transport.EndpointDetector {
	t.Helper()
	server := w.Server(t)
	d := transport.NewEndpointDetector("inproc://wallet", transport.WithDialer(
		func(context.Context, string) (*rpc.Client, error) {
			return rpc.DialInProc(server), nil
		},
	))
	t.Cleanup(d.Close)
	return d
}

// ErrUnreachable 模拟网络故障时使用的拨号错误
var ErrUnreachable = errors.New("connection refused")

// UnreachableDetector 拨号总是失败的探测器
func UnreachableDetector() *transport.EndpointDetector {
	return transport.NewEndpointDetector("http://127.0.0.1:1", transport.WithDialer(
		func(context.Context, string) (*rpc.Client, error) {
			return nil, ErrUnreachable
		},
	))
}

// ClosedEndpoint 返回本机上一个没有进程监听的 http 端点
func ClosedEndpoint(t testing.TB) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := l.Addr().String()
	if err := l.Close(); err != nil {
		t.Fatalf("close listener: %v", err)
	}
	return "http://" + addr
}
