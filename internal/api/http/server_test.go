package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/c0np4nn4/dapp-practice/client/core/contract"
	"github.com/c0np4nn4/dapp-practice/client/core/dapp"
	"github.com/c0np4nn4/dapp-practice/client/core/explorer"
	"github.com/c0np4nn4/dapp-practice/client/core/transport"
	"github.com/c0np4nn4/dapp-practice/client/core/transport/providertest"
	"github.com/c0np4nn4/dapp-practice/client/core/wallet"
	apihttp "github.com/c0np4nn4/dapp-practice/internal/api/http"
	"github.com/c0np4nn4/dapp-practice/internal/api/http/types"
	apiconfig "github.com/c0np4nn4/dapp-practice/internal/config/api"
	pkgtypes "github.com/c0np4nn4/dapp-practice/pkg/types"
)

const (
	account   = "0x9f2cb3b7f7b5bb3a6d4e5c1d6c4c1dd0a8e2a111"
	recipient = "0x2222222222222222222222222222222222222222"
	unknown   = "0x4444444444444444444444444444444444444444"
)

var contractA = common.HexToAddress("0x05a8c5afa171afae09218a9270ece34dd32cbdcd").Hex()

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, detector transport.Detector) *apihttp.Server {
	t.Helper()
	registry, err := dapp.NewRegistry([]dapp.ContractEntry{{Label: "Default NFT Contract", Address: contractA}})
	require.NoError(t, err)
	parsed, err := contract.LoadABI("")
	require.NoError(t, err)

	logger := zap.NewNop()
	controller := dapp.NewController(dapp.Deps{
		Wallet:   wallet.NewManager(detector, logger),
		Minter:   contract.NewInvoker(parsed, contract.Options{PollInterval: 5 * time.Millisecond}, logger),
		Registry: registry,
		Explorer: explorer.New("https://sepolia.etherscan.io"),
		Logger:   logger,
	})

	reg := prometheus.NewRegistry()
	server, err := apihttp.NewServer(apihttp.ServerDeps{
		Options: apiconfig.New(&pkgtypes.UserAPIConfig{
			HTTPHost: pkgtypes.StringPtr("127.0.0.1"),
			HTTPPort: pkgtypes.IntPtr(0),
		}).GetOptions(),
		Controller: controller,
		Registerer: reg,
		Gatherer:   reg,
		Logger:     logger,
	})
	require.NoError(t, err)
	return server
}

func do(server *apihttp.Server, method, path string, body string, contentType string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)
	return w
}

// doCancelled 使用已取消的请求上下文发起请求，模拟客户端在处理期间断开
func doCancelled(server *apihttp.Server, method, path string, body string, contentType string) *httptest.ResponseRecorder {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequestWithContext(ctx, method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)
	return w
}

func postForm(server *apihttp.Server, path string, form url.Values) *httptest.ResponseRecorder {
	return do(server, http.MethodPost, path, form.Encode(), "application/x-www-form-urlencoded")
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) dapp.View {
	t.Helper()
	var v dapp.View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestPage(t *testing.T) {
	t.Run("初始页面", func(t *testing.T) {
		server := newTestServer(t, providertest.NewWallet(account).Detector(t))
		w := do(server, http.MethodGet, "/", "", "")

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "NFT Minting DApp")
		assert.Contains(t, body, "Connect Wallet")
		assert.Contains(t, body, `placeholder="Recipient Address"`)
		assert.Contains(t, body, "Mint NFT")
		assert.Contains(t, body, contractA)
		assert.Contains(t, body, `href="https://sepolia.etherscan.io/address/`+contractA+`"`)
		assert.NotContains(t, body, "View on Etherscan")
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("连接钱包后显示账户", func(t *testing.T) {
		server := newTestServer(t, providertest.NewWallet(account).Detector(t))

		w := postForm(server, "/wallet/connect", url.Values{})
		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))

		body := do(server, http.MethodGet, "/", "", "").Body.String()
		assert.Contains(t, body, "Wallet Connected: "+common.HexToAddress(account).Hex())
		assert.Contains(t, body, dapp.MsgConnected)
		assert.Contains(t, body, "message-success")
	})

	t.Run("没有钱包时提示安装", func(t *testing.T) {
		server := newTestServer(t, transport.StaticDetector{})
		postForm(server, "/wallet/connect", url.Values{})

		body := do(server, http.MethodGet, "/", "", "").Body.String()
		assert.Contains(t, body, dapp.MsgInstallWallet)
		assert.Contains(t, body, "message-error")
		assert.Contains(t, body, "Connect Wallet")
	})

	t.Run("表单铸造成功后显示链接", func(t *testing.T) {
		server := newTestServer(t, providertest.NewWallet(account).Detector(t))
		postForm(server, "/wallet/connect", url.Values{})

		w := postForm(server, "/mint", url.Values{"contract": {contractA}, "recipient": {recipient}})
		require.Equal(t, http.StatusSeeOther, w.Code)

		body := do(server, http.MethodGet, "/", "", "").Body.String()
		assert.Contains(t, body, dapp.MsgMintSucceeded)
		assert.Contains(t, body, "View on Etherscan:")
		assert.Contains(t, body, `href="https://sepolia.etherscan.io/tx/0x`)
		assert.Contains(t, body, `target="_blank"`)
	})

	t.Run("表单提交后客户端断开", func(t *testing.T) {
		fake := providertest.NewWallet(account)
		fake.SetPendingPolls(3)
		server := newTestServer(t, fake.Detector(t))
		postForm(server, "/wallet/connect", url.Values{})

		form := url.Values{"contract": {contractA}, "recipient": {recipient}}
		w := doCancelled(server, http.MethodPost, "/mint", form.Encode(), "application/x-www-form-urlencoded")
		require.Equal(t, http.StatusSeeOther, w.Code)

		body := do(server, http.MethodGet, "/", "", "").Body.String()
		assert.Contains(t, body, dapp.MsgMintSucceeded)
		assert.Contains(t, body, "View on Etherscan:")
	})

	t.Run("表单选择未知合约", func(t *testing.T) {
		server := newTestServer(t, providertest.NewWallet(account).Detector(t))
		w := postForm(server, "/mint", url.Values{"contract": {unknown}, "recipient": {recipient}})

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Unknown contract")
	})
}

func TestMintAPI(t *testing.T) {
	t.Run("状态查询", func(t *testing.T) {
		server := newTestServer(t, providertest.NewWallet(account).Detector(t))
		w := do(server, http.MethodGet, "/api/v1/state", "", "")

		require.Equal(t, http.StatusOK, w.Code)
		v := decodeView(t, w)
		assert.False(t, v.Connected)
		assert.Equal(t, contractA, v.SelectedContract)
		assert.Equal(t, dapp.AttemptIdle, v.Attempt)
		require.Len(t, v.Contracts, 1)
	})

	t.Run("连接并铸造", func(t *testing.T) {
		fake := providertest.NewWallet(account)
		server := newTestServer(t, fake.Detector(t))

		w := do(server, http.MethodPost, "/api/v1/wallet/connect", "", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decodeView(t, w).Connected)

		w = do(server, http.MethodPost, "/api/v1/mint", `{"recipient":"`+recipient+`"}`, "application/json")
		require.Equal(t, http.StatusOK, w.Code)
		v := decodeView(t, w)
		assert.Equal(t, dapp.AttemptSucceeded, v.Attempt)
		assert.Equal(t, dapp.MsgMintSucceeded, v.Message)
		assert.Equal(t, "https://sepolia.etherscan.io/tx/"+v.TxHash, v.TxURL)
		require.Len(t, fake.Sent(), 1)
	})

	t.Run("客户端断开不中断连接与铸造", func(t *testing.T) {
		fake := providertest.NewWallet(account)
		fake.SetPendingPolls(3)
		server := newTestServer(t, fake.Detector(t))

		doCancelled(server, http.MethodPost, "/api/v1/wallet/connect", "", "")
		doCancelled(server, http.MethodPost, "/api/v1/mint", `{"recipient":"`+recipient+`"}`, "application/json")

		v := decodeView(t, do(server, http.MethodGet, "/api/v1/state", "", ""))
		assert.True(t, v.Connected)
		assert.Equal(t, dapp.AttemptSucceeded, v.Attempt)
		assert.Equal(t, dapp.MsgMintSucceeded, v.Message)
		assert.Equal(t, "https://sepolia.etherscan.io/tx/"+v.TxHash, v.TxURL)
		require.Len(t, fake.Sent(), 1)
	})

	t.Run("未连接时铸造返回提示", func(t *testing.T) {
		fake := providertest.NewWallet(account)
		server := newTestServer(t, fake.Detector(t))

		w := do(server, http.MethodPost, "/api/v1/mint", `{"contract":"`+contractA+`","recipient":"`+recipient+`"}`, "application/json")
		require.Equal(t, http.StatusOK, w.Code)
		v := decodeView(t, w)
		assert.Equal(t, dapp.MsgConnectFirst, v.Message)
		assert.Equal(t, dapp.MessageError, v.MessageKind)
		assert.Empty(t, fake.Sent())
	})

	t.Run("未知合约返回400", func(t *testing.T) {
		server := newTestServer(t, providertest.NewWallet(account).Detector(t))
		w := do(server, http.MethodPost, "/api/v1/mint", `{"contract":"`+unknown+`","recipient":"`+recipient+`"}`, "application/json")

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp types.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, types.ErrUnknownContract, resp.Error.Code)
		assert.Equal(t, w.Header().Get("X-Request-ID"), resp.Error.RequestID)
	})

	t.Run("请求体无效返回400", func(t *testing.T) {
		server := newTestServer(t, providertest.NewWallet(account).Detector(t))
		w := do(server, http.MethodPost, "/api/v1/mint", `{not json`, "application/json")

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp types.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, types.ErrInvalidArgument, resp.Error.Code)
	})
}

func TestHealthAndMetrics(t *testing.T) {
	server := newTestServer(t, transport.StaticDetector{})

	w := do(server, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	w = do(server, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `mintdapp_http_requests_total{method="GET",path="/health",status="200"} 1`)
}

func TestRequestID(t *testing.T) {
	server := newTestServer(t, transport.StaticDetector{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
}

func TestServer_StartStop(t *testing.T) {
	server := newTestServer(t, transport.StaticDetector{})
	require.NoError(t, server.Start())
	assert.Error(t, server.Start())

	addr := server.Addr()
	require.NotEmpty(t, addr)

	resp, err := http.Get("http://" + addr + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, server.Stop(t.Context()))
	assert.Empty(t, server.Addr())
	require.NoError(t, server.Stop(t.Context()))
}
