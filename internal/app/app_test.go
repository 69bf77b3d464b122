package app

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/c0np4nn4/dapp-practice/client/core/dapp"
	"github.com/c0np4nn4/dapp-practice/configs"
	apihttp "github.com/c0np4nn4/dapp-practice/internal/api/http"
	"github.com/c0np4nn4/dapp-practice/pkg/types"
)

func testConfig() *types.AppConfig {
	return &types.AppConfig{
		Log: &types.UserLogConfig{Level: types.StringPtr("error")},
		API: &types.UserAPIConfig{
			HTTPHost: types.StringPtr("127.0.0.1"),
			HTTPPort: types.IntPtr(0),
		},
		Contract: &types.UserContractConfig{
			Registry: []types.UserContractEntry{
				{Label: "Default NFT Contract", Address: "0x05a8C5aFa171aFAE09218a9270ECe34Dd32CbdCD"},
				{Label: "Second", Address: "0x3333333333333333333333333333333333333333"},
			},
		},
	}
}

func TestBootstrapApp(t *testing.T) {
	t.Run("控制台模式", func(t *testing.T) {
		a, err := BootstrapApp(WithAppConfig(testConfig()), WithoutAPI())
		require.NoError(t, err)
		t.Cleanup(func() { _ = a.Stop() })

		require.NotNil(t, a.Controller())
		require.NotNil(t, a.Logger())

		v := a.Controller().View()
		require.Len(t, v.Contracts, 2)
		assert.Equal(t, "Default NFT Contract", v.SelectedLabel())

		// 没有配置 provider 端点
		v = a.Controller().ConnectWallet(context.Background())
		assert.Equal(t, dapp.MsgInstallWallet, v.Message)
	})

	t.Run("启动HTTP服务", func(t *testing.T) {
		var server *apihttp.Server
		a, err := BootstrapApp(
			WithAppConfig(testConfig()),
			WithAPI(),
			WithFxOptions(fx.Populate(&server)),
		)
		require.NoError(t, err)

		require.NotNil(t, server)
		addr := server.Addr()
		require.NotEmpty(t, addr)

		client := &http.Client{Timeout: 5 * time.Second}
		resp, err := client.Get("http://" + addr + "/api/v1/state")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		require.NoError(t, a.Stop())
		assert.Empty(t, server.Addr())
	})

	t.Run("命令行日志级别覆盖配置", func(t *testing.T) {
		cfg := testConfig()
		opts := newOptions(WithAppConfig(cfg), WithLogLevel("debug"))
		require.NoError(t, opts.resolve())
		assert.Equal(t, "debug", *opts.GetAppConfig().Log.Level)
	})

	t.Run("内置默认配置", func(t *testing.T) {
		a, err := BootstrapApp(WithEmbeddedConfig(configs.GetDefaultConfig()), WithLogLevel("error"), WithoutAPI())
		require.NoError(t, err)
		t.Cleanup(func() { _ = a.Stop() })

		v := a.Controller().View()
		require.Len(t, v.Contracts, 1)
		assert.Equal(t, "Default NFT Contract", v.SelectedLabel())
	})

	t.Run("非法配置", func(t *testing.T) {
		cfg := testConfig()
		cfg.Contract.Registry[1].Address = "not-an-address"
		_, err := BootstrapApp(WithAppConfig(cfg), WithoutAPI())
		require.Error(t, err)
	})

	t.Run("指定的配置文件不存在", func(t *testing.T) {
		_, err := BootstrapApp(WithConfigFile(filepath.Join(t.TempDir(), "missing.json")), WithoutAPI())
		require.Error(t, err)
	})
}

func TestApp_WaitContextDone(t *testing.T) {
	a, err := BootstrapApp(WithAppConfig(testConfig()), WithoutAPI())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Nil(t, a.Wait(ctx))
}
