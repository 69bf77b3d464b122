package flows_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/c0np4nn4/dapp-practice/client/core/contract"
	"github.com/c0np4nn4/dapp-practice/client/core/dapp"
	"github.com/c0np4nn4/dapp-practice/client/core/explorer"
	"github.com/c0np4nn4/dapp-practice/client/core/transport"
	"github.com/c0np4nn4/dapp-practice/client/core/transport/providertest"
	"github.com/c0np4nn4/dapp-practice/client/core/wallet"
	"github.com/c0np4nn4/dapp-practice/client/pkg/ux/flows"
	"github.com/c0np4nn4/dapp-practice/client/pkg/ux/ui"
)

const (
	account   = "0x9f2cb3b7f7b5bb3a6d4e5c1d6c4c1dd0a8e2a111"
	recipient = "0x2222222222222222222222222222222222222222"
)

var (
	contractA = common.HexToAddress("0x05a8c5afa171afae09218a9270ece34dd32cbdcd")
	contractB = common.HexToAddress("0x3333333333333333333333333333333333333333")
)

func newController(t *testing.T, detector transport.Detector, entries ...dapp.ContractEntry) *dapp.Controller {
	t.Helper()
	if len(entries) == 0 {
		entries = []dapp.ContractEntry{
			{Label: "Default NFT Contract", Address: contractA.Hex()},
			{Label: "Second", Address: contractB.Hex()},
		}
	}
	registry, err := dapp.NewRegistry(entries)
	require.NoError(t, err)

	parsed, err := contract.LoadABI("")
	require.NoError(t, err)

	logger := zap.NewNop()
	return dapp.NewController(dapp.Deps{
		Wallet:   wallet.NewManager(detector, logger),
		Minter:   contract.NewInvoker(parsed, contract.Options{PollInterval: 5 * time.Millisecond}, logger),
		Registry: registry,
		Explorer: explorer.New("https://sepolia.etherscan.io"),
		Logger:   logger,
	})
}

func runFlow(t *testing.T, detector transport.Detector, input string) (dapp.View, string, error) {
	t.Helper()
	return runFlowWith(t, newController(t, detector), input)
}

func runFlowWith(t *testing.T, controller *dapp.Controller, input string) (dapp.View, string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	components := ui.NewLineComponents(nil, strings.NewReader(input), out)
	flow := flows.NewMintFlow(components, controller, nil)

	view, err := flow.Run(context.Background())
	return view, pterm.RemoveColorFromString(out.String()), err
}

func TestMintFlow_Run(t *testing.T) {
	t.Run("选择第二个合约并铸造成功", func(t *testing.T) {
		fake := providertest.NewWallet(account)
		view, out, err := runFlow(t, fake.Detector(t), "2\n"+recipient+"\ny\n")
		require.NoError(t, err)

		assert.Equal(t, dapp.AttemptSucceeded, view.Attempt)
		assert.Equal(t, dapp.MsgMintSucceeded, view.Message)
		assert.True(t, strings.HasPrefix(view.TxURL, "https://sepolia.etherscan.io/tx/0x"))
		assert.Contains(t, out, "Wallet Connected: "+common.HexToAddress(account).Hex())
		assert.Contains(t, out, dapp.MsgMintSucceeded)
		assert.Contains(t, out, view.TxHash)

		sent := fake.Sent()
		require.Len(t, sent, 1)
		assert.Equal(t, contractB, sent[0].To)
		assert.Equal(t, common.HexToAddress(account), sent[0].From)
	})

	t.Run("单个合约时不显示菜单", func(t *testing.T) {
		fake := providertest.NewWallet(account)
		controller := newController(t, fake.Detector(t), dapp.ContractEntry{Label: "Default NFT Contract", Address: contractA.Hex()})

		view, out, err := runFlowWith(t, controller, recipient+"\ny\n")
		require.NoError(t, err)
		assert.Equal(t, dapp.AttemptSucceeded, view.Attempt)
		assert.NotContains(t, out, "选择合约")

		sent := fake.Sent()
		require.Len(t, sent, 1)
		assert.Equal(t, contractA, sent[0].To)
	})

	t.Run("没有钱包 provider", func(t *testing.T) {
		view, out, err := runFlow(t, transport.StaticDetector{}, "")
		require.ErrorIs(t, err, flows.ErrNotConnected)
		assert.False(t, view.Connected)
		assert.Contains(t, out, dapp.MsgInstallWallet)
	})

	t.Run("接收地址为空", func(t *testing.T) {
		fake := providertest.NewWallet(account)
		view, out, err := runFlow(t, fake.Detector(t), "\n\n")
		require.ErrorIs(t, err, flows.ErrMintFailed)
		assert.Equal(t, dapp.MsgRecipientRequired, view.Message)
		assert.Equal(t, dapp.AttemptIdle, view.Attempt)
		assert.Contains(t, out, dapp.MsgRecipientRequired)
		assert.Empty(t, fake.Sent())
	})

	t.Run("用户取消确认", func(t *testing.T) {
		fake := providertest.NewWallet(account)
		_, out, err := runFlow(t, fake.Detector(t), "1\n"+recipient+"\nn\n")
		require.ErrorIs(t, err, ui.ErrCancelled)
		assert.Contains(t, out, "已取消铸造")
		assert.Empty(t, fake.Sent())
	})

	t.Run("钱包拒绝签名", func(t *testing.T) {
		fake := providertest.NewWallet(account)
		fake.SetRejectSend(true)
		view, out, err := runFlow(t, fake.Detector(t), "1\n"+recipient+"\ny\n")
		require.ErrorIs(t, err, flows.ErrMintFailed)
		assert.Equal(t, dapp.AttemptFailed, view.Attempt)
		assert.Empty(t, view.TxURL)
		assert.Contains(t, out, dapp.MsgMintFailed)
	})
}
