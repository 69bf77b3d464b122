package flows

import (
	"context"
	"errors"
	"fmt"

	"github.com/c0np4nn4/dapp-practice/client/core/dapp"
	"github.com/c0np4nn4/dapp-practice/client/pkg/ux/ui"
)

var (
	// ErrNotConnected 钱包未连接
	ErrNotConnected = errors.New("钱包未连接")
	// ErrMintFailed 铸造未成功
	ErrMintFailed = errors.New("铸造未成功")
)

// MintFlow 铸造交互流程
//
// 步骤：
//   - 连接钱包（已连接则跳过）
//   - 选择合约（注册表只有一个合约时直接使用）
//   - 输入接收地址
//   - 确认并提交，等待回执
//   - 展示结果和区块浏览器链接
type MintFlow struct {
	ui         ui.Components
	controller MintController
	logger     ui.Logger
}

// NewMintFlow 创建铸造流程实例
func NewMintFlow(uiComponents ui.Components, controller MintController, logger ui.Logger) *MintFlow {
	if logger == nil {
		logger = ui.NoopLogger()
	}
	return &MintFlow{
		ui:         uiComponents,
		controller: controller,
		logger:     logger,
	}
}

// Run 执行一次完整的铸造流程，返回最终页面状态
//
// 用户在确认步骤取消时返回 ui.ErrCancelled
func (f *MintFlow) Run(ctx context.Context) (dapp.View, error) {
	f.ui.ShowHeader("NFT Minting DApp")

	// 1. 连接钱包
	view, err := f.connect(ctx)
	if err != nil {
		return view, err
	}

	// 2. 选择合约
	if err := f.selectContract(view); err != nil {
		return f.controller.View(), err
	}

	// 3. 输入接收地址
	recipient, err := f.ui.ShowInputDialog("", "Recipient Address", false)
	if err != nil {
		return f.controller.View(), fmt.Errorf("输入接收地址失败: %w", err)
	}
	f.controller.SetRecipient(recipient)

	// 4. 确认
	view = f.controller.View()
	if view.Recipient != "" {
		f.ui.ShowKeyValuePairs("铸造信息", map[string]string{
			"Contract":  fmt.Sprintf("%s (%s)", view.SelectedLabel(), view.SelectedContract),
			"Recipient": view.Recipient,
			"Sender":    view.Account,
			"Explorer":  view.ContractURL,
		})
		confirm, err := f.ui.ShowConfirmDialog("", "Mint NFT?")
		if err != nil {
			return view, err
		}
		if !confirm {
			f.ui.ShowInfo("已取消铸造")
			return view, ui.ErrCancelled
		}
	}

	// 5. 提交并等待回执
	spinner := f.ui.ShowSpinner(dapp.MsgMinting)
	if err := spinner.Start(); err != nil {
		f.logger.Warnf("启动加载动画失败: %v", err)
	}
	view = f.controller.Mint(ctx)

	if view.Attempt != dapp.AttemptSucceeded {
		if err := spinner.Fail(view.Message); err != nil {
			f.ui.ShowError(view.Message)
		}
		return view, fmt.Errorf("%w: %s", ErrMintFailed, view.Message)
	}
	if err := spinner.Success(view.Message); err != nil {
		f.ui.ShowSuccess(view.Message)
	}

	// 6. 展示结果
	f.ui.ShowSection("交易")
	f.ui.ShowKeyValuePairs("", map[string]string{
		"Tx Hash":           view.TxHash,
		"View on Etherscan": view.TxURL,
	})
	return view, nil
}

func (f *MintFlow) connect(ctx context.Context) (dapp.View, error) {
	view := f.controller.View()
	if view.Connected {
		f.ui.ShowSuccess("Wallet Connected: " + view.Account)
		return view, nil
	}

	spinner := f.ui.ShowSpinner("Connecting wallet...")
	if err := spinner.Start(); err != nil {
		f.logger.Warnf("启动加载动画失败: %v", err)
	}
	view = f.controller.ConnectWallet(ctx)
	if !view.Connected {
		if err := spinner.Fail(view.Message); err != nil {
			f.ui.ShowError(view.Message)
		}
		return view, fmt.Errorf("%w: %s", ErrNotConnected, view.Message)
	}

	if err := spinner.Success("Wallet Connected: " + view.Account); err != nil {
		f.ui.ShowSuccess("Wallet Connected: " + view.Account)
	}
	return view, nil
}

func (f *MintFlow) selectContract(view dapp.View) error {
	if len(view.Contracts) < 2 {
		return nil
	}

	options := make([]string, len(view.Contracts))
	for i, c := range view.Contracts {
		options[i] = fmt.Sprintf("%s (%s)", c.Label, c.Address)
	}
	idx, err := f.ui.ShowMenu("选择合约", options)
	if err != nil {
		return fmt.Errorf("选择合约失败: %w", err)
	}
	return f.controller.SelectContract(view.Contracts[idx].Address)
}
