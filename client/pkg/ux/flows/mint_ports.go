// Package flows 提供可复用的交互流程
package flows

import (
	"context"

	"github.com/c0np4nn4/dapp-practice/client/core/dapp"
)

// ============================================================================
// Mint Flow Ports（端口接口）
//
// 铸造流程只依赖页面控制器的这几个操作，*dapp.Controller 直接满足该接口，
// 控制台和 Web 页面因此表现一致。
// ============================================================================

// MintController 铸造页面控制器端口
type MintController interface {
	// View 返回当前页面状态
	View() dapp.View

	// ConnectWallet 请求钱包授权
	ConnectWallet(ctx context.Context) dapp.View

	// SelectContract 选择目标合约，地址必须来自注册表
	SelectContract(address string) error

	// SetRecipient 设置接收地址
	SetRecipient(recipient string)

	// Mint 使用当前选择提交铸造
	Mint(ctx context.Context) dapp.View
}
