// Package handlers 铸造页面与 JSON API 的请求处理器
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/c0np4nn4/dapp-practice/client/core/dapp"
)

// Controller 页面控制器端口，*dapp.Controller 满足该接口
type Controller interface {
	View() dapp.View
	ConnectWallet(ctx context.Context) dapp.View
	Submit(ctx context.Context, contractAddr, recipient string) (dapp.View, error)
}

// detachedContext 保留请求上下文中的值但去掉取消信号
//
// 客户端断开不会中断已经开始的连接或铸造，
// 调用时长只受 connect_timeout 和 mint_timeout 限制
func detachedContext(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}
