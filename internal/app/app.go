// Package app 组装各模块并管理应用生命周期
package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/c0np4nn4/dapp-practice/client/core/dapp"
	logiface "github.com/c0np4nn4/dapp-practice/pkg/interfaces/infrastructure/log"
)

// stopTimeout 停止所有模块的最长时间
const stopTimeout = 30 * time.Second

// App 应用对外接口
type App interface {
	// Controller 页面控制器（Web 页面与控制台共用）
	Controller() *dapp.Controller

	// Logger 应用日志记录器
	Logger() logiface.Logger

	// Wait 阻塞直到收到 SIGINT/SIGTERM 或 ctx 结束
	Wait(ctx context.Context) os.Signal

	// Stop 停止应用
	Stop() error
}

// internalApp App的内部实现
type internalApp struct {
	bootstrap *Bootstrap
}

func (a *internalApp) Controller() *dapp.Controller {
	return a.bootstrap.controller
}

func (a *internalApp) Logger() logiface.Logger {
	return a.bootstrap.logger
}

// Wait 等待退出信号；ctx 先结束时返回 nil
func (a *internalApp) Wait(ctx context.Context) os.Signal {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	select {
	case sig := <-signals:
		a.bootstrap.logger.Infof("收到信号 %v，正在优雅退出", sig)
		return sig
	case <-ctx.Done():
		return nil
	}
}

// Stop 停止应用
func (a *internalApp) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()
	return a.bootstrap.StopApp(ctx)
}
