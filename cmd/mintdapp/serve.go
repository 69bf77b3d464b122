package main

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/c0np4nn4/dapp-practice/internal/app"
)

// serveCmd 启动 Web 页面
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动 Web 铸造页面",
	Long:  "启动 HTTP 服务，提供铸造页面、JSON API、/health 和 /metrics，收到 SIGINT/SIGTERM 后优雅退出",
	RunE: func(cmd *cobra.Command, args []string) error {
		gin.SetMode(gin.ReleaseMode)

		a, err := app.BootstrapApp(appOptions(app.WithAPI())...)
		if err != nil {
			return err
		}

		a.Wait(cmd.Context())
		return a.Stop()
	},
}
