package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c0np4nn4/dapp-practice/client/pkg/ux/flows"
	"github.com/c0np4nn4/dapp-practice/client/pkg/ux/ui"
	"github.com/c0np4nn4/dapp-practice/internal/app"
)

// consoleCmd 交互式控制台铸造
var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "在终端中完成一次铸造",
	Long: `依次完成：连接钱包、选择合约、填写接收地址、确认并等待回执。

标准输入不是终端时按行读取输入，可用于脚本。
注册表只有一个合约时不显示选择菜单，依次输入接收地址和确认:
  printf '0x...\ny\n' | mintdapp console
有多个合约时先输入合约编号:
  printf '2\n0x...\ny\n' | mintdapp console`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		a, err := app.BootstrapApp(appOptions(app.WithoutAPI())...)
		if err != nil {
			return err
		}
		defer func() {
			if stopErr := a.Stop(); err == nil {
				err = stopErr
			}
		}()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger := a.Logger()
		flow := flows.NewMintFlow(ui.NewComponents(logger), a.Controller(), logger)
		if _, err := flow.Run(ctx); err != nil && !errors.Is(err, ui.ErrCancelled) {
			return err
		}
		return nil
	},
}
