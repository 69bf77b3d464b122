package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/c0np4nn4/dapp-practice/internal/app"
	"github.com/c0np4nn4/dapp-practice/internal/app/version"
)

// GlobalFlags 全局标志
type GlobalFlags struct {
	ConfigFile string // 配置文件路径
	LogLevel   string // 覆盖日志级别
}

var globalFlags GlobalFlags

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "mintdapp",
	Short: "NFT 铸造页面",
	Long: `mintdapp - 通过浏览器钱包 provider 调用 ERC-721 合约的 safeMint

连接钱包、选择合约、填写接收地址后提交铸造，
成功后给出区块浏览器的交易链接。

配置文件查找顺序: --config > $MINTDAPP_CONFIG > ./configs/mintdapp.json`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&globalFlags.ConfigFile, "config", "c", "", "配置文件路径 (JSON)")
	rootCmd.PersistentFlags().StringVar(&globalFlags.LogLevel, "log-level", "", "日志级别: debug|info|warn|error")
	rootCmd.SetVersionTemplate(version.GetFullVersion() + "\n")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(contractsCmd)
}

// appOptions 由全局标志生成应用选项
func appOptions(extra ...app.Option) []app.Option {
	opts := []app.Option{
		app.WithConfigFile(globalFlags.ConfigFile),
		app.WithLogLevel(globalFlags.LogLevel),
	}
	return append(opts, extra...)
}
