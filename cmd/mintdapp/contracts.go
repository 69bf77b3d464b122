package main

import (
	"github.com/spf13/cobra"

	"github.com/c0np4nn4/dapp-practice/client/core/dapp"
	"github.com/c0np4nn4/dapp-practice/client/pkg/ux/ui"
	"github.com/c0np4nn4/dapp-practice/internal/app"
	internalconfig "github.com/c0np4nn4/dapp-practice/internal/config"
)

// contractsCmd 列出合约注册表
var contractsCmd = &cobra.Command{
	Use:   "contracts",
	Short: "列出可选的 NFT 合约",
	RunE: func(cmd *cobra.Command, args []string) error {
		appConfig, err := internalconfig.LoadFile(globalFlags.ConfigFile)
		if err != nil {
			return err
		}
		registry, err := app.NewRegistry(internalconfig.NewProvider(appConfig).GetContract())
		if err != nil {
			return err
		}

		return ui.NewComponents(nil).ShowTable("合约列表", registryTable(registry))
	},
}

// registryTable 注册表的表格形式，第一个合约标记为默认
func registryTable(registry *dapp.Registry) [][]string {
	data := [][]string{{"名称", "地址", "默认"}}
	for i, entry := range registry.Entries() {
		mark := ""
		if i == 0 {
			mark = "*"
		}
		data = append(data, []string{entry.Label, entry.Address, mark})
	}
	return data
}
