// mintdapp NFT 铸造页面
//
// 使用方式:
//
//	mintdapp serve       # 启动 Web 页面
//	mintdapp console     # 交互式控制台铸造
//	mintdapp contracts   # 列出可选合约
package main

func main() {
	Execute()
}
