package wallet

import "time"

const (
	// defaultProviderEndpoint 默认没有钱包 provider，连接时提示安装钱包
	defaultProviderEndpoint = ""

	// defaultConnectTimeout 0 表示等待用户在钱包中确认，不设上限
	defaultConnectTimeout time.Duration = 0
)
