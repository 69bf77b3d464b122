// Package types 定义跨层共享的配置数据结构
package types

// AppConfig 应用配置（对应配置文件 configs/mintdapp.json）
//
// 零值陷阱处理：用户配置一律使用指针类型
//   - nil: 用户未在配置文件中设置该字段，使用系统默认值
//   - &value: 用户明确设置了该值，即使是零值（0、false、""）也会被采用
type AppConfig struct {
	// 日志配置 - 对应配置文件中的 log 字段
	Log *UserLogConfig `json:"log,omitempty"`

	// API配置 - 对应配置文件中的 api 字段
	API *UserAPIConfig `json:"api,omitempty"`

	// 钱包配置 - 对应配置文件中的 wallet 字段
	Wallet *UserWalletConfig `json:"wallet,omitempty"`

	// 合约配置 - 对应配置文件中的 contract 字段
	Contract *UserContractConfig `json:"contract,omitempty"`

	// 区块浏览器配置 - 对应配置文件中的 explorer 字段
	Explorer *UserExplorerConfig `json:"explorer,omitempty"`
}

// UserLogConfig 用户日志配置
// 只包含JSON配置文件中实际出现的字段
type UserLogConfig struct {
	Level    *string `json:"level,omitempty"`     // 日志级别：debug, info, warn, error, fatal
	FilePath *string `json:"file_path,omitempty"` // 日志文件路径
}

// UserAPIConfig 用户API配置
type UserAPIConfig struct {
	HTTPHost *string `json:"http_host,omitempty"` // HTTP监听地址
	HTTPPort *int    `json:"http_port,omitempty"` // HTTP监听端口
}

// UserWalletConfig 用户钱包配置
type UserWalletConfig struct {
	// ProviderEndpoint 钱包 provider 的 JSON-RPC 端点（http/ws/ipc）
	// 留空表示环境中没有可用的钱包 provider
	ProviderEndpoint *string `json:"provider_endpoint,omitempty"`

	// ConnectTimeout 连接钱包的超时时间（如 "30s"），"0s" 表示无限等待
	ConnectTimeout *string `json:"connect_timeout,omitempty"`
}

// UserContractConfig 用户合约配置
type UserContractConfig struct {
	ABIFile             *string             `json:"abi_file,omitempty"`              // 外部 ABI 文件（留空使用内置 ABI）
	Registry            []UserContractEntry `json:"registry,omitempty"`              // 可选合约列表（有序）
	MintTimeout         *string             `json:"mint_timeout,omitempty"`          // 铸造超时，"0s" 表示无限等待
	ReceiptPollInterval *string             `json:"receipt_poll_interval,omitempty"` // 回执轮询间隔
}

// UserContractEntry 合约注册表条目
type UserContractEntry struct {
	Label   string `json:"label"`
	Address string `json:"address"`
}

// UserExplorerConfig 用户区块浏览器配置
type UserExplorerConfig struct {
	BaseURL *string `json:"base_url,omitempty"` // 如 https://sepolia.etherscan.io
}

// StringPtr 创建字符串指针，用于明确表示用户设置了该值
func StringPtr(v string) *string {
	return &v
}

// IntPtr 创建int指针，用于明确表示用户设置了该值
func IntPtr(v int) *int {
	return &v
}
