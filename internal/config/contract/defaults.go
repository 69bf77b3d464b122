package contract

import "time"

const (
	// defaultContractLabel / defaultContractAddress 默认注册表只有一个合约
	defaultContractLabel   = "Default NFT Contract"
	defaultContractAddress = "0x05a8C5aFa171aFAE09218a9270ECe34Dd32CbdCD"

	// defaultMintTimeout 0 表示一直等待交易上链
	defaultMintTimeout time.Duration = 0

	// defaultReceiptPollInterval 回执轮询间隔
	defaultReceiptPollInterval = 2 * time.Second
)
