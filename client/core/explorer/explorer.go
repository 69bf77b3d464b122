// Package explorer 生成区块浏览器链接
package explorer

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// DefaultBaseURL Sepolia 测试网浏览器
const DefaultBaseURL = "https://sepolia.etherscan.io"

// Explorer 区块浏览器
type Explorer struct {
	baseURL string
}

// New 创建浏览器链接生成器；baseURL 为空时使用 DefaultBaseURL
func New(baseURL string) *Explorer {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Explorer{baseURL: baseURL}
}

// BaseURL 返回浏览器地址
func (e *Explorer) BaseURL() string {
	return e.baseURL
}

// Link 返回交易页面链接 <base>/tx/<hash>
func (e *Explorer) Link(txHash common.Hash) string {
	return e.baseURL + "/tx/" + txHash.Hex()
}

// AddressLink 返回地址页面链接 <base>/address/<addr>
func (e *Explorer) AddressLink(addr common.Address) string {
	return e.baseURL + "/address/" + addr.Hex()
}
