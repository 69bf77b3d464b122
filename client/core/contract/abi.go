package contract

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// MintMethod 铸造方法名
const MintMethod = "safeMint"

//go:embed abi.json
var embeddedABI []byte

// EmbeddedABI 返回内置的 ERC-721 ABI 原文
func EmbeddedABI() []byte {
	return bytes.Clone(embeddedABI)
}

// LoadABI 加载合约 ABI；path 为空时使用内置 ABI
//
// ABI 必须包含 safeMint(address)
func LoadABI(path string) (abi.ABI, error) {
	raw := embeddedABI
	if path != "" {
		//nolint:gosec // G304: ABI 文件路径来自配置
		data, err := os.ReadFile(path)
		if err != nil {
			return abi.ABI{}, fmt.Errorf("读取 ABI 文件失败: %w", err)
		}
		raw = data
	}

	parsed, err := abi.JSON(bytes.NewReader(raw))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("解析 ABI 失败: %w", err)
	}

	method, ok := parsed.Methods[MintMethod]
	if !ok {
		return abi.ABI{}, fmt.Errorf("ABI 中没有 %s 方法", MintMethod)
	}
	if len(method.Inputs) != 1 || method.Inputs[0].Type.T != abi.AddressTy {
		return abi.ABI{}, fmt.Errorf("%s 的参数必须是单个 address，实际为 %s", MintMethod, method.Sig)
	}
	return parsed, nil
}
