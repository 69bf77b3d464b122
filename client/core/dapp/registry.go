package dapp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ErrUnknownContract 选择的合约不在注册表中
var ErrUnknownContract = errors.New("contract is not in the registry")

// ContractEntry 注册表条目
type ContractEntry struct {
	Label   string `json:"label"`
	Address string `json:"address"` // EIP-55 校验和格式
}

// Registry 不可变的合约注册表，第一个条目为默认选择
type Registry struct {
	entries []ContractEntry
	index   map[common.Address]int
}

// NewRegistry 创建注册表；空列表、非法地址和重复地址都会报错
func NewRegistry(entries []ContractEntry) (*Registry, error) {
	if len(entries) == 0 {
		return nil, errors.New("contract registry is empty")
	}

	r := &Registry{
		entries: make([]ContractEntry, 0, len(entries)),
		index:   make(map[common.Address]int, len(entries)),
	}
	for i, e := range entries {
		addr := strings.TrimSpace(e.Address)
		if !common.IsHexAddress(addr) {
			return nil, fmt.Errorf("registry[%d]: invalid address %q", i, e.Address)
		}
		key := common.HexToAddress(addr)
		if _, dup := r.index[key]; dup {
			return nil, fmt.Errorf("registry[%d]: duplicate address %s", i, key.Hex())
		}
		label := strings.TrimSpace(e.Label)
		if label == "" {
			label = key.Hex()
		}
		r.index[key] = len(r.entries)
		r.entries = append(r.entries, ContractEntry{Label: label, Address: key.Hex()})
	}
	return r, nil
}

// Entries 返回条目副本
func (r *Registry) Entries() []ContractEntry {
	return append([]ContractEntry(nil), r.entries...)
}

// Default 默认合约
func (r *Registry) Default() ContractEntry {
	return r.entries[0]
}

// Lookup 按地址查找，大小写不敏感
func (r *Registry) Lookup(address string) (ContractEntry, bool) {
	address = strings.TrimSpace(address)
	if !common.IsHexAddress(address) {
		return ContractEntry{}, false
	}
	i, ok := r.index[common.HexToAddress(address)]
	if !ok {
		return ContractEntry{}, false
	}
	return r.entries[i], true
}
