package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/c0np4nn4/dapp-practice/configs"
	"github.com/c0np4nn4/dapp-practice/pkg/types"
)

const (
	// EnvConfigPath 指定配置文件路径的环境变量
	EnvConfigPath = "MINTDAPP_CONFIG"

	// DefaultConfigPath 默认配置文件路径
	DefaultConfigPath = "./configs/mintdapp.json"
)

// ResolvePath 解析配置文件路径
// 优先级：命令行参数 > 环境变量 > 默认路径
func ResolvePath(flagPath string) (path string, explicit bool) {
	if p := strings.TrimSpace(flagPath); p != "" {
		return p, true
	}
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p, true
	}
	return DefaultConfigPath, false
}

// LoadFile 读取并解析配置文件
//
// 默认路径不存在时使用内置的 configs/mintdapp.json；
// 显式指定的路径不存在则报错
func LoadFile(flagPath string) (*types.AppConfig, error) {
	path, explicit := ResolvePath(flagPath)

	//nolint:gosec // G304: 配置路径由用户显式提供
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			cfg, err := Parse(configs.GetDefaultConfig())
			if err != nil {
				return nil, fmt.Errorf("解析内置默认配置失败: %w", err)
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("读取配置文件 %s 失败: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("解析配置文件 %s 失败: %w", path, err)
	}
	return cfg, nil
}

// Parse 解析JSON配置内容并校验
func Parse(data []byte) (*types.AppConfig, error) {
	cfg := &types.AppConfig{}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, err
	}
	if err := ValidateAppConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
