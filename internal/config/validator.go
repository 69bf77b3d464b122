package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/c0np4nn4/dapp-practice/pkg/types"
	"github.com/ethereum/go-ethereum/common"
)

// ValidationError 配置验证错误
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("配置验证失败 [%s]: %s", e.Field, e.Message)
}

// ValidateAppConfig 验证用户配置
//
// 只验证用户实际设置的字段，未设置的字段使用默认值，默认值总是合法的。
// 所有错误一次性返回（errors.Join）
func ValidateAppConfig(appConfig *types.AppConfig) error {
	if appConfig == nil {
		return nil
	}

	var errs []error

	if w := appConfig.Wallet; w != nil {
		if err := validateDuration("wallet.connect_timeout", w.ConnectTimeout, true); err != nil {
			errs = append(errs, err)
		}
	}

	if c := appConfig.Contract; c != nil {
		if c.Registry != nil && len(c.Registry) == 0 {
			errs = append(errs, &ValidationError{
				Field:   "contract.registry",
				Message: "合约注册表不能为空",
			})
		}
		seen := make(map[string]bool, len(c.Registry))
		for i, entry := range c.Registry {
			field := fmt.Sprintf("contract.registry[%d]", i)
			addr := strings.TrimSpace(entry.Address)
			if !common.IsHexAddress(addr) {
				errs = append(errs, &ValidationError{
					Field:   field + ".address",
					Message: fmt.Sprintf("不是合法的合约地址: %q", entry.Address),
				})
				continue
			}
			key := common.HexToAddress(addr).Hex()
			if seen[key] {
				errs = append(errs, &ValidationError{
					Field:   field + ".address",
					Message: fmt.Sprintf("合约地址重复: %s", key),
				})
			}
			seen[key] = true
			if strings.TrimSpace(entry.Label) == "" {
				errs = append(errs, &ValidationError{
					Field:   field + ".label",
					Message: "合约名称不能为空",
				})
			}
		}
		if err := validateDuration("contract.mint_timeout", c.MintTimeout, true); err != nil {
			errs = append(errs, err)
		}
		if err := validateDuration("contract.receipt_poll_interval", c.ReceiptPollInterval, false); err != nil {
			errs = append(errs, err)
		}
	}

	if e := appConfig.Explorer; e != nil && e.BaseURL != nil {
		u, err := url.Parse(strings.TrimSpace(*e.BaseURL))
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, &ValidationError{
				Field:   "explorer.base_url",
				Message: fmt.Sprintf("不是合法的URL: %q", *e.BaseURL),
			})
		}
	}

	return errors.Join(errs...)
}

// validateDuration 校验时长字段；allowZero 为 false 时要求大于0
func validateDuration(field string, value *string, allowZero bool) error {
	if value == nil {
		return nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(*value))
	if err != nil {
		return &ValidationError{Field: field, Message: fmt.Sprintf("无法解析的时长: %q", *value)}
	}
	if d < 0 || (!allowZero && d == 0) {
		return &ValidationError{Field: field, Message: fmt.Sprintf("时长超出范围: %s", d)}
	}
	return nil
}
