package api

import (
	"fmt"
	"time"

	"github.com/c0np4nn4/dapp-practice/pkg/types"
)

// APIOptions HTTP服务配置选项
type APIOptions struct {
	HTTP HTTPConfig `json:"http"`
}

// HTTPConfig HTTP服务配置
//
// 写超时不设置：铸造请求会一直等到交易上链
type HTTPConfig struct {
	Host            string        `json:"host"`             // 监听地址
	Port            int           `json:"port"`             // 监听端口
	ReadTimeout     time.Duration `json:"read_timeout"`     // 读取超时时间
	ShutdownTimeout time.Duration `json:"shutdown_timeout"` // 优雅关闭等待时间
	MetricsPath     string        `json:"metrics_path"`     // 指标路径
}

// Config API配置实现
type Config struct {
	options *APIOptions
}

// New 创建API配置实现
func New(userConfig *types.UserAPIConfig) *Config {
	defaultOptions := createDefaultAPIOptions()
	if userConfig != nil {
		convertAndMergeUserConfig(defaultOptions, userConfig)
	}
	return &Config{options: defaultOptions}
}

func createDefaultAPIOptions() *APIOptions {
	return &APIOptions{
		HTTP: HTTPConfig{
			Host:            defaultHTTPHost,
			Port:            defaultHTTPPort,
			ReadTimeout:     defaultHTTPReadTimeout,
			ShutdownTimeout: defaultHTTPShutdownTimeout,
			MetricsPath:     defaultMetricsPath,
		},
	}
}

// convertAndMergeUserConfig 将用户配置合并到默认配置中
// 使用指针类型来准确区分"未设置"和"设置为零值"
func convertAndMergeUserConfig(defaultOpts *APIOptions, userConfig *types.UserAPIConfig) {
	if userConfig.HTTPHost != nil {
		defaultOpts.HTTP.Host = *userConfig.HTTPHost
	}
	// HTTPPort 设置为0时由系统分配端口
	if userConfig.HTTPPort != nil {
		defaultOpts.HTTP.Port = *userConfig.HTTPPort
	}
}

// GetOptions 获取完整的API配置选项
func (c *Config) GetOptions() *APIOptions {
	return c.options
}

// Address 返回 host:port 形式的监听地址
func (o *APIOptions) Address() string {
	return fmt.Sprintf("%s:%d", o.HTTP.Host, o.HTTP.Port)
}
