package app

import (
	"go.uber.org/fx"

	internalconfig "github.com/c0np4nn4/dapp-practice/internal/config"
	"github.com/c0np4nn4/dapp-practice/pkg/interfaces/config"
	"github.com/c0np4nn4/dapp-practice/pkg/types"
)

// Option 应用程序选项函数类型
type Option func(*options)

// options 应用程序选项
// 实现config.AppOptions接口
type options struct {
	// 配置文件路径（空表示使用环境变量或默认路径）
	configFilePath string

	// 嵌入的配置内容（优先级高于configFilePath）
	embeddedConfig []byte

	// 直接提供的用户配置（优先级最高）
	appConfig *types.AppConfig

	// 覆盖配置文件中的日志级别
	logLevel string

	// API支持开关 (默认启用)
	enableAPI bool

	// 额外的fx选项
	extra []fx.Option
}

// 编译时校验options是否实现了config.AppOptions接口
var _ config.AppOptions = (*options)(nil)

// WithConfigFile 设置配置文件路径
func WithConfigFile(configPath string) Option {
	return func(o *options) {
		o.configFilePath = configPath
	}
}

// WithEmbeddedConfig 使用嵌入的配置内容（优先级高于WithConfigFile）
func WithEmbeddedConfig(configBytes []byte) Option {
	return func(o *options) {
		o.embeddedConfig = configBytes
	}
}

// WithAppConfig 直接提供用户配置，不再读取配置文件
func WithAppConfig(appConfig *types.AppConfig) Option {
	return func(o *options) {
		o.appConfig = appConfig
	}
}

// WithLogLevel 覆盖日志级别
func WithLogLevel(level string) Option {
	return func(o *options) {
		o.logLevel = level
	}
}

// WithAPI 启用HTTP模块
func WithAPI() Option {
	return func(o *options) {
		o.enableAPI = true
	}
}

// WithoutAPI 禁用HTTP模块（控制台模式）
func WithoutAPI() Option {
	return func(o *options) {
		o.enableAPI = false
	}
}

// WithFxOptions 追加fx选项
func WithFxOptions(opts ...fx.Option) Option {
	return func(o *options) {
		o.extra = append(o.extra, opts...)
	}
}

// newOptions 创建选项
func newOptions(opts ...Option) *options {
	o := &options{enableAPI: true}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// resolve 加载配置文件并应用命令行覆盖项
func (o *options) resolve() error {
	if o.appConfig == nil {
		var (
			appConfig *types.AppConfig
			err       error
		)
		if len(o.embeddedConfig) > 0 {
			appConfig, err = internalconfig.Parse(o.embeddedConfig)
		} else {
			appConfig, err = internalconfig.LoadFile(o.configFilePath)
		}
		if err != nil {
			return err
		}
		o.appConfig = appConfig
	}
	if o.logLevel != "" {
		if o.appConfig.Log == nil {
			o.appConfig.Log = &types.UserLogConfig{}
		}
		o.appConfig.Log.Level = types.StringPtr(o.logLevel)
	}
	return nil
}

// GetAppConfig 返回应用程序配置
func (o *options) GetAppConfig() *types.AppConfig {
	return o.appConfig
}
