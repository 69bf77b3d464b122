package api

import "time"

// API服务默认配置值
const (
	// defaultHTTPHost 默认只监听本机，页面直接驱动本机钱包 provider
	defaultHTTPHost = "127.0.0.1"

	// defaultHTTPPort HTTP端口
	defaultHTTPPort = 8080

	// defaultHTTPReadTimeout HTTP读取超时
	defaultHTTPReadTimeout = 15 * time.Second

	// defaultHTTPShutdownTimeout 优雅关闭等待时间
	defaultHTTPShutdownTimeout = 10 * time.Second

	// defaultMetricsPath Prometheus 指标路径
	defaultMetricsPath = "/metrics"
)
