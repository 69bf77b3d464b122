// Package metrics 提供 Prometheus 指标注册表和钱包/铸造指标
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Namespace 所有指标的命名空间
const Namespace = "mintdapp"

// NewRegistry 创建独立的指标注册表，附带 Go 运行时与进程指标
//
// 不使用全局默认注册表，测试中可以重复创建
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
