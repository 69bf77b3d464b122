package ui

// Logger 日志接口（适配器）
//
// 控制台组件只需要最基本的日志能力；
// pkg/interfaces/infrastructure/log.Logger 的实现可以直接传入，传入 nil 表示不记录日志。
type Logger interface {
	Debug(msg string)
	Debugf(format string, args ...interface{})

	Info(msg string)
	Infof(format string, args ...interface{})

	Warn(msg string)
	Warnf(format string, args ...interface{})

	Error(msg string)
	Errorf(format string, args ...interface{})
}

// noopLogger 空日志实现
type noopLogger struct{}

func (l *noopLogger) Debug(string)                  {}
func (l *noopLogger) Debugf(string, ...interface{}) {}
func (l *noopLogger) Info(string)                   {}
func (l *noopLogger) Infof(string, ...interface{})  {}
func (l *noopLogger) Warn(string)                   {}
func (l *noopLogger) Warnf(string, ...interface{})  {}
func (l *noopLogger) Error(string)                  {}
func (l *noopLogger) Errorf(string, ...interface{}) {}

// NoopLogger 返回一个空日志实例
func NoopLogger() Logger {
	return &noopLogger{}
}
