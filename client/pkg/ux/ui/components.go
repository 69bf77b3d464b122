// Package ui 提供基础 UI 组件库
//
// 基于 pterm 实现。标准输入是终端时使用交互式组件（方向键选择、掩码输入、动画），
// 否则退化为逐行读取的文本模式，便于脚本和管道驱动控制台流程。
package ui

import (
	"bufio"
	"io"
	"os"

	"github.com/pterm/pterm"
	"golang.org/x/term"
)

// Components UI组件接口，定义控制台流程可用的UI组件
type Components interface {
	// 数据展示组件
	ShowTable(title string, data [][]string) error
	ShowKeyValuePairs(title string, pairs map[string]string) error

	// 交互选择组件
	ShowMenu(title string, options []string) (int, error)
	ShowConfirmDialog(title, message string) (bool, error)
	ShowInputDialog(title, prompt string, isPassword bool) (string, error)

	// 进度反馈组件
	ShowSpinner(message string) Spinner

	// 状态显示组件
	ShowSuccess(message string) error
	ShowError(message string) error
	ShowWarning(message string) error
	ShowInfo(message string) error

	// 布局组件
	ShowHeader(text string) error
	ShowSection(text string) error
}

// Spinner 加载动画接口
type Spinner interface {
	Start() error
	UpdateText(text string) error
	Stop() error
	Success(message string) error
	Fail(message string) error
}

// ThemeConfig 主题配置
type ThemeConfig struct {
	PrimaryColor   pterm.Color
	SecondaryColor pterm.Color
	SuccessColor   pterm.Color
	WarningColor   pterm.Color
	ErrorColor     pterm.Color
	InfoColor      pterm.Color
}

// components UI组件实现
type components struct {
	logger      Logger
	theme       *ThemeConfig
	interactive bool
	in          *bufio.Reader
	out         io.Writer
}

// NewComponents 创建UI组件实例
//
// 标准输入和标准输出都是终端时启用交互式组件
func NewComponents(logger Logger) Components {
	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	c := newComponents(logger, os.Stdin, os.Stdout)
	c.interactive = interactive
	return c
}

// NewLineComponents 创建文本模式的UI组件，从 in 逐行读取输入，输出写入 out
func NewLineComponents(logger Logger, in io.Reader, out io.Writer) Components {
	return newComponents(logger, in, out)
}

func newComponents(logger Logger, in io.Reader, out io.Writer) *components {
	if logger == nil {
		logger = NoopLogger()
	}
	return &components{
		logger: logger,
		theme:  getDefaultTheme(),
		in:     bufio.NewReader(in),
		out:    out,
	}
}

func getDefaultTheme() *ThemeConfig {
	return &ThemeConfig{
		PrimaryColor:   pterm.FgBlue,
		SecondaryColor: pterm.FgCyan,
		SuccessColor:   pterm.FgGreen,
		WarningColor:   pterm.FgYellow,
		ErrorColor:     pterm.FgRed,
		InfoColor:      pterm.FgLightBlue,
	}
}
