package ui

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

// ErrCancelled 用户取消操作
var ErrCancelled = errors.New("用户取消操作")

// ShowTable 显示表格，第一行为表头
func (c *components) ShowTable(title string, data [][]string) error {
	if len(data) == 0 {
		return fmt.Errorf("表格数据不能为空")
	}
	if title != "" {
		c.printHeader(title, c.theme.PrimaryColor)
	}

	rendered, err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderRowSeparator("-").
		WithData(pterm.TableData(data)).
		Srender()
	if err != nil {
		return fmt.Errorf("渲染表格失败: %w", err)
	}
	_, err = fmt.Fprintln(c.out, rendered)
	return err
}

// ShowKeyValuePairs 显示键值对，按键排序
func (c *components) ShowKeyValuePairs(title string, pairs map[string]string) error {
	if len(pairs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	data := [][]string{{"项目", "值"}}
	for _, k := range keys {
		data = append(data, []string{k, pairs[k]})
	}
	return c.ShowTable(title, data)
}

// ShowMenu 显示菜单选择，返回选中项的索引
func (c *components) ShowMenu(title string, options []string) (int, error) {
	if len(options) == 0 {
		return -1, fmt.Errorf("菜单选项不能为空")
	}
	if title != "" {
		c.printHeader(title, c.theme.PrimaryColor)
	}

	if !c.interactive {
		return c.lineMenu(options)
	}

	result, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultOption(options[0]).
		WithDefaultText("请选择一个选项").
		WithMaxHeight(10).
		WithFilter(false).
		Show()
	if err != nil {
		if err.Error() == "interrupt" {
			return -1, ErrCancelled
		}
		return -1, fmt.Errorf("菜单选择失败: %w", err)
	}

	for i, option := range options {
		if option == result {
			return i, nil
		}
	}
	return -1, fmt.Errorf("未找到选中的选项: %s", result)
}

// ShowConfirmDialog 显示确认对话框，默认不确认
func (c *components) ShowConfirmDialog(title, message string) (bool, error) {
	if title != "" {
		c.printHeader(title, c.theme.WarningColor)
	}
	if message != "" {
		_ = c.ShowInfo(message)
	}

	if !c.interactive {
		fmt.Fprint(c.out, "确认继续吗？[y/N]: ")
		line, err := c.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}

	result, err := pterm.DefaultInteractiveConfirm.
		WithDefaultText("确认继续吗？").
		WithDefaultValue(false).
		Show()
	if err != nil {
		return false, fmt.Errorf("确认对话框失败: %w", err)
	}
	return result, nil
}

// ShowInputDialog 显示输入对话框，返回去除首尾空白后的输入
func (c *components) ShowInputDialog(title, prompt string, isPassword bool) (string, error) {
	if title != "" {
		c.printHeader(title, c.theme.InfoColor)
	}

	if !c.interactive {
		fmt.Fprintf(c.out, "%s: ", prompt)
		return c.readLine()
	}

	input := pterm.DefaultInteractiveTextInput.WithDefaultText(prompt)
	if isPassword {
		input = input.WithMask("*")
	}
	result, err := input.Show()
	if err != nil {
		if err.Error() == "interrupt" {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("输入对话框失败: %w", err)
	}
	return strings.TrimSpace(result), nil
}

// ShowSpinner 创建加载动画，调用 Start 后显示
func (c *components) ShowSpinner(message string) Spinner {
	if !c.interactive {
		return &lineSpinner{message: message, c: c}
	}
	return &spinnerImpl{message: message, theme: c.theme}
}

// ShowSuccess 显示成功消息
func (c *components) ShowSuccess(message string) error {
	return c.printPrefixed(pterm.Success, "SUCCESS", c.theme.SuccessColor, message)
}

// ShowError 显示错误消息
func (c *components) ShowError(message string) error {
	return c.printPrefixed(pterm.Error, "ERROR", c.theme.ErrorColor, message)
}

// ShowWarning 显示警告消息
func (c *components) ShowWarning(message string) error {
	return c.printPrefixed(pterm.Warning, "WARNING", c.theme.WarningColor, message)
}

// ShowInfo 显示信息消息
func (c *components) ShowInfo(message string) error {
	return c.printPrefixed(pterm.Info, "INFO", c.theme.InfoColor, message)
}

// ShowHeader 显示页头
func (c *components) ShowHeader(text string) error {
	c.printHeader(text, c.theme.PrimaryColor)
	return nil
}

// ShowSection 显示分节标题
func (c *components) ShowSection(text string) error {
	_, err := fmt.Fprint(c.out, pterm.DefaultSection.WithStyle(pterm.NewStyle(c.theme.PrimaryColor)).Sprintln(text))
	return err
}

func (c *components) printHeader(text string, color pterm.Color) {
	fmt.Fprintln(c.out, pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(color)).
		Sprint(text))
	fmt.Fprintln(c.out)
}

func (c *components) printPrefixed(printer pterm.PrefixPrinter, prefix string, color pterm.Color, message string) error {
	_, err := fmt.Fprint(c.out, printer.WithPrefix(pterm.Prefix{
		Text:  prefix,
		Style: pterm.NewStyle(color),
	}).Sprintln(message))
	return err
}

// lineMenu 文本模式菜单：输入编号选择，直接回车选择第一项
func (c *components) lineMenu(options []string) (int, error) {
	for i, option := range options {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, option)
	}
	fmt.Fprintf(c.out, "请输入选项编号 (1-%d): ", len(options))

	line, err := c.readLine()
	if err != nil {
		return -1, err
	}
	if line == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > len(options) {
		return -1, fmt.Errorf("无效的选项编号: %s", line)
	}
	return n - 1, nil
}

// readLine 读取一行输入；输入结束视为取消
func (c *components) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			c.logger.Debug("输入已结束")
			return "", ErrCancelled
		}
		return "", fmt.Errorf("读取输入失败: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// spinnerImpl 加载动画实现
type spinnerImpl struct {
	message string
	spinner *pterm.SpinnerPrinter
	theme   *ThemeConfig
}

func (s *spinnerImpl) Start() error {
	var err error
	s.spinner, err = pterm.DefaultSpinner.
		WithText(s.message).
		WithStyle(pterm.NewStyle(s.theme.PrimaryColor)).
		WithRemoveWhenDone(false).
		Start()
	return err
}

func (s *spinnerImpl) UpdateText(text string) error {
	if s.spinner == nil {
		return fmt.Errorf("加载动画未启动")
	}
	s.message = text
	s.spinner.UpdateText(text)
	return nil
}

func (s *spinnerImpl) Stop() error {
	if s.spinner == nil {
		return nil
	}
	return s.spinner.Stop()
}

func (s *spinnerImpl) Success(message string) error {
	if s.spinner == nil {
		return fmt.Errorf("加载动画未启动")
	}
	s.spinner.Success(message)
	return nil
}

func (s *spinnerImpl) Fail(message string) error {
	if s.spinner == nil {
		return fmt.Errorf("加载动画未启动")
	}
	s.spinner.Fail(message)
	return nil
}

// lineSpinner 文本模式下的加载提示，只输出状态变化
type lineSpinner struct {
	message string
	started bool
	c       *components
}

func (s *lineSpinner) Start() error {
	s.started = true
	return s.c.ShowInfo(s.message)
}

func (s *lineSpinner) UpdateText(text string) error {
	if !s.started {
		return fmt.Errorf("加载动画未启动")
	}
	s.message = text
	return s.c.ShowInfo(text)
}

func (s *lineSpinner) Stop() error {
	s.started = false
	return nil
}

func (s *lineSpinner) Success(message string) error {
	if !s.started {
		return fmt.Errorf("加载动画未启动")
	}
	s.started = false
	return s.c.ShowSuccess(message)
}

func (s *lineSpinner) Fail(message string) error {
	if !s.started {
		return fmt.Errorf("加载动画未启动")
	}
	s.started = false
	return s.c.ShowError(message)
}
