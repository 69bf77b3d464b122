package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLine(input string) (Components, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewLineComponents(nil, strings.NewReader(input), out), out
}

func plain(buf *bytes.Buffer) string {
	return pterm.RemoveColorFromString(buf.String())
}

func TestNewComponents(t *testing.T) {
	comp := NewComponents(NoopLogger())
	require.NotNil(t, comp)
}

func TestComponents_StatusMessages(t *testing.T) {
	comp, out := newLine("")

	require.NoError(t, comp.ShowSuccess("Minting successful!"))
	require.NoError(t, comp.ShowError("Minting failed."))
	require.NoError(t, comp.ShowWarning("测试警告"))
	require.NoError(t, comp.ShowInfo("Minting..."))

	text := plain(out)
	assert.Contains(t, text, "SUCCESS")
	assert.Contains(t, text, "Minting successful!")
	assert.Contains(t, text, "ERROR")
	assert.Contains(t, text, "Minting failed.")
	assert.Contains(t, text, "测试警告")
	assert.Contains(t, text, "Minting...")
}

func TestComponents_Layout(t *testing.T) {
	comp, out := newLine("")

	require.NoError(t, comp.ShowHeader("NFT Minting DApp"))
	require.NoError(t, comp.ShowSection("交易"))

	text := plain(out)
	assert.Contains(t, text, "NFT Minting DApp")
	assert.Contains(t, text, "交易")
}

func TestComponents_ShowTable(t *testing.T) {
	t.Run("正常显示", func(t *testing.T) {
		comp, out := newLine("")
		err := comp.ShowTable("合约列表", [][]string{
			{"名称", "地址"},
			{"Default NFT Contract", "0x05a8C5aFa171aFAE09218a9270ECe34Dd32CbdCD"},
		})
		require.NoError(t, err)
		assert.Contains(t, plain(out), "Default NFT Contract")
		assert.Contains(t, plain(out), "合约列表")
	})

	t.Run("空数据返回错误", func(t *testing.T) {
		comp, _ := newLine("")
		assert.Error(t, comp.ShowTable("空表格", [][]string{}))
	})
}

func TestComponents_ShowKeyValuePairs(t *testing.T) {
	comp, out := newLine("")
	require.NoError(t, comp.ShowKeyValuePairs("交易", map[string]string{
		"Tx Hash": "0xabc",
		"Account": "0x01",
	}))

	text := plain(out)
	assert.Less(t, strings.Index(text, "Account"), strings.Index(text, "Tx Hash"))
	assert.NoError(t, comp.ShowKeyValuePairs("空", nil))
}

func TestComponents_ShowMenu(t *testing.T) {
	options := []string{"A", "B", "C"}

	t.Run("输入编号", func(t *testing.T) {
		comp, out := newLine("2\n")
		idx, err := comp.ShowMenu("选择", options)
		require.NoError(t, err)
		assert.Equal(t, 1, idx)
		assert.Contains(t, plain(out), "3. C")
	})

	t.Run("直接回车选择第一项", func(t *testing.T) {
		comp, _ := newLine("\n")
		idx, err := comp.ShowMenu("", options)
		require.NoError(t, err)
		assert.Equal(t, 0, idx)
	})

	t.Run("无效编号", func(t *testing.T) {
		comp, _ := newLine("9\n")
		_, err := comp.ShowMenu("", options)
		assert.Error(t, err)
	})

	t.Run("输入结束视为取消", func(t *testing.T) {
		comp, _ := newLine("")
		_, err := comp.ShowMenu("", options)
		assert.ErrorIs(t, err, ErrCancelled)
	})

	t.Run("空选项", func(t *testing.T) {
		comp, _ := newLine("1\n")
		_, err := comp.ShowMenu("", nil)
		assert.Error(t, err)
	})
}

func TestComponents_ShowInputDialog(t *testing.T) {
	comp, out := newLine("  0x2222222222222222222222222222222222222222  \n")
	value, err := comp.ShowInputDialog("", "Recipient Address", false)
	require.NoError(t, err)
	assert.Equal(t, "0x2222222222222222222222222222222222222222", value)
	assert.Contains(t, plain(out), "Recipient Address: ")

	t.Run("最后一行没有换行", func(t *testing.T) {
		comp, _ := newLine("abc")
		value, err := comp.ShowInputDialog("", "输入", false)
		require.NoError(t, err)
		assert.Equal(t, "abc", value)
	})
}

func TestComponents_ShowConfirmDialog(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
	}
	for _, tc := range cases {
		comp, _ := newLine(tc.input)
		ok, err := comp.ShowConfirmDialog("确认", "Mint NFT?")
		require.NoError(t, err)
		assert.Equal(t, tc.want, ok, "输入 %q", tc.input)
	}
}

func TestComponents_LineSpinner(t *testing.T) {
	comp, out := newLine("")
	spinner := comp.ShowSpinner("Minting...")

	assert.Error(t, spinner.Success("未启动"))
	require.NoError(t, spinner.Start())
	require.NoError(t, spinner.UpdateText("Waiting for receipt"))
	require.NoError(t, spinner.Fail("Minting failed."))
	require.NoError(t, spinner.Stop())

	text := plain(out)
	assert.Contains(t, text, "Minting...")
	assert.Contains(t, text, "Waiting for receipt")
	assert.Contains(t, text, "Minting failed.")
	assert.NotContains(t, text, "未启动")
}
