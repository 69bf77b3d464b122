package explorer

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestLink(t *testing.T) {
	hash := common.HexToHash("0xabc")

	t.Run("默认 Sepolia", func(t *testing.T) {
		e := New("")
		assert.Equal(t, "https://sepolia.etherscan.io/tx/"+hash.Hex(), e.Link(hash))
	})

	t.Run("自定义地址去掉末尾斜杠", func(t *testing.T) {
		e := New(" https://etherscan.io/ ")
		assert.Equal(t, "https://etherscan.io", e.BaseURL())
		assert.Equal(t, "https://etherscan.io/tx/"+hash.Hex(), e.Link(hash))
	})

	t.Run("地址链接", func(t *testing.T) {
		addr := common.HexToAddress("0x05a8C5aFa171aFAE09218a9270ECe34Dd32CbdCD")
		assert.Equal(t, "https://sepolia.etherscan.io/address/"+addr.Hex(), New("").AddressLink(addr))
	})
}
