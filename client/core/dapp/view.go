package dapp

// MessageKind 状态消息类型
type MessageKind string

const (
	MessageNone    MessageKind = "none"
	MessageInfo    MessageKind = "info"
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
)

// AttemptState 铸造尝试状态
type AttemptState string

const (
	AttemptIdle      AttemptState = "idle"
	AttemptPending   AttemptState = "pending"
	AttemptSucceeded AttemptState = "succeeded"
	AttemptFailed    AttemptState = "failed"
)

// 页面消息
const (
	MsgInstallWallet     = "Please install MetaMask."
	MsgConnectFailed     = "Wallet connection failed: "
	MsgConnected         = "Wallet connected successfully!"
	MsgConnectFirst      = "Please connect your wallet first."
	MsgRecipientRequired = "Please fill in the recipient address."
	MsgMinting           = "Minting..."
	MsgMintSucceeded     = "Minting successful!"
	MsgMintFailed        = "Minting failed."
)

// View 页面状态快照
type View struct {
	Account          string          `json:"account,omitempty"`
	Connected        bool            `json:"connected"`
	ChainID          string          `json:"chain_id,omitempty"`
	Contracts        []ContractEntry `json:"contracts"`
	SelectedContract string          `json:"selected_contract"`
	ContractURL      string          `json:"contract_url"`
	Recipient        string          `json:"recipient"`
	Message          string          `json:"message,omitempty"`
	MessageKind      MessageKind     `json:"message_kind"`
	Attempt          AttemptState    `json:"attempt"`
	TxHash           string          `json:"tx_hash,omitempty"`
	TxURL            string          `json:"tx_url,omitempty"`
}

// SelectedLabel 当前选择合约的名称
func (v View) SelectedLabel() string {
	for _, c := range v.Contracts {
		if c.Address == v.SelectedContract {
			return c.Label
		}
	}
	return v.SelectedContract
}
