package types

// 请求字段全部使用指针：nil 表示未提供，用于区分“缺失”与“零值”

type SignMessageRequest struct {
	Message *string `json:"message"`
	Secret  *string `json:"secret"`
}

type VerifyMessageRequest struct {
	Message   *string `json:"message"`
	Signature *string `json:"signature"`
	Pubkey    *string `json:"pubkey"`
}

type CreateTokenRequest struct {
	MintAuthority *string `json:"mintAuthority"`
	Mint          *string `json:"mint"`
	Decimals      *uint8  `json:"decimals"`
}

type MintTokenRequest struct {
	Mint        *string `json:"mint"`
	Destination *string `json:"destination"`
	Authority   *string `json:"authority"`
	Amount      *uint64 `json:"amount"`
}

type SendSolRequest struct {
	From     *string `json:"from"`
	To       *string `json:"to"`
	Lamports *uint64 `json:"lamports"`
}

type SendTokenRequest struct {
	Destination *string `json:"destination"`
	Mint        *string `json:"mint"`
	Owner       *string `json:"owner"`
	Amount      *uint64 `json:"amount"`
}

// EmptyRequest 无参数接口（如 /keypair）
type EmptyRequest struct{}

type KeypairData struct {
	Pubkey string `json:"pubkey"`
	Secret string `json:"secret"`
}

type SignMessageData struct {
	Signature string `json:"signature"`
	PublicKey string `json:"public_key"`
	Message   string `json:"message"`
}

type VerifyMessageData struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
	Pubkey  string `json:"pubkey"`
}

type AccountInfo struct {
	Pubkey     string `json:"pubkey"`
	IsSigner   bool   `json:"is_signer"`
	IsWritable bool   `json:"is_writable"`
}

// InstructionData create-token / mint-token 的响应
type InstructionData struct {
	ProgramID       string        `json:"program_id"`
	Accounts        []AccountInfo `json:"accounts"`
	InstructionData string        `json:"instruction_data"`
}

// SolTransferData accounts 只有地址
type SolTransferData struct {
	ProgramID       string   `json:"program_id"`
	Accounts        []string `json:"accounts"`
	InstructionData string   `json:"instruction_data"`
}

type TokenAccountInfo struct {
	Pubkey   string `json:"pubkey"`
	IsSigner bool   `json:"isSigner"`
}

type TokenTransferData struct {
	ProgramID       string             `json:"program_id"`
	Accounts        []TokenAccountInfo `json:"accounts"`
	InstructionData string             `json:"instruction_data"`
}

type HealthData struct {
	Status string `json:"status"`
}
