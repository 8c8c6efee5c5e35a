package domain

import (
	sdktypes "github.com/blocto/solana-go-sdk/types"

	"solana-api/internal/types"
)

// AccountMeta 指令账户描述，顺序由目标程序的调用约定决定
type AccountMeta struct {
	Pubkey     types.Pubkey
	IsSigner   bool
	IsWritable bool
}

// Instruction 表示构建完成的一条指令（只构建，不上链）
type Instruction struct {
	ProgramID types.Pubkey  // 所调用的程序地址（例如 TokenProgram）
	Accounts  []AccountMeta // 指令涉及的账户列表，保持原始顺序
	Data      []byte        // 指令数据（未编码的原始字节序列）
}

// FromSDK 将 solana-go-sdk 构建出的指令转为内部结构
func FromSDK(ix sdktypes.Instruction) Instruction {
	accounts := make([]AccountMeta, 0, len(ix.Accounts))
	for _, a := range ix.Accounts {
		accounts = append(accounts, AccountMeta{
			Pubkey:     types.PubkeyFromCommon(a.PubKey),
			IsSigner:   a.IsSigner,
			IsWritable: a.IsWritable,
		})
	}
	return Instruction{
		ProgramID: types.PubkeyFromCommon(ix.ProgramID),
		Accounts:  accounts,
		Data:      ix.Data,
	}
}
