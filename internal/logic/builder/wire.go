package builder

import (
	"solana-api/internal/codec"
	"solana-api/internal/logic/domain"
	"solana-api/internal/types"
)

// ToInstructionData 完整账户信息（create-token / mint-token）
func ToInstructionData(ix domain.Instruction) *types.InstructionData {
	accounts := make([]types.AccountInfo, 0, len(ix.Accounts))
	for _, a := range ix.Accounts {
		accounts = append(accounts, types.AccountInfo{
			Pubkey:     a.Pubkey.String(),
			IsSigner:   a.IsSigner,
			IsWritable: a.IsWritable,
		})
	}
	return &types.InstructionData{
		ProgramID:       ix.ProgramID.String(),
		Accounts:        accounts,
		InstructionData: codec.EncodeData(ix.Data),
	}
}

// ToSolTransferData 只输出账户地址
func ToSolTransferData(ix domain.Instruction) *types.SolTransferData {
	accounts := make([]string, 0, len(ix.Accounts))
	for _, a := range ix.Accounts {
		accounts = append(accounts, a.Pubkey.String())
	}
	return &types.SolTransferData{
		ProgramID:       ix.ProgramID.String(),
		Accounts:        accounts,
		InstructionData: codec.EncodeData(ix.Data),
	}
}

// ToTokenTransferData 账户只带 isSigner
func ToTokenTransferData(ix domain.Instruction) *types.TokenTransferData {
	accounts := make([]types.TokenAccountInfo, 0, len(ix.Accounts))
	for _, a := range ix.Accounts {
		accounts = append(accounts, types.TokenAccountInfo{
			Pubkey:   a.Pubkey.String(),
			IsSigner: a.IsSigner,
		})
	}
	return &types.TokenTransferData{
		ProgramID:       ix.ProgramID.String(),
		Accounts:        accounts,
		InstructionData: codec.EncodeData(ix.Data),
	}
}
