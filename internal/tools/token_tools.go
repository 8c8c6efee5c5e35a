package tools

import (
	"solana-api/internal/consts"
	"solana-api/internal/types"
)

// IsSPLTokenProgram 支持 Token v1（Tokenkeg...）和 Token-2022（Tokenz...）
func IsSPLTokenProgram(programId types.Pubkey) bool {
	return programId == consts.TokenProgram || programId == consts.TokenProgram2022
}
