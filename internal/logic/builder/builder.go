package builder

import (
	"fmt"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/program/system"
	"github.com/blocto/solana-go-sdk/program/token"
	sdktypes "github.com/blocto/solana-go-sdk/types"

	"solana-api/internal/errorx"
	"solana-api/internal/logic/domain"
	"solana-api/internal/tools"
	"solana-api/internal/types"
)

const (
	msgCreateTokenFailed = "Failed to create token instruction"
	msgMintFailed        = "Failed to create mint instruction"
	msgTransferFailed    = "Failed to create transfer instruction"
)

// InstructionBuilder 无状态，可被并发请求共享
type InstructionBuilder struct{}

func NewInstructionBuilder() *InstructionBuilder {
	return &InstructionBuilder{}
}

// CreateMint InitializeMint 指令，mint authority 同时作为 freeze authority
func (b *InstructionBuilder) CreateMint(mint, authority types.Pubkey, decimals uint8) (domain.Instruction, error) {
	auth := authority.ToCommon()
	return buildToken(msgCreateTokenFailed, func() sdktypes.Instruction {
		return token.InitializeMint(token.InitializeMintParam{
			Decimals:   decimals,
			Mint:       mint.ToCommon(),
			MintAuth:   auth,
			FreezeAuth: &auth,
		})
	})
}

// MintTo 不支持多签，Signers 固定为空
func (b *InstructionBuilder) MintTo(mint, destination, authority types.Pubkey, amount uint64) (domain.Instruction, error) {
	return buildToken(msgMintFailed, func() sdktypes.Instruction {
		return token.MintTo(token.MintToParam{
			Mint:    mint.ToCommon(),
			To:      destination.ToCommon(),
			Auth:    authority.ToCommon(),
			Signers: []common.PublicKey{},
			Amount:  amount,
		})
	})
}

// SolTransfer 地址与金额已校验，构建不会失败
func (b *InstructionBuilder) SolTransfer(from, to types.Pubkey, lamports uint64) domain.Instruction {
	return domain.FromSDK(system.Transfer(system.TransferParam{
		From:   from.ToCommon(),
		To:     to.ToCommon(),
		Amount: lamports,
	}))
}

// TokenTransfer 先分别推导 owner / destination 的 ATA，再在两个 ATA 之间构建 Transfer
func (b *InstructionBuilder) TokenTransfer(owner, mint, destination types.Pubkey, amount uint64) (domain.Instruction, error) {
	srcATA, err := AssociatedTokenAddress(owner, mint)
	if err != nil {
		return domain.Instruction{}, errorx.BuildFailed(msgTransferFailed, err)
	}
	destATA, err := AssociatedTokenAddress(destination, mint)
	if err != nil {
		return domain.Instruction{}, errorx.BuildFailed(msgTransferFailed, err)
	}

	return buildToken(msgTransferFailed, func() sdktypes.Instruction {
		return token.Transfer(token.TransferParam{
			From:    srcATA.ToCommon(),
			To:      destATA.ToCommon(),
			Auth:    owner.ToCommon(),
			Signers: []common.PublicKey{},
			Amount:  amount,
		})
	})
}

// AssociatedTokenAddress 由 (wallet, mint) 确定性推导 ATA 地址
func AssociatedTokenAddress(wallet, mint types.Pubkey) (types.Pubkey, error) {
	ata, _, err := common.FindAssociatedTokenAddress(wallet.ToCommon(), mint.ToCommon())
	if err != nil {
		return types.Pubkey{}, fmt.Errorf("find associated token address (wallet=%s, mint=%s): %w", wallet, mint, err)
	}
	return types.PubkeyFromCommon(ata), nil
}

// buildToken sdk 序列化失败时会 panic，这里统一 recover 成 InstructionBuildFailed；
// 同时校验结果确实指向 SPL Token 程序
func buildToken(failMsg string, fn func() sdktypes.Instruction) (ix domain.Instruction, err error) {
	defer func() {
		if r := recover(); r != nil {
			ix = domain.Instruction{}
			err = errorx.BuildFailed(failMsg, fmt.Errorf("sdk panic: %v", r))
		}
	}()

	ix = domain.FromSDK(fn())
	if !tools.IsSPLTokenProgram(ix.ProgramID) {
		return domain.Instruction{}, errorx.BuildFailed(failMsg,
			fmt.Errorf("unexpected program id %s", ix.ProgramID))
	}
	return ix, nil
}
