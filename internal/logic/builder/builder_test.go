package builder

import (
	"encoding/base64"
	"testing"

	"github.com/blocto/solana-go-sdk/common"
	sdktoken "github.com/blocto/solana-go-sdk/program/token"
	sdktypes "github.com/blocto/solana-go-sdk/types"
	"github.com/near/borsh-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solana-api/internal/consts"
	"solana-api/internal/errorx"
	"solana-api/internal/logic/domain"
	"solana-api/internal/types"
)

func newPubkey() types.Pubkey {
	return types.PubkeyFromCommon(sdktypes.NewAccount().PublicKey)
}

// amountLayout Transfer / MintTo 的指令数据：1 字节指令号 + u64 LE
type amountLayout struct {
	Instruction uint8
	Amount      uint64
}

type initializeMintLayout struct {
	Instruction     uint8
	Decimals        uint8
	MintAuthority   [32]byte
	HasFreeze       uint8
	FreezeAuthority [32]byte
}

type systemTransferLayout struct {
	Instruction uint32
	Lamports    uint64
}

func TestCreateMint(t *testing.T) {
	b := NewInstructionBuilder()
	mint, auth := newPubkey(), newPubkey()

	ix, err := b.CreateMint(mint, auth, 0)
	require.NoError(t, err)

	assert.Equal(t, consts.TokenProgram, ix.ProgramID)
	assert.Equal(t, []domain.AccountMeta{
		{Pubkey: mint, IsSigner: false, IsWritable: true},
		{Pubkey: consts.SysvarRent, IsSigner: false, IsWritable: false},
	}, ix.Accounts)

	require.Len(t, ix.Data, 67)
	var data initializeMintLayout
	require.NoError(t, borsh.Deserialize(&data, ix.Data))
	assert.Equal(t, uint8(sdktoken.InstructionInitializeMint), data.Instruction)
	assert.Equal(t, uint8(0), data.Decimals, "decimals=0 合法")
	assert.Equal(t, [32]byte(auth), data.MintAuthority)
	assert.Equal(t, uint8(1), data.HasFreeze)
	assert.Equal(t, [32]byte(auth), data.FreezeAuthority, "freeze authority 与 mint authority 相同")
}

func TestMintTo_AccountFlags(t *testing.T) {
	b := NewInstructionBuilder()
	mint, dest, auth := newPubkey(), newPubkey(), newPubkey()

	ix, err := b.MintTo(mint, dest, auth, 1000)
	require.NoError(t, err)

	assert.Equal(t, consts.TokenProgram, ix.ProgramID)
	assert.Equal(t, []domain.AccountMeta{
		{Pubkey: mint, IsSigner: false, IsWritable: true},
		{Pubkey: dest, IsSigner: false, IsWritable: true},
		{Pubkey: auth, IsSigner: true, IsWritable: false},
	}, ix.Accounts)

	var data amountLayout
	require.NoError(t, borsh.Deserialize(&data, ix.Data))
	assert.Equal(t, uint8(sdktoken.InstructionMintTo), data.Instruction)
	assert.Equal(t, uint64(1000), data.Amount)
}

func TestSolTransfer(t *testing.T) {
	b := NewInstructionBuilder()
	from, to := newPubkey(), newPubkey()

	ix := b.SolTransfer(from, to, 1_000_000_000)
	assert.Equal(t, consts.SystemProgram, ix.ProgramID)
	assert.Equal(t, []domain.AccountMeta{
		{Pubkey: from, IsSigner: true, IsWritable: true},
		{Pubkey: to, IsSigner: false, IsWritable: true},
	}, ix.Accounts)

	require.Len(t, ix.Data, 12)
	var data systemTransferLayout
	require.NoError(t, borsh.Deserialize(&data, ix.Data))
	assert.Equal(t, uint32(2), data.Instruction)
	assert.Equal(t, uint64(1_000_000_000), data.Lamports)
}

func TestTokenTransfer_DerivesATAs(t *testing.T) {
	b := NewInstructionBuilder()
	owner, mint, dest := newPubkey(), newPubkey(), newPubkey()

	ix, err := b.TokenTransfer(owner, mint, dest, 42)
	require.NoError(t, err)

	srcATA, _, err := common.FindProgramAddress(
		[][]byte{owner[:], common.TokenProgramID.Bytes(), mint[:]},
		common.SPLAssociatedTokenAccountProgramID,
	)
	require.NoError(t, err)
	destATA, _, err := common.FindProgramAddress(
		[][]byte{dest[:], common.TokenProgramID.Bytes(), mint[:]},
		common.SPLAssociatedTokenAccountProgramID,
	)
	require.NoError(t, err)

	assert.Equal(t, consts.TokenProgram, ix.ProgramID)
	assert.Equal(t, []domain.AccountMeta{
		{Pubkey: types.PubkeyFromCommon(srcATA), IsSigner: false, IsWritable: true},
		{Pubkey: types.PubkeyFromCommon(destATA), IsSigner: false, IsWritable: true},
		{Pubkey: owner, IsSigner: true, IsWritable: false},
	}, ix.Accounts)

	var data amountLayout
	require.NoError(t, borsh.Deserialize(&data, ix.Data))
	assert.Equal(t, uint8(sdktoken.InstructionTransfer), data.Instruction)
	assert.Equal(t, uint64(42), data.Amount)
}

func TestAssociatedTokenAddress_Deterministic(t *testing.T) {
	owner, mint := newPubkey(), newPubkey()

	first, err := AssociatedTokenAddress(owner, mint)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := AssociatedTokenAddress(owner, mint)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}

	other, err := AssociatedTokenAddress(newPubkey(), mint)
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestBuildToken_Failures(t *testing.T) {
	_, err := buildToken(msgMintFailed, func() sdktypes.Instruction {
		panic("serialize failed")
	})
	assert.ErrorIs(t, err, errorx.ErrInstructionBuildFailed)
	assert.Equal(t, msgMintFailed, err.Error())

	_, err = buildToken(msgTransferFailed, func() sdktypes.Instruction {
		return sdktypes.Instruction{ProgramID: common.SystemProgramID}
	})
	assert.ErrorIs(t, err, errorx.ErrInstructionBuildFailed)
	assert.Equal(t, msgTransferFailed, err.Error())
}

func TestWireMapping(t *testing.T) {
	b := NewInstructionBuilder()
	from, to := newPubkey(), newPubkey()
	ix := b.SolTransfer(from, to, 5)

	sol := ToSolTransferData(ix)
	assert.Equal(t, consts.SystemProgramStr, sol.ProgramID)
	assert.Equal(t, []string{from.String(), to.String()}, sol.Accounts)
	raw, err := base64.StdEncoding.DecodeString(sol.InstructionData)
	require.NoError(t, err)
	assert.Equal(t, ix.Data, raw)

	full := ToInstructionData(ix)
	require.Len(t, full.Accounts, 2)
	assert.Equal(t, types.AccountInfo{Pubkey: from.String(), IsSigner: true, IsWritable: true}, full.Accounts[0])

	tok := ToTokenTransferData(ix)
	assert.Equal(t, types.TokenAccountInfo{Pubkey: to.String(), IsSigner: false}, tok.Accounts[1])
	assert.Equal(t, sol.InstructionData, tok.InstructionData)
}
