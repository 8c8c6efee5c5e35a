package logic

import (
	"context"

	sdktypes "github.com/blocto/solana-go-sdk/types"
	"github.com/zeromicro/go-zero/core/logx"

	"solana-api/internal/codec"
	"solana-api/internal/svc"
	"solana-api/internal/types"
)

type KeypairLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewKeypairLogic(ctx context.Context, svcCtx *svc.ServiceContext) *KeypairLogic {
	return &KeypairLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Keypair 生成新的 ed25519 keypair，secret 为 base58(secret || public)
func (l *KeypairLogic) Keypair(_ *types.EmptyRequest) (*types.KeypairData, error) {
	account := sdktypes.NewAccount()
	return &types.KeypairData{
		Pubkey: account.PublicKey.ToBase58(),
		Secret: codec.EncodeKeypair(account),
	}, nil
}
