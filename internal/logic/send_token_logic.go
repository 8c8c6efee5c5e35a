package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"solana-api/internal/logic/builder"
	"solana-api/internal/logic/validate"
	"solana-api/internal/svc"
	"solana-api/internal/types"
)

type SendTokenLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSendTokenLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SendTokenLogic {
	return &SendTokenLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// SendToken 在 owner 与 destination 各自的 ATA 之间转账，由 owner 签名授权
func (l *SendTokenLogic) SendToken(req *types.SendTokenRequest) (*types.TokenTransferData, error) {
	var mint, owner, destination types.Pubkey
	if err := validate.Run(
		validate.Fields(
			validate.String("destination", req.Destination),
			validate.String("mint", req.Mint),
			validate.String("owner", req.Owner),
			validate.Amount("amount", req.Amount),
		),
		validate.Pubkey(&mint, req.Mint),
		validate.Pubkey(&owner, req.Owner),
		validate.Pubkey(&destination, req.Destination),
	); err != nil {
		return nil, err
	}

	ix, err := l.svcCtx.Builder.TokenTransfer(owner, mint, destination, *req.Amount)
	if err != nil {
		l.Errorf("build token transfer failed, owner=%s mint=%s: %v", owner, mint, err)
		return nil, err
	}
	return builder.ToTokenTransferData(ix), nil
}
