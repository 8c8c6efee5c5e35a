package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"solana-api/internal/logic/builder"
	"solana-api/internal/logic/validate"
	"solana-api/internal/svc"
	"solana-api/internal/types"
)

type MintTokenLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewMintTokenLogic(ctx context.Context, svcCtx *svc.ServiceContext) *MintTokenLogic {
	return &MintTokenLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *MintTokenLogic) MintToken(req *types.MintTokenRequest) (*types.InstructionData, error) {
	var mint, destination, authority types.Pubkey
	if err := validate.Run(
		validate.Fields(
			validate.String("mint", req.Mint),
			validate.String("destination", req.Destination),
			validate.String("authority", req.Authority),
			validate.Amount("amount", req.Amount),
		),
		validate.Pubkey(&mint, req.Mint),
		validate.Pubkey(&destination, req.Destination),
		validate.Pubkey(&authority, req.Authority),
	); err != nil {
		return nil, err
	}

	ix, err := l.svcCtx.Builder.MintTo(mint, destination, authority, *req.Amount)
	if err != nil {
		l.Errorf("build mint-to failed, mint=%s: %v", mint, err)
		return nil, err
	}
	return builder.ToInstructionData(ix), nil
}
