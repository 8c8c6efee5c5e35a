package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"solana-api/internal/logic/builder"
	"solana-api/internal/logic/validate"
	"solana-api/internal/svc"
	"solana-api/internal/types"
)

type CreateTokenLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCreateTokenLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateTokenLogic {
	return &CreateTokenLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CreateTokenLogic) CreateToken(req *types.CreateTokenRequest) (*types.InstructionData, error) {
	var authority, mint types.Pubkey
	if err := validate.Run(
		validate.Fields(
			validate.String("mintAuthority", req.MintAuthority),
			validate.String("mint", req.Mint),
			validate.Present("decimals", req.Decimals),
		),
		validate.Pubkey(&authority, req.MintAuthority),
		validate.Pubkey(&mint, req.Mint),
	); err != nil {
		return nil, err
	}

	ix, err := l.svcCtx.Builder.CreateMint(mint, authority, *req.Decimals)
	if err != nil {
		l.Errorf("build initialize-mint failed, mint=%s: %v", mint, err)
		return nil, err
	}
	return builder.ToInstructionData(ix), nil
}
