package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"solana-api/internal/logic/builder"
	"solana-api/internal/logic/validate"
	"solana-api/internal/svc"
	"solana-api/internal/types"
)

type SendSolLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSendSolLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SendSolLogic {
	return &SendSolLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// SendSol 只有校验/解码会失败，system transfer 的构建本身不会失败
func (l *SendSolLogic) SendSol(req *types.SendSolRequest) (*types.SolTransferData, error) {
	var from, to types.Pubkey
	if err := validate.Run(
		validate.Fields(
			validate.String("from", req.From),
			validate.String("to", req.To),
			validate.Amount("lamports", req.Lamports),
		),
		validate.Pubkey(&from, req.From),
		validate.Pubkey(&to, req.To),
	); err != nil {
		return nil, err
	}

	ix := l.svcCtx.Builder.SolTransfer(from, to, *req.Lamports)
	return builder.ToSolTransferData(ix), nil
}
