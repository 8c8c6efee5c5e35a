package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"solana-api/internal/codec"
	"solana-api/internal/logic/validate"
	"solana-api/internal/svc"
	"solana-api/internal/types"
)

type VerifyMessageLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewVerifyMessageLogic(ctx context.Context, svcCtx *svc.ServiceContext) *VerifyMessageLogic {
	return &VerifyMessageLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// VerifyMessage 格式错误返回 error；格式正确但签名不匹配返回 valid=false
func (l *VerifyMessageLogic) VerifyMessage(req *types.VerifyMessageRequest) (*types.VerifyMessageData, error) {
	var (
		pubkey types.Pubkey
		sig    []byte
	)
	if err := validate.Run(
		validate.Fields(
			validate.String("message", req.Message),
			validate.String("signature", req.Signature),
			validate.String("pubkey", req.Pubkey),
		),
		validate.Pubkey(&pubkey, req.Pubkey),
		validate.Signature(&sig, req.Signature),
	); err != nil {
		return nil, err
	}

	return &types.VerifyMessageData{
		Valid:   codec.VerifySignature(pubkey, []byte(*req.Message), sig),
		Message: *req.Message,
		Pubkey:  *req.Pubkey,
	}, nil
}
