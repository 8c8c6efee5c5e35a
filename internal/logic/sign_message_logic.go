package logic

import (
	"context"

	sdktypes "github.com/blocto/solana-go-sdk/types"
	"github.com/zeromicro/go-zero/core/logx"

	"solana-api/internal/codec"
	"solana-api/internal/logic/validate"
	"solana-api/internal/svc"
	"solana-api/internal/types"
)

type SignMessageLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSignMessageLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SignMessageLogic {
	return &SignMessageLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// SignMessage 对 message 的 UTF-8 原始字节签名，不做任何规范化
func (l *SignMessageLogic) SignMessage(req *types.SignMessageRequest) (*types.SignMessageData, error) {
	var account sdktypes.Account
	if err := validate.Run(
		validate.Fields(
			validate.String("message", req.Message),
			validate.String("secret", req.Secret),
		),
		validate.Keypair(&account, req.Secret),
	); err != nil {
		return nil, err
	}

	sig := account.Sign([]byte(*req.Message))
	return &types.SignMessageData{
		Signature: codec.EncodeSignature(sig),
		PublicKey: account.PublicKey.ToBase58(),
		Message:   *req.Message,
	}, nil
}
