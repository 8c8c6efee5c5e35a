package handler

import (
	"context"
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"solana-api/internal/logic"
	"solana-api/internal/svc"
	"solana-api/internal/types"
)

func KeypairHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return jsonHandler(svcCtx, func(ctx context.Context, svcCtx *svc.ServiceContext, req *types.EmptyRequest) (*types.KeypairData, error) {
		return logic.NewKeypairLogic(ctx, svcCtx).Keypair(req)
	})
}

func SignMessageHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return jsonHandler(svcCtx, func(ctx context.Context, svcCtx *svc.ServiceContext, req *types.SignMessageRequest) (*types.SignMessageData, error) {
		return logic.NewSignMessageLogic(ctx, svcCtx).SignMessage(req)
	})
}

func VerifyMessageHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return jsonHandler(svcCtx, func(ctx context.Context, svcCtx *svc.ServiceContext, req *types.VerifyMessageRequest) (*types.VerifyMessageData, error) {
		return logic.NewVerifyMessageLogic(ctx, svcCtx).VerifyMessage(req)
	})
}

func CreateTokenHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return jsonHandler(svcCtx, func(ctx context.Context, svcCtx *svc.ServiceContext, req *types.CreateTokenRequest) (*types.InstructionData, error) {
		return logic.NewCreateTokenLogic(ctx, svcCtx).CreateToken(req)
	})
}

func MintTokenHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return jsonHandler(svcCtx, func(ctx context.Context, svcCtx *svc.ServiceContext, req *types.MintTokenRequest) (*types.InstructionData, error) {
		return logic.NewMintTokenLogic(ctx, svcCtx).MintToken(req)
	})
}

func SendSolHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return jsonHandler(svcCtx, func(ctx context.Context, svcCtx *svc.ServiceContext, req *types.SendSolRequest) (*types.SolTransferData, error) {
		return logic.NewSendSolLogic(ctx, svcCtx).SendSol(req)
	})
}

func SendTokenHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return jsonHandler(svcCtx, func(ctx context.Context, svcCtx *svc.ServiceContext, req *types.SendTokenRequest) (*types.TokenTransferData, error) {
		return logic.NewSendTokenLogic(ctx, svcCtx).SendToken(req)
	})
}

// HealthHandler 存活探针
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.OkJsonCtx(r.Context(), w, types.HealthData{Status: "ok"})
	}
}
