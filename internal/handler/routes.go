package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"solana-api/internal/svc"
)

func Routes(serverCtx *svc.ServiceContext) []rest.Route {
	return []rest.Route{
		{Method: http.MethodGet, Path: "/health", Handler: HealthHandler()},
		{Method: http.MethodPost, Path: "/keypair", Handler: KeypairHandler(serverCtx)},
		{Method: http.MethodPost, Path: "/message/sign", Handler: SignMessageHandler(serverCtx)},
		{Method: http.MethodPost, Path: "/message/verify", Handler: VerifyMessageHandler(serverCtx)},
		{Method: http.MethodPost, Path: "/token/create", Handler: CreateTokenHandler(serverCtx)},
		{Method: http.MethodPost, Path: "/token/mint", Handler: MintTokenHandler(serverCtx)},
		{Method: http.MethodPost, Path: "/send/sol", Handler: SendSolHandler(serverCtx)},
		{Method: http.MethodPost, Path: "/send/token", Handler: SendTokenHandler(serverCtx)},
	}
}

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(Routes(serverCtx))
}
