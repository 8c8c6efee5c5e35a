package svc

import (
	"solana-api/internal/config"
	"solana-api/internal/logic/builder"
)

// ServiceContext 包含服务共享资源（均为只读/无状态，可并发使用）
type ServiceContext struct {
	Config  config.Config
	Builder *builder.InstructionBuilder
}

// NewServiceContext 创建一个新的服务上下文
func NewServiceContext(c config.Config) *ServiceContext {
	return &ServiceContext{
		Config:  c,
		Builder: builder.NewInstructionBuilder(),
	}
}
