package divination

import (
	"github.com/PolarTechJordan/richtemple/cmn"
	"github.com/PolarTechJordan/richtemple/cmn/llm"
	"go.uber.org/zap"
)

var z = zap.NewNop()

var defaultService = NewService(llm.NewService(llm.Config{}))

// Init 使用注入的大模型服务初始化占卜模块
func Init(llmService llm.Service) {
	z = cmn.GetLogger()

	defaultService = NewService(llmService)

	cmn.MiniLogger.Info("[ OK ] divination module initialed")
}

// Default 返回 Init 注入后的占卜服务
func Default() *Service {
	return defaultService
}
