package fortune

import (
	"context"
	"time"

	"github.com/PolarTechJordan/richtemple/cmn"
	"github.com/PolarTechJordan/richtemple/cmn/llm"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const defaultLocation = "Asia/Shanghai"

var z = zap.NewNop()

var defaultService = NewService(llm.NewService(llm.Config{}), time.Local)

// Init 初始化每日运势模块，fortune.refresh 开启时在后台每日零点预生成运势，ctx 结束时停止
func Init(ctx context.Context, llmService llm.Service) {
	z = cmn.GetLogger()

	locName := viper.GetString("fortune.location")
	if locName == "" {
		locName = defaultLocation
	}
	loc, err := time.LoadLocation(locName)
	if err != nil {
		z.Fatal("[ FAIL ] failed to load fortune location", zap.String("location", locName), zap.Error(err))
	}

	defaultService = NewService(llmService, loc)

	if viper.GetBool("fortune.refresh") {
		go defaultService.RunMaintainer(ctx)
	}

	cmn.MiniLogger.Info("[ OK ] fortune module initialed", zap.String("location", locName))
}

// Default 返回 Init 注入后的运势服务
func Default() *Service {
	return defaultService
}
