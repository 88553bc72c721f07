package cmn

import (
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const Version = "v0.3.1"

func InitConfig() {
	err := initViper()
	if err != nil {
		logger.Fatal("[ FAIL ] failed to init viper", zap.Error(err))
	}

	MiniLogger.Info("[ OK ] config module initialed", zap.String("path", viper.ConfigFileUsed()))
}

func initViper() error {
	// 读取配置文件
	viper.SetConfigName(".config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")
	viper.AddConfigPath("../../..")
	viper.SetConfigType("json")

	setDefaults()

	err := viper.ReadInConfig()
	if err != nil {
		logger.Error("init config failed", zap.Error(err))
		return err
	}

	return nil
}

// setDefaults 设置各模块的默认配置
func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", "8080")

	viper.SetDefault("llm.enable", false)
	viper.SetDefault("llm.platform", "deepseek")
	viper.SetDefault("llm.data.baseUrl", "https://api.deepseek.com")
	viper.SetDefault("llm.data.model", "deepseek-chat")
	viper.SetDefault("llm.data.timeout", "60s")
	viper.SetDefault("llm.data.temperature", 0.7)

	viper.SetDefault("divination.maxWishLength", 200)

	viper.SetDefault("fortune.location", "Asia/Shanghai")
	viper.SetDefault("fortune.refresh", true)

	viper.SetDefault("offering.currencies", []string{"ETH", "USDT"})
}
