package llm

import (
	"fmt"
	"time"

	"github.com/PolarTechJordan/richtemple/cmn"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PlatformDeepSeek = "deepseek"
)

var z = zap.NewNop()

// Config 大模型配置，通过 NewService 显式传入
type Config struct {
	Enable      bool
	Platform    string
	ApiKey      string
	Model       string
	BaseUrl     string
	Timeout     time.Duration
	MaxTokens   int
	Temperature float64
}

func Init() {
	z = cmn.GetLogger()

	cmn.MiniLogger.Info("[ OK ] llm module initialed")
}

// LoadConfig 从 viper 读取 llm 配置，未开启时只返回 Enable=false
func LoadConfig() (Config, error) {
	cfg := Config{
		Enable: viper.GetBool("llm.enable"),
	}
	if !cfg.Enable {
		cmn.MiniLogger.Info("[ -- ] llm module disabled")
		return cfg, nil
	}

	cfg.Platform = viper.GetString("llm.platform")
	switch cfg.Platform {
	case PlatformDeepSeek:
	case "":
		return cfg, fmt.Errorf("llm platform not set")
	default:
		return cfg, fmt.Errorf("llm platform %q is not supported", cfg.Platform)
	}

	cfg.ApiKey = viper.GetString("llm.data.apiKey")
	if cfg.ApiKey == "" {
		return cfg, fmt.Errorf("llm module api key not set")
	}

	cfg.Model = viper.GetString("llm.data.model")
	if cfg.Model == "" {
		return cfg, fmt.Errorf("llm module model not set")
	}

	cfg.BaseUrl = viper.GetString("llm.data.baseUrl")
	if cfg.BaseUrl == "" {
		return cfg, fmt.Errorf("llm module base url not set")
	}

	cfg.Timeout = viper.GetDuration("llm.data.timeout")
	cfg.MaxTokens = viper.GetInt("llm.data.maxTokens")
	cfg.Temperature = viper.GetFloat64("llm.data.temperature")

	return cfg, nil
}
