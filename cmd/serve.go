/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/PolarTechJordan/richtemple/cmn"
	"github.com/PolarTechJordan/richtemple/cmn/llm"
	"github.com/PolarTechJordan/richtemple/router"
	"github.com/PolarTechJordan/richtemple/serve/divination"
	"github.com/PolarTechJordan/richtemple/serve/fortune"
	"github.com/PolarTechJordan/richtemple/serve/ritual"
	"github.com/PolarTechJordan/richtemple/serve/store"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start all services",
	Long:  `The serve command starts all the services required for the application to run.`,
	Run: func(cmd *cobra.Command, args []string) {
		if debug {
			gin.SetMode(gin.DebugMode)
		} else {
			gin.SetMode(gin.ReleaseMode)
		}

		// 全局唯一的 Gin 实例
		r := gin.New()

		r.Use(gin.Logger())
		r.Use(gin.Recovery())

		// 初始化地基模块（顺序不能改变）
		cmn.InitLogger(debug)
		cmn.InitConfig()
		cmn.InitDB()
		logger := cmn.GetLogger()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// 初始化公共模块
		llm.Init()
		llmCfg, err := llm.LoadConfig()
		if err != nil {
			logger.Fatal("[ FAIL ] failed to load llm config", zap.Error(err))
		}
		llmService := llm.NewService(llmCfg)

		// 初始化服务模块
		ritual.Init()
		divination.Init(llmService)
		fortune.Init(ctx, llmService)
		store.Init()

		cmn.MiniLogger.Info("[ YES ] all modules initialed", zap.String("version", cmn.Version))

		// 引入模块化路由
		router.InitRoutes(r)

		// 读取运行配置
		host := viper.GetString("server.host")
		port := viper.GetString("server.port")

		// 启动服务
		err = r.Run(host + ":" + port)
		if err != nil {
			logger.Error("gin run failed", zap.Error(err))
			return
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
