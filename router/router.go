package router

import (
	"github.com/PolarTechJordan/richtemple/serve/divination"
	"github.com/PolarTechJordan/richtemple/serve/fortune"
	"github.com/PolarTechJordan/richtemple/serve/ritual"
	"github.com/PolarTechJordan/richtemple/serve/store"

	"github.com/gin-gonic/gin"
)

// InitRoutes 初始化路由
func InitRoutes(r *gin.Engine) {

	ritualHandler := ritual.NewHandler()
	divinationHandler := divination.NewHandler(divination.Default())
	fortuneHandler := fortune.NewHandler(fortune.Default())
	storeHandler := store.NewHandler()

	// 路由组 /api
	api := r.Group("/api")
	{
		api.GET("/store/talismans", storeHandler.HandleListTalismans)    // 法物列表
		api.GET("/store/categories", storeHandler.HandleListCategories) // 法物分类

		// 需要祈福session的路由组
		ritualApi := api.Group("/")
		ritualApi.Use(ritual.Middleware())
		{
			ritualApi.GET("/ritual", ritualHandler.HandleGetState)                    // 查询祈福进度
			ritualApi.DELETE("/ritual", ritualHandler.HandleReset)                    // 再次祈福
			ritualApi.POST("/ritual/wish", ritualHandler.HandleSetWish)               // 许愿
			ritualApi.POST("/ritual/numbers", ritualHandler.HandleSetNumbers)         // 选择数字
			ritualApi.POST("/ritual/offering", ritualHandler.HandleOffering)          // 上香
			ritualApi.POST("/divination", divinationHandler.HandleDivine)             // 占卜
			ritualApi.GET("/divination/:id", divinationHandler.HandleQueryDivination) // 查询占卜记录

			// 上香后才能访问的功德页
			meritApi := ritualApi.Group("/")
			meritApi.Use(ritual.RequireOffering())
			{
				meritApi.GET("/fortune/daily", fortuneHandler.HandleGetDailyFortune) // 每日运势
				meritApi.GET("/merit/share", ritualHandler.HandleShare)              // 分享链接
			}
		}
	}
}
