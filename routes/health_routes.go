package routes

import (
	"github.com/BerniceZTT/estate_end/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterHealthRoutes 注册服务说明和健康检查路由
func RegisterHealthRoutes(router *gin.Engine, hc *controllers.HealthController) {
	router.GET("/", hc.Root)

	// 健康检查路由
	router.GET("/api/health", hc.Health)

	// 数据库状态检查路由
	router.GET("/api/db-status", hc.DBStatus)
}
