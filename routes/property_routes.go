package routes

import (
	"github.com/BerniceZTT/estate_end/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterPropertyRoutes 注册房源路由
func RegisterPropertyRoutes(router *gin.Engine, pc *controllers.PropertyController) {
	// 上传表格导入房源
	router.POST("/api/upload-excel", pc.UploadExcel)

	propertyRoutes := router.Group("/api/properties")

	// 获取所有房源
	propertyRoutes.GET("", pc.GetProperties)

	// 导出房源为CSV
	propertyRoutes.GET("/export", pc.ExportProperties)

	// 清空房源
	propertyRoutes.DELETE("", pc.ClearProperties)
}
