package routes

import (
	"github.com/BerniceZTT/estate_end/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterContactRoutes 注册联系记录路由
func RegisterContactRoutes(router *gin.Engine, cc *controllers.ContactController) {
	// 发起联系
	router.POST("/api/initiate-contact", cc.InitiateContact)

	// 更新联系结果
	router.POST("/api/update-call", cc.UpdateCall)

	callRoutes := router.Group("/api/calls")

	// 获取所有联系记录
	callRoutes.GET("", cc.GetCalls)

	// 获取某个房源的联系记录
	callRoutes.GET("/:property_id", cc.GetPropertyCalls)
}
