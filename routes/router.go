package routes

import (
	"github.com/BerniceZTT/estate_end/controllers"
	"github.com/BerniceZTT/estate_end/middleware"
	"github.com/BerniceZTT/estate_end/observer"
	"github.com/BerniceZTT/estate_end/repository"
	"github.com/BerniceZTT/estate_end/utils"

	"github.com/gin-gonic/gin"
)

// Dependencies 路由需要的控制器和可选组件
type Dependencies struct {
	Properties *controllers.PropertyController
	Contacts   *controllers.ContactController
	Health     *controllers.HealthController

	// 为 nil 时不记录操作日志
	OperationLogs repository.OperationLogRepo
	// 是否暴露 /metrics
	Metrics      bool
	AllowOrigins []string
}

// NewRouter 创建带全局中间件的路由
func NewRouter(deps Dependencies) *gin.Engine {
	utils.RegisterValidatorTagNames()

	router := gin.New()

	// 应用中间件
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(deps.AllowOrigins))
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorHandler())
	if deps.OperationLogs != nil {
		router.Use(middleware.OperationLoggerMiddleware(deps.OperationLogs))
	}

	RegisterRoutes(router, deps)
	return router
}

// RegisterRoutes 注册所有路由
func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	RegisterHealthRoutes(router, deps.Health)
	RegisterPropertyRoutes(router, deps.Properties)
	RegisterContactRoutes(router, deps.Contacts)

	if deps.Metrics {
		router.GET("/metrics", gin.WrapH(observer.Handler()))
	}
}
