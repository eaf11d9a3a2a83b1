package controllers

import (
	"context"
	"net/http"

	"github.com/BerniceZTT/estate_end/utils"

	"github.com/gin-gonic/gin"
)

// DatabaseStatus 数据库状态查询
type DatabaseStatus interface {
	Ping(ctx context.Context) error
	GetDatabaseStatus(ctx context.Context) map[string]interface{}
}

// HealthController 健康检查接口
type HealthController struct {
	db DatabaseStatus
}

// NewHealthController 创建健康检查控制器
func NewHealthController(db DatabaseStatus) *HealthController {
	return &HealthController{db: db}
}

// Root 服务说明
func (hc *HealthController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Real Estate Communication Platform API"})
}

// Health 存活检查
func (hc *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DBStatus 数据库连接与各集合数量
func (hc *HealthController) DBStatus(c *gin.Context) {
	if err := hc.db.Ping(c.Request.Context()); err != nil {
		utils.ErrorResponse(c, "database unavailable: "+err.Error(), http.StatusServiceUnavailable)
		return
	}
	c.JSON(http.StatusOK, hc.db.GetDatabaseStatus(c.Request.Context()))
}
