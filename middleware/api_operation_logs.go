package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/BerniceZTT/estate_end/models"
	"github.com/BerniceZTT/estate_end/repository"
	"github.com/BerniceZTT/estate_end/utils"

	"github.com/gin-gonic/gin"
)

// 需要记录的HTTP方法
var loggedMethods = map[string]bool{
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodDelete: true,
	http.MethodPatch:  true,
}

// 保存操作日志的超时时间
const operationLogTimeout = 3 * time.Second

// OperationLoggerMiddleware 写操作审计日志中间件
// 保存失败只记录错误，不影响请求结果
func OperationLoggerMiddleware(repo repository.OperationLogRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !loggedMethods[c.Request.Method] {
			c.Next()
			return
		}

		startTime := time.Now()

		c.Next()

		var errorMessage string
		if len(c.Errors) > 0 {
			errorMessage = c.Errors.String()
		}

		operationLog := models.OperationLog{
			Method:        c.Request.Method,
			Path:          c.Request.URL.Path,
			Query:         c.Request.URL.RawQuery,
			StatusCode:    c.Writer.Status(),
			Success:       c.Writer.Status() < http.StatusBadRequest,
			ErrorMessage:  errorMessage,
			OperationTime: startTime.UTC(),
			ResponseTime:  time.Since(startTime).Milliseconds(),
			IPAddress:     getClientIP(c),
			UserAgent:     c.Request.UserAgent(),
		}

		ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), operationLogTimeout)
		defer cancel()
		if err := repo.Save(ctx, operationLog); err != nil {
			utils.Logger.Error().Err(err).
				Str("method", operationLog.Method).
				Str("path", operationLog.Path).
				Msg("保存操作日志失败")
		}
	}
}

// getClientIP 获取客户端IP地址
func getClientIP(c *gin.Context) string {
	if ip := c.Request.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	if ip := c.Request.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return c.ClientIP()
}
