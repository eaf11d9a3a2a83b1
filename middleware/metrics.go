package middleware

import (
	"time"

	"github.com/BerniceZTT/estate_end/observer"

	"github.com/gin-gonic/gin"
)

// Metrics 统计每个路由的请求数和耗时，使用路由模板避免标签基数过高
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		observer.ObserveHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
