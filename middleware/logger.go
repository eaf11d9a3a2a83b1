package middleware

import (
	"bytes"
	"io"
	"strings"
	"time"

	"github.com/BerniceZTT/estate_end/utils"

	"github.com/gin-gonic/gin"
)

// 超过该长度的请求/响应体只记录截断后的内容
const maxLoggedBody = 2048

// bodyLogWriter 用于记录响应内容
type bodyLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

// Write 实现 ResponseWriter 接口
func (w bodyLogWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Logger 日志中间件
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		// 记录请求头
		headers := make(map[string]string)
		for k, v := range c.Request.Header {
			if len(v) > 0 {
				headers[k] = v[0]
			}
		}

		// 上传的表格是二进制内容，不读取也不记录
		var requestBody string
		if c.Request.Body != nil && isTextual(c.Request.Header.Get("Content-Type")) {
			raw, _ := io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(raw))
			requestBody = truncate(string(raw))
		}

		// 创建响应体捕获器
		blw := &bodyLogWriter{
			ResponseWriter: c.Writer,
			body:           bytes.NewBufferString(""),
		}
		c.Writer = blw

		utils.LogApiRequest(method, path, c.Request.URL.Query(), requestBody, headers)

		// 处理请求
		c.Next()

		var responseBody string
		if isTextual(c.Writer.Header().Get("Content-Type")) {
			responseBody = truncate(blw.body.String())
		}

		utils.LogApiResponse(method, path, c.Writer.Status(), time.Since(start), responseBody)
	}
}

// Recovery 恢复中间件
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		// 记录崩溃信息
		utils.Logger.Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Msg("服务崩溃")

		c.AbortWithStatusJSON(500, gin.H{
			"success": false,
			"error":   "Internal server error",
			"code":    utils.CodeInternal,
		})
	})
}

// isTextual 只记录 JSON 和表单类的内容
func isTextual(contentType string) bool {
	return strings.Contains(contentType, "application/json") ||
		strings.Contains(contentType, "application/x-www-form-urlencoded")
}

func truncate(s string) string {
	if len(s) > maxLoggedBody {
		return s[:maxLoggedBody] + "...(truncated)"
	}
	return s
}
