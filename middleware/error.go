package middleware

import (
	"github.com/BerniceZTT/estate_end/utils"

	"github.com/gin-gonic/gin"
)

// ErrorHandler 处理函数只登记了错误却没有写响应时，统一输出错误JSON
// 绑定类错误按 400 处理并给出字段信息，其余错误按类型映射状态码
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		if bindErr := c.Errors.ByType(gin.ErrorTypeBind).Last(); bindErr != nil {
			utils.HandleError(c, utils.CreateBadRequestError(utils.BindingErrorMessage(bindErr.Err)))
			return
		}
		utils.HandleError(c, c.Errors.Last().Err)
	}
}
