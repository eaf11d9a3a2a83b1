package utils

import (
	"errors"
	"net/http"

	"github.com/BerniceZTT/estate_end/apperrors"

	"github.com/gin-gonic/gin"
)

// 错误码
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeMissingColumns    = "MISSING_COLUMNS"
	CodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	CodeNotFound          = "NOT_FOUND"
	CodeProcessing        = "PROCESSING_ERROR"
	CodeInternal          = "INTERNAL_ERROR"
)

// ApiError 自定义API错误
type ApiError struct {
	StatusCode int
	Message    string
	ErrorCode  string
}

// Error 实现error接口
func (e *ApiError) Error() string {
	return e.Message
}

// NewApiError 创建API错误
func NewApiError(message string, statusCode int, errorCode string) *ApiError {
	return &ApiError{
		StatusCode: statusCode,
		Message:    message,
		ErrorCode:  errorCode,
	}
}

// CreateBadRequestError 创建错误请求错误
func CreateBadRequestError(message string) *ApiError {
	return NewApiError(message, http.StatusBadRequest, CodeValidation)
}

// toApiError 将业务错误映射为带状态码的API错误
func toApiError(err error) *ApiError {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var missing *apperrors.MissingColumnsError
	var unsupported *apperrors.UnsupportedFormatError
	switch {
	case errors.As(err, &missing):
		return NewApiError(missing.Error(), http.StatusBadRequest, CodeMissingColumns)
	case errors.As(err, &unsupported):
		return NewApiError(unsupported.Error(), http.StatusBadRequest, CodeUnsupportedFormat)
	case apperrors.IsValidationError(err):
		return NewApiError(err.Error(), http.StatusBadRequest, CodeValidation)
	case apperrors.IsNotFoundError(err):
		return NewApiError(err.Error(), http.StatusNotFound, CodeNotFound)
	case apperrors.IsProcessingError(err):
		return NewApiError(err.Error(), http.StatusInternalServerError, CodeProcessing)
	default:
		return NewApiError(err.Error(), http.StatusInternalServerError, CodeInternal)
	}
}

// HandleError 处理错误并返回适当的响应
func HandleError(c *gin.Context, err error) {
	if c == nil || err == nil {
		return
	}

	apiErr := toApiError(err)
	if apiErr.StatusCode >= http.StatusInternalServerError {
		LogError(err, map[string]interface{}{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"status": apiErr.StatusCode,
		}, "API错误")
	} else {
		Logger.Warn().Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Int("status", apiErr.StatusCode).
			Msg("API错误")
	}

	response := gin.H{
		"success": false,
		"error":   apiErr.Message,
		"code":    apiErr.ErrorCode,
	}
	var missing *apperrors.MissingColumnsError
	if errors.As(err, &missing) {
		response["missing_columns"] = missing.Columns
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(apiErr.StatusCode, response)
}

// ErrorResponse 错误响应
func ErrorResponse(c *gin.Context, message string, statusCode int) {
	c.AbortWithStatusJSON(statusCode, gin.H{
		"success": false,
		"error":   message,
	})
}
