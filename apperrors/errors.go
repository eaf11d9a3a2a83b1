package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// 通用错误定义，业务层通过 errors.Is 判断错误类别
var (
	// ErrValidation 输入数据格式错误（文件类型、缺少列、非法枚举值等）
	ErrValidation = errors.New("validation failed")
	// ErrNotFound 引用的资源不存在
	ErrNotFound = errors.New("resource not found")
	// ErrProcessing 解析或处理过程中的意外失败
	ErrProcessing = errors.New("processing failed")
	// ErrDatabase 数据库访问失败
	ErrDatabase = errors.New("database error")
)

// MissingColumnsError 表格缺少必需列
type MissingColumnsError struct {
	Columns []string
}

// Error 实现error接口
func (e *MissingColumnsError) Error() string {
	return "Missing required columns: " + strings.Join(e.Columns, ", ")
}

// Unwrap 归类为校验错误
func (e *MissingColumnsError) Unwrap() error {
	return ErrValidation
}

// UnsupportedFormatError 文件扩展名不是支持的表格格式
type UnsupportedFormatError struct {
	Filename string
}

// Error 实现error接口
func (e *UnsupportedFormatError) Error() string {
	return "File must be Excel format (.xlsx or .xls)"
}

// Unwrap 归类为校验错误
func (e *UnsupportedFormatError) Unwrap() error {
	return ErrValidation
}

// ProcessingError 文件解析失败，携带底层错误信息
type ProcessingError struct {
	Err error
}

// Error 实现error接口
func (e *ProcessingError) Error() string {
	return fmt.Sprintf("Error processing file: %v", e.Err)
}

// Unwrap 同时暴露 ErrProcessing 与底层错误
func (e *ProcessingError) Unwrap() []error {
	return []error{ErrProcessing, e.Err}
}

// NewProcessing 包装解析错误
func NewProcessing(err error) error {
	return &ProcessingError{Err: err}
}

// NewValidation 创建带说明的校验错误
func NewValidation(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NewNotFound 创建资源不存在错误
func NewNotFound(resource string) error {
	return fmt.Errorf("%s not found: %w", resource, ErrNotFound)
}

// NewDatabase 包装数据库错误
func NewDatabase(err error, message string) error {
	return fmt.Errorf("%s: %w: %w", message, ErrDatabase, err)
}

// IsValidationError 判断是否为校验错误
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFoundError 判断是否为资源不存在错误
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsProcessingError 判断是否为解析错误
func IsProcessingError(err error) bool {
	return errors.Is(err, ErrProcessing)
}

// IsDatabaseError 判断是否为数据库错误
func IsDatabaseError(err error) bool {
	return errors.Is(err, ErrDatabase)
}
