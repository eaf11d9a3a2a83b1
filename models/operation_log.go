package models

import "time"

// OperationLog 写操作审计日志
type OperationLog struct {
	Method        string    `json:"method" bson:"method"`
	Path          string    `json:"path" bson:"path"`
	Query         string    `json:"query,omitempty" bson:"query,omitempty"`
	StatusCode    int       `json:"statusCode" bson:"statusCode"`
	Success       bool      `json:"success" bson:"success"`
	ErrorMessage  string    `json:"errorMessage,omitempty" bson:"errorMessage,omitempty"`
	OperationTime time.Time `json:"operationTime" bson:"operationTime"`
	ResponseTime  int64     `json:"responseTime" bson:"responseTime"` // 毫秒
	IPAddress     string    `json:"ipAddress" bson:"ipAddress"`
	UserAgent     string    `json:"userAgent" bson:"userAgent"`
}
