package repository

import (
	"context"

	"github.com/BerniceZTT/estate_end/models"
)

// OperationLogRepository 操作日志存储
type OperationLogRepository struct {
	db *MongoDB
}

// NewOperationLogRepository 创建操作日志存储
func NewOperationLogRepository(db *MongoDB) *OperationLogRepository {
	return &OperationLogRepository{db: db}
}

// Save 保存操作日志
func (r *OperationLogRepository) Save(ctx context.Context, log models.OperationLog) error {
	_, err := r.db.Collection(ApiOperationLogsCollection).InsertOne(ctx, log)
	return err
}
