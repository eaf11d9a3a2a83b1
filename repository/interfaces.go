package repository

import (
	"context"
	"time"

	"github.com/BerniceZTT/estate_end/models"
)

// PropertyRepo 房源存储操作
type PropertyRepo interface {
	ListAll(ctx context.Context) ([]models.Property, error)
	FindByID(ctx context.Context, id string) (*models.Property, error)
	InsertMany(ctx context.Context, properties []models.Property) (int, error)
	ClearAll(ctx context.Context) (int64, error)
}

// CallRepo 联系记录存储操作
type CallRepo interface {
	Insert(ctx context.Context, call models.CallRecord) error
	UpdateOutcome(ctx context.Context, callID, remarks string, status models.RequirementStatus, updatedAt time.Time) error
	ListAll(ctx context.Context) ([]models.CallRecord, error)
	ListByProperty(ctx context.Context, propertyID string) ([]models.CallRecord, error)
}

// OperationLogRepo 操作日志存储
type OperationLogRepo interface {
	Save(ctx context.Context, log models.OperationLog) error
}

var (
	_ PropertyRepo     = (*PropertyRepository)(nil)
	_ CallRepo         = (*CallRepository)(nil)
	_ OperationLogRepo = (*OperationLogRepository)(nil)
)
