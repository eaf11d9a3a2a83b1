package mock

import (
	"context"
	"time"

	"github.com/BerniceZTT/estate_end/models"

	"github.com/stretchr/testify/mock"
)

// PropertyRepoMock mocks repository.PropertyRepo
type PropertyRepoMock struct {
	mock.Mock
}

// ListAll mocks the ListAll method
func (m *PropertyRepoMock) ListAll(ctx context.Context) ([]models.Property, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Property), args.Error(1)
}

// FindByID mocks the FindByID method
func (m *PropertyRepoMock) FindByID(ctx context.Context, id string) (*models.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

// InsertMany mocks the InsertMany method
func (m *PropertyRepoMock) InsertMany(ctx context.Context, properties []models.Property) (int, error) {
	args := m.Called(ctx, properties)
	return args.Int(0), args.Error(1)
}

// ClearAll mocks the ClearAll method
func (m *PropertyRepoMock) ClearAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// CallRepoMock mocks repository.CallRepo
type CallRepoMock struct {
	mock.Mock
}

// Insert mocks the Insert method
func (m *CallRepoMock) Insert(ctx context.Context, call models.CallRecord) error {
	args := m.Called(ctx, call)
	return args.Error(0)
}

// UpdateOutcome mocks the UpdateOutcome method
func (m *CallRepoMock) UpdateOutcome(ctx context.Context, callID, remarks string, status models.RequirementStatus, updatedAt time.Time) error {
	args := m.Called(ctx, callID, remarks, status, updatedAt)
	return args.Error(0)
}

// ListAll mocks the ListAll method
func (m *CallRepoMock) ListAll(ctx context.Context) ([]models.CallRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CallRecord), args.Error(1)
}

// ListByProperty mocks the ListByProperty method
func (m *CallRepoMock) ListByProperty(ctx context.Context, propertyID string) ([]models.CallRecord, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CallRecord), args.Error(1)
}

// OperationLogRepoMock mocks repository.OperationLogRepo
type OperationLogRepoMock struct {
	mock.Mock
}

// Save mocks the Save method
func (m *OperationLogRepoMock) Save(ctx context.Context, log models.OperationLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}
