package mock

import (
	"context"
	"sync"
	"time"

	"github.com/BerniceZTT/estate_end/apperrors"
	"github.com/BerniceZTT/estate_end/models"
)

// MemoryPropertyRepo 基于内存的房源存储，用于场景测试
type MemoryPropertyRepo struct {
	mu          sync.Mutex
	properties  []models.Property
	InsertCalls int
}

// ListAll 返回全部房源
func (r *MemoryPropertyRepo) ListAll(ctx context.Context) ([]models.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Property{}, r.properties...), nil
}

// FindByID 按 id 查询
func (r *MemoryPropertyRepo) FindByID(ctx context.Context, id string) (*models.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.properties {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, apperrors.NewNotFound("property")
}

// InsertMany 追加房源
func (r *MemoryPropertyRepo) InsertMany(ctx context.Context, properties []models.Property) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.InsertCalls++
	r.properties = append(r.properties, properties...)
	return len(properties), nil
}

// ClearAll 清空房源
func (r *MemoryPropertyRepo) ClearAll(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := int64(len(r.properties))
	r.properties = nil
	return n, nil
}

// MemoryCallRepo 基于内存的联系记录存储
type MemoryCallRepo struct {
	mu    sync.Mutex
	calls []models.CallRecord
}

// Insert 追加联系记录
func (r *MemoryCallRepo) Insert(ctx context.Context, call models.CallRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
	return nil
}

// UpdateOutcome 覆盖备注和状态
func (r *MemoryCallRepo) UpdateOutcome(ctx context.Context, callID, remarks string, status models.RequirementStatus, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.calls {
		if r.calls[i].ID == callID {
			rm, ts := remarks, updatedAt
			r.calls[i].Remarks = &rm
			r.calls[i].RequirementStatus = status
			r.calls[i].UpdatedAt = &ts
			return nil
		}
	}
	return apperrors.NewNotFound("call record")
}

// ListAll 返回全部联系记录
func (r *MemoryCallRepo) ListAll(ctx context.Context) ([]models.CallRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.CallRecord{}, r.calls...), nil
}

// ListByProperty 按房源过滤
func (r *MemoryCallRepo) ListByProperty(ctx context.Context, propertyID string) ([]models.CallRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	calls := []models.CallRecord{}
	for _, c := range r.calls {
		if c.PropertyID == propertyID {
			calls = append(calls, c)
		}
	}
	return calls, nil
}
