package service

import (
	"context"
	"time"

	"github.com/BerniceZTT/estate_end/apperrors"
	"github.com/BerniceZTT/estate_end/models"
	"github.com/BerniceZTT/estate_end/observer"
	"github.com/BerniceZTT/estate_end/repository"
	"github.com/BerniceZTT/estate_end/utils"

	"github.com/google/uuid"
)

// ContactService 联系记录的发起与结果更新
type ContactService struct {
	properties repository.PropertyRepo
	calls      repository.CallRepo
	now        func() time.Time
	newID      func() string
}

// NewContactService 创建联系服务
func NewContactService(properties repository.PropertyRepo, calls repository.CallRepo) *ContactService {
	return &ContactService{
		properties: properties,
		calls:      calls,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewString,
	}
}

// Initiate 为已存在的房源创建一条待处理的联系记录
// 同一房源多次发起会产生多条独立记录
func (s *ContactService) Initiate(ctx context.Context, propertyID string, contactType models.ContactType) (string, *models.Property, error) {
	if !contactType.Valid() {
		return "", nil, apperrors.NewValidation("contact_type must be one of: call, whatsapp")
	}

	property, err := s.properties.FindByID(ctx, propertyID)
	if err != nil {
		return "", nil, err
	}

	call := models.CallRecord{
		ID:                s.newID(),
		PropertyID:        property.ID,
		ContactType:       contactType,
		RequirementStatus: models.RequirementStatusPending,
		CreatedAt:         s.now(),
	}
	if err := s.calls.Insert(ctx, call); err != nil {
		return "", nil, err
	}

	observer.CallsInitiatedTotal.WithLabelValues(string(contactType)).Inc()
	utils.LogInfo(map[string]interface{}{
		"callId":      call.ID,
		"propertyId":  property.ID,
		"contactType": contactType,
	}, "已发起联系")

	return call.ID, property, nil
}

// Update 覆盖联系记录的备注和结果状态，可重复调用
func (s *ContactService) Update(ctx context.Context, callID, remarks string, status models.RequirementStatus) error {
	if !status.IsOutcome() {
		return apperrors.NewValidation("requirement_status must be one of: requirement, no_requirement, future_requirement")
	}

	if err := s.calls.UpdateOutcome(ctx, callID, remarks, status, s.now()); err != nil {
		return err
	}

	observer.CallsUpdatedTotal.WithLabelValues(string(status)).Inc()
	utils.LogInfo(map[string]interface{}{
		"callId": callID,
		"status": status,
	}, "联系结果已更新")
	return nil
}

// ListCalls 返回全部联系记录
func (s *ContactService) ListCalls(ctx context.Context) ([]models.CallRecord, error) {
	return s.calls.ListAll(ctx)
}

// ListCallsForProperty 返回某个房源的联系记录，不检查房源是否存在
func (s *ContactService) ListCallsForProperty(ctx context.Context, propertyID string) ([]models.CallRecord, error) {
	return s.calls.ListByProperty(ctx, propertyID)
}
