package models

import "time"

// ContactType 联系方式
type ContactType string

const (
	ContactTypeCall     ContactType = "call"
	ContactTypeWhatsApp ContactType = "whatsapp"
)

// Valid 是否为支持的联系方式
func (t ContactType) Valid() bool {
	switch t {
	case ContactTypeCall, ContactTypeWhatsApp:
		return true
	}
	return false
}

// RequirementStatus 联系结果分类
type RequirementStatus string

const (
	RequirementStatusPending           RequirementStatus = "pending"
	RequirementStatusRequirement       RequirementStatus = "requirement"
	RequirementStatusNoRequirement     RequirementStatus = "no_requirement"
	RequirementStatusFutureRequirement RequirementStatus = "future_requirement"
)

// IsOutcome 是否为可通过更新操作设置的结果状态（pending 只在创建时设置）
func (s RequirementStatus) IsOutcome() bool {
	switch s {
	case RequirementStatusRequirement, RequirementStatusNoRequirement, RequirementStatusFutureRequirement:
		return true
	}
	return false
}

// CallRecord 联系记录
// UpdatedAt 为空表示从未更新过
type CallRecord struct {
	ID                string            `bson:"id" json:"id"`
	PropertyID        string            `bson:"property_id" json:"property_id"`
	ContactType       ContactType       `bson:"contact_type" json:"contact_type"`
	Duration          *string           `bson:"duration" json:"duration"`
	Remarks           *string           `bson:"remarks" json:"remarks"`
	RequirementStatus RequirementStatus `bson:"requirement_status" json:"requirement_status"`
	CreatedAt         time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt         *time.Time        `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// InitiateContactInput 发起联系的请求参数，支持 query、表单和 JSON
type InitiateContactInput struct {
	PropertyID  string `form:"property_id" json:"property_id" binding:"required"`
	ContactType string `form:"contact_type" json:"contact_type" binding:"required,oneof=call whatsapp"`
}

// UpdateCallInput 更新联系结果的请求参数
// remarks 必须出现在请求体中，允许显式传空字符串
type UpdateCallInput struct {
	CallID            string  `json:"call_id" binding:"required"`
	Remarks           *string `json:"remarks" binding:"required"`
	RequirementStatus string  `json:"requirement_status" binding:"required,oneof=requirement no_requirement future_requirement"`
}

// InitiateContactResult 发起联系的返回数据
type InitiateContactResult struct {
	Message  string    `json:"message"`
	CallID   string    `json:"call_id"`
	Property *Property `json:"property"`
}
