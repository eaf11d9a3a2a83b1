package controllers

import (
	"context"
	"net/http"

	"github.com/BerniceZTT/estate_end/models"
	"github.com/BerniceZTT/estate_end/utils"

	"github.com/gin-gonic/gin"
)

// ContactService 联系控制器依赖的业务接口
type ContactService interface {
	Initiate(ctx context.Context, propertyID string, contactType models.ContactType) (string, *models.Property, error)
	Update(ctx context.Context, callID, remarks string, status models.RequirementStatus) error
	ListCalls(ctx context.Context) ([]models.CallRecord, error)
	ListCallsForProperty(ctx context.Context, propertyID string) ([]models.CallRecord, error)
}

// ContactController 联系记录相关接口
type ContactController struct {
	service ContactService
}

// NewContactController 创建联系控制器
func NewContactController(service ContactService) *ContactController {
	return &ContactController{service: service}
}

// InitiateContact 发起联系
// 参数可以放在 query、表单或 JSON 请求体中
func (cc *ContactController) InitiateContact(c *gin.Context) {
	var input models.InitiateContactInput
	if err := c.ShouldBind(&input); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError(utils.BindingErrorMessage(err)))
		return
	}

	callID, property, err := cc.service.Initiate(c.Request.Context(), input.PropertyID, models.ContactType(input.ContactType))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.InitiateContactResult{
		Message:  "Contact initiated successfully",
		CallID:   callID,
		Property: property,
	})
}

// UpdateCall 更新联系结果
func (cc *ContactController) UpdateCall(c *gin.Context) {
	var input models.UpdateCallInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError(utils.BindingErrorMessage(err)))
		return
	}

	err := cc.service.Update(c.Request.Context(), input.CallID, *input.Remarks, models.RequirementStatus(input.RequirementStatus))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Call updated successfully"})
}

// GetCalls 获取全部联系记录
func (cc *ContactController) GetCalls(c *gin.Context) {
	calls, err := cc.service.ListCalls(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"calls": calls})
}

// GetPropertyCalls 获取某个房源的联系记录
func (cc *ContactController) GetPropertyCalls(c *gin.Context) {
	calls, err := cc.service.ListCallsForProperty(c.Request.Context(), c.Param("property_id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"calls": calls})
}
