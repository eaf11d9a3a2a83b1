package controllers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/BerniceZTT/estate_end/models"
	"github.com/BerniceZTT/estate_end/service"
	"github.com/BerniceZTT/estate_end/utils"

	"github.com/gin-gonic/gin"
	"github.com/jszwec/csvutil"
)

// PropertyService 房源控制器依赖的业务接口
type PropertyService interface {
	Upload(ctx context.Context, filename string, r io.Reader) (int, error)
	List(ctx context.Context) ([]models.Property, error)
	Clear(ctx context.Context) (int64, error)
}

// PropertyController 房源相关接口
type PropertyController struct {
	service        PropertyService
	maxUploadBytes int64
}

// NewPropertyController 创建房源控制器
func NewPropertyController(service PropertyService, maxUploadBytes int64) *PropertyController {
	return &PropertyController{service: service, maxUploadBytes: maxUploadBytes}
}

// UploadExcel 上传表格并导入房源
func (pc *PropertyController) UploadExcel(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, pc.maxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.HandleError(c, utils.CreateBadRequestError(fmt.Sprintf("File exceeds the %d byte upload limit", pc.maxUploadBytes)))
			return
		}
		utils.HandleError(c, utils.CreateBadRequestError("A spreadsheet must be uploaded in the 'file' form field"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	defer file.Close()

	utils.LogInfo(map[string]interface{}{
		"filename": fileHeader.Filename,
		"size":     fileHeader.Size,
	}, "开始导入房源表格")

	count, err := pc.service.Upload(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.UploadResult{
		Message: service.UploadMessage(count),
		Count:   count,
	})
}

// GetProperties 获取全部房源
func (pc *PropertyController) GetProperties(c *gin.Context) {
	properties, err := pc.service.List(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"properties": properties})
}

// ClearProperties 清空全部房源
func (pc *PropertyController) ClearProperties(c *gin.Context) {
	removed, err := pc.service.Clear(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       fmt.Sprintf("Cleared %d properties", removed),
		"count_removed": removed,
	})
}

// ExportProperties 以CSV格式导出全部房源
func (pc *PropertyController) ExportProperties(c *gin.Context) {
	properties, err := pc.service.List(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	if len(properties) == 0 {
		buf.WriteString(csvHeader())
	} else {
		data, err := csvutil.Marshal(properties)
		if err != nil {
			utils.HandleError(c, err)
			return
		}
		buf.Write(data)
	}

	utils.LogInfo(map[string]interface{}{"count": len(properties)}, "导出房源数据")

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="properties_export_%s.csv"`, time.Now().Format("2006-01-02")))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// csvHeader 没有数据时只输出表头
func csvHeader() string {
	header, _ := csvutil.Header(models.Property{}, "csv")
	return strings.Join(header, ",") + "\n"
}
