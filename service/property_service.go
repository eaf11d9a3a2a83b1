package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/BerniceZTT/estate_end/apperrors"
	"github.com/BerniceZTT/estate_end/models"
	"github.com/BerniceZTT/estate_end/observer"
	"github.com/BerniceZTT/estate_end/repository"
	"github.com/BerniceZTT/estate_end/spreadsheet"
	"github.com/BerniceZTT/estate_end/utils"

	"github.com/google/uuid"
)

// PropertyService 房源导入与查询
type PropertyService struct {
	properties repository.PropertyRepo
	now        func() time.Time
	newID      func() string
}

// NewPropertyService 创建房源服务
func NewPropertyService(properties repository.PropertyRepo) *PropertyService {
	return &PropertyService{
		properties: properties,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewString,
	}
}

// Upload 解析上传的表格并批量写入房源，返回创建的数量
// 解析全部成功后才写库；没有数据行时不访问数据库
func (s *PropertyService) Upload(ctx context.Context, filename string, r io.Reader) (int, error) {
	sheet, err := spreadsheet.Parse(filename, r)
	if err != nil {
		recordRejected(err)
		return 0, err
	}

	rows, err := sheet.Records(models.PropertyColumns)
	if err != nil {
		recordRejected(err)
		return 0, err
	}

	if len(rows) == 0 {
		utils.LogInfo(map[string]interface{}{"filename": filename}, "表格没有数据行")
		return 0, nil
	}

	createdAt := s.now()
	properties := make([]models.Property, 0, len(rows))
	for _, row := range rows {
		properties = append(properties, models.Property{
			ID:           s.newID(),
			Name:         row["name"],
			Number:       row["number"],
			Location:     row["location"],
			Pricing:      row["pricing"],
			Requirements: row["requirements"],
			Remarks:      row["remarks"],
			CreatedAt:    createdAt,
		})
	}

	inserted, err := s.properties.InsertMany(ctx, properties)
	if err != nil {
		return 0, err
	}

	observer.PropertiesIngestedTotal.Add(float64(inserted))
	utils.LogInfo(map[string]interface{}{
		"filename": filename,
		"count":    inserted,
	}, "房源导入成功")

	return inserted, nil
}

// List 返回全部房源
func (s *PropertyService) List(ctx context.Context) ([]models.Property, error) {
	return s.properties.ListAll(ctx)
}

// Clear 删除全部房源并返回删除数量，已有的联系记录保留
func (s *PropertyService) Clear(ctx context.Context) (int64, error) {
	removed, err := s.properties.ClearAll(ctx)
	if err != nil {
		return 0, err
	}
	utils.Logger.Warn().Int64("removed", removed).Msg("已清空房源")
	return removed, nil
}

// UploadMessage 上传成功的提示信息
func UploadMessage(count int) string {
	return fmt.Sprintf("Successfully uploaded %d properties", count)
}

// recordRejected 统计被拒绝的上传
func recordRejected(err error) {
	var missing *apperrors.MissingColumnsError
	var unsupported *apperrors.UnsupportedFormatError
	switch {
	case errors.As(err, &missing):
		observer.UploadsRejectedTotal.WithLabelValues("missing_columns").Inc()
	case errors.As(err, &unsupported):
		observer.UploadsRejectedTotal.WithLabelValues("unsupported_format").Inc()
	default:
		observer.UploadsRejectedTotal.WithLabelValues("processing_error").Inc()
	}
}
