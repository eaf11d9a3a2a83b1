package spreadsheet

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BerniceZTT/estate_end/apperrors"
)

// Format 支持的表格格式
type Format string

const (
	FormatXLSX Format = ".xlsx"
	FormatXLS  Format = ".xls"
)

// DetectFormat 仅根据文件扩展名判断格式，不检查文件内容
func DetectFormat(filename string) (Format, error) {
	switch Format(strings.ToLower(filepath.Ext(filename))) {
	case FormatXLSX:
		return FormatXLSX, nil
	case FormatXLS:
		return FormatXLS, nil
	}
	return "", &apperrors.UnsupportedFormatError{Filename: filename}
}

// Sheet 第一个工作表的内容，Header 为第一行
type Sheet struct {
	Header []string
	Rows   [][]string
}

// Records 按列名取出每一行的值
// 缺少任一必需列时返回 MissingColumnsError，多余的列被忽略
func (s *Sheet) Records(required []string) ([]map[string]string, error) {
	index := make(map[string]int, len(s.Header))
	for i, h := range s.Header {
		name := strings.TrimSpace(h)
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}

	var missing []string
	for _, col := range required {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &apperrors.MissingColumnsError{Columns: missing}
	}

	records := make([]map[string]string, 0, len(s.Rows))
	for _, row := range s.Rows {
		if isBlank(row) {
			continue
		}
		record := make(map[string]string, len(required))
		for _, col := range required {
			record[col] = cell(row, index[col])
		}
		records = append(records, record)
	}
	return records, nil
}

// Parse 读取表格的第一个工作表
// 扩展名不支持时在读取内容之前返回错误；解析失败统一包装为 ProcessingError
func Parse(filename string, r io.Reader) (*Sheet, error) {
	format, err := DetectFormat(filename)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.NewProcessing(fmt.Errorf("read upload: %w", err))
	}

	var rows [][]string
	switch format {
	case FormatXLSX:
		rows, err = readXLSX(bytes.NewReader(data))
	case FormatXLS:
		rows, err = readXLS(bytes.NewReader(data))
	}
	if err != nil {
		return nil, apperrors.NewProcessing(err)
	}

	sheet := &Sheet{}
	if len(rows) > 0 {
		sheet.Header = rows[0]
		sheet.Rows = rows[1:]
	}
	return sheet, nil
}

// cell 越界的单元格视为空字符串
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
