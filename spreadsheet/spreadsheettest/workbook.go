// Package spreadsheettest 构造测试用的表格文件
package spreadsheettest

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

// BuildXLSX 生成只有一个工作表的 .xlsx，首行为表头
// 行内的值按原类型写入，数字会以数值单元格保存
func BuildXLSX(t testing.TB, header []string, rows ...[]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		t.Fatalf("write header: %v", err)
	}

	for i, row := range rows {
		r := row
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, axis, &r); err != nil {
			t.Fatalf("write row %d: %v", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

// PropertyHeader 房源表格的标准表头
func PropertyHeader() []string {
	return []string{"name", "number", "location", "pricing", "requirements", "remarks"}
}

// PropertyRow 生成一行房源数据
func PropertyRow(name string, number interface{}, location string) []interface{} {
	return []interface{}{name, number, location, "50L", "2BHK", "call after 6pm"}
}
