package spreadsheet

import (
	"errors"
	"fmt"
	"io"

	"github.com/extrame/xls"
)

// readXLS 读取旧版 .xls 的第一个工作表
// extrame/xls 遇到损坏的文件可能 panic，这里统一转换为错误
func readXLS(r io.ReadSeeker) (rows [][]string, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			rows = nil
			err = fmt.Errorf("corrupt xls file: %v", recovered)
		}
	}()

	wb, err := xls.OpenReader(r, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open xls: %w", err)
	}
	if wb == nil || wb.NumSheets() == 0 {
		return nil, errors.New("workbook has no worksheets")
	}

	// 去掉单元格格式后数字按原始值输出，与 xlsx 的 RawCellValue 一致
	// 否则自定义格式的整数会被当成日期
	wb.Xfs = nil

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, errors.New("workbook has no worksheets")
	}

	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheetRow(sheet, i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		values := make([]string, row.LastCol())
		for j := row.FirstCol(); j < row.LastCol(); j++ {
			values[j] = row.Col(j)
		}
		rows = append(rows, values)
	}
	return trimTrailingBlank(rows), nil
}

// sheetRow 没有任何记录的行在 extrame/xls 中会 panic，按空行处理
func sheetRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}

// trimTrailingBlank 去掉末尾的空行，与 xlsx 的读取结果保持一致
func trimTrailingBlank(rows [][]string) [][]string {
	for len(rows) > 0 && isBlank(rows[len(rows)-1]) {
		rows = rows[:len(rows)-1]
	}
	return rows
}
