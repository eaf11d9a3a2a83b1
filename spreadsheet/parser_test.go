package spreadsheet

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/BerniceZTT/estate_end/apperrors"
	"github.com/BerniceZTT/estate_end/spreadsheet/spreadsheettest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var required = []string{"name", "number", "location", "pricing", "requirements", "remarks"}

// failingReader 用于确认扩展名校验发生在读取内容之前
type failingReader struct{ t *testing.T }

func (r failingReader) Read([]byte) (int, error) {
	r.t.Fatal("file content must not be read")
	return 0, nil
}

func TestDetectFormat(t *testing.T) {
	f, err := DetectFormat("listings.XLSX")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	f, err = DetectFormat("old.xls")
	require.NoError(t, err)
	assert.Equal(t, FormatXLS, f)

	for _, name := range []string{"listings.csv", "listings", "xlsx", "listings.xlsx.txt"} {
		_, err := DetectFormat(name)
		assert.True(t, apperrors.IsValidationError(err), name)
	}
}

func TestParse_UnsupportedFormatBeforeRead(t *testing.T) {
	_, err := Parse("listings.csv", failingReader{t})

	var unsupported *apperrors.UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "listings.csv", unsupported.Filename)
}

func TestParse_XLSX(t *testing.T) {
	data := spreadsheettest.BuildXLSX(t, spreadsheettest.PropertyHeader(),
		spreadsheettest.PropertyRow("Sea View", 9876543210, "Bandra"),
		spreadsheettest.PropertyRow("Hill Top", "08041234567", "Pune"),
	)

	sheet, err := Parse("listings.xlsx", bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, required, sheet.Header)
	require.Len(t, sheet.Rows, 2)

	records, err := sheet.Records(required)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Sea View", records[0]["name"])
	assert.Equal(t, "9876543210", records[0]["number"])
	assert.Equal(t, "08041234567", records[1]["number"])
	assert.Equal(t, "Pune", records[1]["location"])
	assert.Equal(t, "call after 6pm", records[1]["remarks"])
}

// testdata/listings.xls 第三行没有任何记录；号码和价格列使用了自定义格式和日期格式
func TestParse_XLS(t *testing.T) {
	data, err := os.ReadFile("testdata/listings.xls")
	require.NoError(t, err)

	sheet, err := Parse("listings.xls", bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, required, sheet.Header)
	require.Len(t, sheet.Rows, 4)

	records, err := sheet.Records(required)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, map[string]string{
		"name": "Asha Homes", "number": "9876543210", "location": "Pune",
		"pricing": "4500000", "requirements": "2BHK", "remarks": "call after 6pm",
	}, records[0])

	// 自定义格式的小整数和小数保持原值，不被格式化为日期
	assert.Equal(t, "Lake View", records[1]["name"])
	assert.Equal(t, "2345678", records[1]["number"])
	assert.Equal(t, "2.5", records[1]["pricing"])
	assert.Equal(t, "", records[1]["remarks"])

	assert.Equal(t, "Green Acres", records[2]["name"])
	assert.Equal(t, "9123456780", records[2]["number"])
	assert.Equal(t, "7500000", records[2]["pricing"])
	assert.Equal(t, "", records[2]["remarks"])
}

func TestParse_XLSXBlankRowInMiddle(t *testing.T) {
	data := spreadsheettest.BuildXLSX(t, spreadsheettest.PropertyHeader(),
		spreadsheettest.PropertyRow("Sea View", 9876543210, "Bandra"),
		[]interface{}{nil, nil, nil, nil, nil, nil},
		spreadsheettest.PropertyRow("Hill Top", 9123456780, "Pune"),
	)

	sheet, err := Parse("listings.xlsx", bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, sheet.Rows, 3)

	records, err := sheet.Records(required)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Sea View", records[0]["name"])
	assert.Equal(t, "Hill Top", records[1]["name"])
}

func TestParse_CorruptFile(t *testing.T) {
	for _, name := range []string{"broken.xlsx", "broken.xls"} {
		_, err := Parse(name, strings.NewReader("definitely not a workbook"))
		assert.True(t, apperrors.IsProcessingError(err), name)
		assert.False(t, apperrors.IsValidationError(err), name)
	}
}

func TestParse_HeaderOnly(t *testing.T) {
	data := spreadsheettest.BuildXLSX(t, spreadsheettest.PropertyHeader())

	sheet, err := Parse("empty.xlsx", bytes.NewReader(data))
	require.NoError(t, err)

	records, err := sheet.Records(required)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRecords_MissingColumns(t *testing.T) {
	sheet := &Sheet{
		Header: []string{"name", "number", "location", "notes"},
		Rows:   [][]string{{"a", "1", "b", "c"}},
	}

	_, err := sheet.Records(required)

	var missing *apperrors.MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"pricing", "requirements", "remarks"}, missing.Columns)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestRecords_ExtraColumnsAndEmptyCells(t *testing.T) {
	sheet := &Sheet{
		Header: []string{"agent", " name ", "number", "location", "pricing", "requirements", "remarks"},
		Rows: [][]string{
			{"x", "Palm Court", "123", "Goa", "", "3BHK"},
			{"", "", "", "", "", "", ""},
			{"y", "Lake View", "456", "Delhi", "90L", "", "ok"},
		},
	}

	records, err := sheet.Records(required)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Palm Court", records[0]["name"])
	assert.Equal(t, "", records[0]["pricing"])
	assert.Equal(t, "", records[0]["remarks"])
	assert.NotContains(t, records[0], "agent")
	assert.Equal(t, "Lake View", records[1]["name"])
	assert.Equal(t, "", records[1]["requirements"])
}

func TestTrimTrailingBlank(t *testing.T) {
	rows := [][]string{{"a"}, nil, {"b"}, {"", " "}, nil}
	assert.Equal(t, [][]string{{"a"}, nil, {"b"}}, trimTrailingBlank(rows))
}
