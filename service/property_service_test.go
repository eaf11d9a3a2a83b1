package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/BerniceZTT/estate_end/apperrors"
	"github.com/BerniceZTT/estate_end/models"
	repomock "github.com/BerniceZTT/estate_end/repository/mock"
	"github.com/BerniceZTT/estate_end/spreadsheet/spreadsheettest"
	"github.com/BerniceZTT/estate_end/utils"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	utils.InitLoggerWithWriter(io.Discard, "error", false)
}

// fakeRows 生成 n 行随机房源数据，号码以数字单元格写入
func fakeRows(n int) [][]interface{} {
	rows := make([][]interface{}, n)
	for i := range rows {
		rows[i] = []interface{}{
			gofakeit.Company(),
			gofakeit.Number(7000000000, 9999999999),
			gofakeit.City(),
			gofakeit.Price(1000000, 90000000),
			gofakeit.RandomString([]string{"1BHK", "2BHK", "3BHK", "Villa"}),
			gofakeit.Sentence(4),
		}
	}
	return rows
}

func TestUpload_CreatesOneRecordPerRow(t *testing.T) {
	repo := new(repomock.PropertyRepoMock)
	svc := NewPropertyService(repo)
	requestTime := time.Now().UTC()

	rows := fakeRows(4)
	data := spreadsheettest.BuildXLSX(t, spreadsheettest.PropertyHeader(), rows...)

	repo.On("InsertMany", mock.Anything, mock.AnythingOfType("[]models.Property")).Return(4, nil).Once()

	count, err := svc.Upload(context.Background(), "listings.xlsx", bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 4, count)
	repo.AssertNumberOfCalls(t, "InsertMany", 1)

	inserted := repo.Calls[0].Arguments.Get(1).([]models.Property)
	require.Len(t, inserted, 4)

	ids := map[string]bool{}
	for i, p := range inserted {
		assert.NotEmpty(t, p.ID)
		ids[p.ID] = true
		assert.False(t, p.CreatedAt.Before(requestTime))
		assert.Equal(t, rows[i][0], p.Name)
		assert.Equal(t, rows[i][2], p.Location)
		assert.Equal(t, rows[i][5], p.Remarks)
	}
	assert.Len(t, ids, 4)
	assert.NotContains(t, inserted[0].Number, "E+")
}

func TestUpload_MissingColumnsPersistsNothing(t *testing.T) {
	repo := new(repomock.PropertyRepoMock)
	svc := NewPropertyService(repo)

	data := spreadsheettest.BuildXLSX(t, []string{"name", "number", "location"},
		[]interface{}{"Sea View", "123", "Goa"},
	)

	_, err := svc.Upload(context.Background(), "listings.xlsx", bytes.NewReader(data))

	var missing *apperrors.MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"pricing", "requirements", "remarks"}, missing.Columns)
	repo.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
}

func TestUpload_UnsupportedFormat(t *testing.T) {
	repo := new(repomock.PropertyRepoMock)
	svc := NewPropertyService(repo)

	_, err := svc.Upload(context.Background(), "listings.csv", strings.NewReader("name,number\n"))

	assert.True(t, apperrors.IsValidationError(err))
	repo.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
}

func TestUpload_CorruptFile(t *testing.T) {
	repo := new(repomock.PropertyRepoMock)
	svc := NewPropertyService(repo)

	_, err := svc.Upload(context.Background(), "listings.xlsx", strings.NewReader("garbage"))

	assert.True(t, apperrors.IsProcessingError(err))
	repo.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
}

func TestUpload_ZeroRowsSkipsPersistence(t *testing.T) {
	repo := new(repomock.PropertyRepoMock)
	svc := NewPropertyService(repo)

	data := spreadsheettest.BuildXLSX(t, spreadsheettest.PropertyHeader())

	count, err := svc.Upload(context.Background(), "empty.xlsx", bytes.NewReader(data))
	require.NoError(t, err)
	assert.Zero(t, count)
	repo.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
}

func TestUpload_StorageError(t *testing.T) {
	repo := new(repomock.PropertyRepoMock)
	svc := NewPropertyService(repo)

	data := spreadsheettest.BuildXLSX(t, spreadsheettest.PropertyHeader(), fakeRows(2)...)
	dbErr := apperrors.NewDatabase(errors.New("connection reset"), "insert properties")
	repo.On("InsertMany", mock.Anything, mock.Anything).Return(0, dbErr)

	_, err := svc.Upload(context.Background(), "listings.xlsx", bytes.NewReader(data))
	assert.True(t, apperrors.IsDatabaseError(err))
}

func TestUpload_SameDataTwiceDuplicates(t *testing.T) {
	repo := &repomock.MemoryPropertyRepo{}
	svc := NewPropertyService(repo)
	data := spreadsheettest.BuildXLSX(t, spreadsheettest.PropertyHeader(), fakeRows(3)...)

	for i := 0; i < 2; i++ {
		_, err := svc.Upload(context.Background(), "listings.xlsx", bytes.NewReader(data))
		require.NoError(t, err)
	}

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 6)
}

func TestClear_ReturnsRemovedCount(t *testing.T) {
	repo := &repomock.MemoryPropertyRepo{}
	svc := NewPropertyService(repo)
	_, err := repo.InsertMany(context.Background(), []models.Property{{ID: "a"}, {ID: "b"}})
	require.NoError(t, err)

	removed, err := svc.Clear(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUploadMessage(t *testing.T) {
	assert.Equal(t, "Successfully uploaded 5 properties", UploadMessage(5))
}
