package middleware

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/BerniceZTT/estate_end/models"
	repomock "github.com/BerniceZTT/estate_end/repository/mock"
	"github.com/BerniceZTT/estate_end/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.InitLoggerWithWriter(io.Discard, "error", false)
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	utils.InitLoggerWithWriter(buf, "info", false)
	t.Cleanup(func() { utils.InitLoggerWithWriter(io.Discard, "error", false) })
	return buf
}

func TestLogger_RecordsJSONBody(t *testing.T) {
	logs := captureLogs(t)

	r := gin.New()
	r.Use(Logger())
	r.POST("/api/update-call", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		require.NoError(t, err)
		c.String(http.StatusOK, string(body))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/update-call", strings.NewReader(`{"call_id":"c1"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	// 记录日志后请求体仍可被处理函数读取
	assert.Equal(t, `{"call_id":"c1"}`, rec.Body.String())
	assert.Contains(t, logs.String(), `c1`)
	assert.Contains(t, logs.String(), "API响应")
}

func TestLogger_SkipsMultipartBody(t *testing.T) {
	logs := captureLogs(t)

	r := gin.New()
	r.Use(Logger())
	r.POST("/api/upload-excel", func(c *gin.Context) {
		_, err := c.FormFile("file")
		require.NoError(t, err)
		c.Status(http.StatusOK)
	})

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", "listings.xlsx")
	require.NoError(t, err)
	_, err = part.Write([]byte("PK-secret-workbook-bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload-excel", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, logs.String(), "PK-secret-workbook-bytes")
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("a", maxLoggedBody+10)
	assert.Equal(t, maxLoggedBody+len("...(truncated)"), len(truncate(long)))
	assert.Equal(t, "short", truncate("short"))
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), utils.CodeInternal)
}

func TestErrorHandler_ConvertsUnhandledErrors(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/fail", func(c *gin.Context) {
		_ = c.Error(errors.New("something broke"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "something broke")
}

func TestCORS_ConfiguredOrigins(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://crm.example.com"}))
	r.GET("/api/properties", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/properties", nil)
	req.Header.Set("Origin", "https://crm.example.com")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "https://crm.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/properties", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestOperationLogger_SaveFailureDoesNotAffectResponse(t *testing.T) {
	repo := new(repomock.OperationLogRepoMock)
	repo.On("Save", mock.Anything, mock.AnythingOfType("models.OperationLog")).Return(errors.New("write failed")).Once()

	r := gin.New()
	r.Use(OperationLoggerMiddleware(repo))
	r.DELETE("/api/properties", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"count_removed": 3}) })
	r.GET("/api/properties", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodDelete, "/api/properties?confirm=1", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.7")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/properties", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	repo.AssertNumberOfCalls(t, "Save", 1)
	saved := repo.Calls[0].Arguments.Get(1).(models.OperationLog)
	assert.Equal(t, http.MethodDelete, saved.Method)
	assert.Equal(t, "confirm=1", saved.Query)
	assert.Equal(t, "10.0.0.7", saved.IPAddress)
	assert.True(t, saved.Success)
}

func TestErrorHandler_BindErrorsAreBadRequests(t *testing.T) {
	utils.RegisterValidatorTagNames()

	type input struct {
		CallID string `json:"call_id" binding:"required"`
	}

	r := gin.New()
	r.Use(ErrorHandler())
	r.POST("/api/update-call", func(c *gin.Context) {
		var in input
		if err := c.ShouldBindJSON(&in); err != nil {
			_ = c.Error(err).SetType(gin.ErrorTypeBind)
		}
	})

	req := httptest.NewRequest(http.MethodPost, "/api/update-call", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "field 'call_id' is required")
}

func TestErrorHandler_LeavesWrittenResponses(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/api/properties", func(c *gin.Context) {
		_ = c.Error(errors.New("already handled"))
		c.JSON(http.StatusAccepted, gin.H{"ok": true})
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/properties", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}
