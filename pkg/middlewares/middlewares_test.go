package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rbac-admin/pkg/json"
	"rbac-admin/pkg/utils/v"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSetZapLogger(t *testing.T) {
	router := gin.New()
	router.Use(SetZapLogger(zap.NewNop()))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetHeader(v.HeaderTraceID))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(v.HeaderTraceID))
	assert.Equal(t, w.Header().Get(v.HeaderTraceID), w.Body.String())

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(v.HeaderTraceID, "trace-1")
	router.ServeHTTP(w, req)
	assert.Equal(t, "trace-1", w.Header().Get(v.HeaderTraceID))
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(SetZapLogger(zap.NewNop()), Recovery)
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set(v.HeaderAuthorization, "Bearer secret")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "5000000000", body["code"])
	assert.Equal(t, "/panic", body["path"])
}

func TestCheckRedis(t *testing.T) {
	active := false
	router := gin.New()
	router.Use(CheckRedis(func() bool { return active }))
	router.GET("/r", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	router.POST("/r", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/r", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/r", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	active = true
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/r", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCrossDomain(t *testing.T) {
	router := gin.New()
	router.Use(CrossDomain("http://admin.example.com"))
	router.GET("/r", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/r", nil)
	req.Header.Set("Origin", "http://admin.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://admin.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/r", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	router.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricAndLog(t *testing.T) {
	router := gin.New()
	router.Use(SetZapLogger(zap.NewNop()), Log, Metric)
	router.GET("/r/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/r/1?x=1", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/none", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
