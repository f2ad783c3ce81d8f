package controllers

import (
	"context"
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"rbac-admin/internal/testutil"
)

func TestParamID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", Health())
	router.GET("/ready", Health(func(context.Context) error { return assert.AnError }))
	router.GET("/things/:id", func(c *gin.Context) {
		id, ok := ParamID(c)
		if !ok {
			return
		}
		c.String(http.StatusOK, strconv.FormatUint(id, 10))
	})

	w := testutil.PerformRequest(router, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = testutil.PerformRequest(router, http.MethodGet, "/ready", nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = testutil.PerformRequest(router, http.MethodGet, "/things/42", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "42", w.Body.String())

	for _, path := range []string{"/things/0", "/things/abc", "/things/-1"} {
		w = testutil.PerformRequest(router, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Contains(t, w.Body.String(), "4000000")
	}
}
