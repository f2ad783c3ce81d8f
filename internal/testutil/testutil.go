// Package testutil 单元测试公用的数据库与http辅助方法
package testutil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"

	"rbac-admin/internal/model"
	"rbac-admin/internal/store"
	"rbac-admin/internal/store/mysql"
	"rbac-admin/pkg/storage"
)

// OpenDB 每个测试独占一个内存sqlite库,结构由AutoMigrate生成
func OpenDB(t testing.TB) *storage.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := storage.Open(context.Background(), sqlite.Open(dsn),
		storage.WithMaxOpenConn(1), storage.WithMaxIdleConn(1))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.Tables()...))
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// OpenStore 基于OpenDB的store
func OpenStore(t testing.TB) store.Store {
	t.Helper()
	return mysql.New(OpenDB(t))
}

// PerformRequest unit test function httptest.ResponseRecorder
func PerformRequest(r http.Handler, method, path string, body io.Reader,
	headers http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if headers != nil {
		req.Header = headers
	}
	if body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
