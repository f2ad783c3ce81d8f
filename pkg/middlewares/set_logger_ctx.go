package middlewares

import (
	"github.com/gin-gonic/gin"
	uuid "github.com/satori/go.uuid"
	"go.uber.org/zap"

	"rbac-admin/pkg/logger"
	"rbac-admin/pkg/utils/v"
)

// SetZapLogger 为请求绑定带trace_id的logger
func SetZapLogger(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		setZapLogger(c, l)
	}
}

func setZapLogger(c *gin.Context, l *zap.Logger) {
	// 请求头X-Trace-ID为空时自动生成
	traceID := c.GetHeader(v.HeaderTraceID)
	if traceID == "" {
		traceID = uuid.NewV4().String()
		c.Request.Header.Set(v.HeaderTraceID, traceID) // 请求头
	}
	// 设置响应头
	if c.Writer.Header().Get(v.HeaderTraceID) == "" {
		c.Writer.Header().Set(v.HeaderTraceID, traceID) // 响应头
	}
	ctx := logger.With(c.Request.Context(), l.With(
		zap.String("trace_id", traceID),
		zap.String("client_ip", c.ClientIP()),
	))
	c.Request = c.Request.WithContext(ctx)
	c.Next()
}
