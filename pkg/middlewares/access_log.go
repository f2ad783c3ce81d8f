package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rbac-admin/pkg/logger"
)

// Log 访问日志,不记录请求体与Authorization
func Log(c *gin.Context) {
	start := time.Now()
	path := c.Request.URL.Path
	if raw := c.Request.URL.RawQuery; raw != "" {
		path = path + "?" + raw
	}

	c.Next()

	fields := []zap.Field{
		zap.Int("status", c.Writer.Status()),
		zap.String("method", c.Request.Method),
		zap.String("path", path),
		zap.String("route", c.FullPath()),
		zap.Duration("latency", time.Since(start)),
		zap.Int("size", c.Writer.Size()),
		zap.String("user_agent", c.Request.UserAgent()),
	}
	if errs := c.Errors.ByType(gin.ErrorTypePrivate).String(); errs != "" {
		fields = append(fields, zap.String("errors", errs))
	}
	// 使用c.Request的context,鉴权后追加的user_id等字段一并输出
	logger.From(c.Request.Context()).Info("access", fields...)
}
