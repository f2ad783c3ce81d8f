package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rbac-admin/pkg/logger"
)

// Health 健康检查,用于k8s pod的心跳检查,任一探测失败返回503
func Health(probes ...func(context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		for _, probe := range probes {
			if err := probe(ctx); err != nil {
				logger.From(ctx).Warn("health probe failed", zap.Error(err))
				c.Status(http.StatusServiceUnavailable)
				return
			}
		}
		c.Status(http.StatusNoContent)
	}
}
