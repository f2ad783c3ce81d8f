package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"rbac-admin/pkg/prometheus"
)

// Metric 请求数与耗时,按路由模板聚合
func Metric(c *gin.Context) {
	start := time.Now()
	c.Next()
	path := c.FullPath()
	if path == "" {
		path = "unmatched"
	}
	prometheus.RequestCounterVec.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
	prometheus.RequestDurationVec.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
}
