package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rbac-admin/pkg/code"
	"rbac-admin/pkg/resp"
)

var errServiceUnavailable = code.Froze("5030000009", "service under maintenance, please try again later")

// CheckRedis 会话存储不可用时,只放行GET请求
func CheckRedis(active func() bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if active != nil && !active() && c.Request.Method != http.MethodGet {
			resp.Error(c, errServiceUnavailable)
			return
		}
		c.Next()
	}
}
