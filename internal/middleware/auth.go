package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rbac-admin/internal/code"
	"rbac-admin/internal/ctxw"
	"rbac-admin/internal/session"
	"rbac-admin/pkg/logger"
	"rbac-admin/pkg/resp"
	"rbac-admin/pkg/utils/v"
)

// Route 由请求方法与路由模板组成,如"POST /v1/auth/login"
func Route(method, fullPath string) string {
	return method + " " + fullPath
}

// Auth 白名单中的路由直接放行,其余路由要求Authorization: Bearer <token>
func Auth(sessions *session.Manager, publicRoutes ...string) gin.HandlerFunc {
	public := make(map[string]struct{}, len(publicRoutes))
	for _, route := range publicRoutes {
		public[route] = struct{}{}
	}
	return func(c *gin.Context) {
		if _, ok := public[Route(c.Request.Method, c.FullPath())]; ok {
			c.Next()
			return
		}
		header := c.GetHeader(v.HeaderAuthorization)
		if !strings.HasPrefix(header, v.BearerPrefix) {
			resp.Error(c, code.ErrTokenMissing)
			return
		}
		ctx := c.Request.Context()
		claims, err := sessions.Validate(ctx, header)
		if err != nil {
			resp.Error(c, err)
			return
		}
		ctx = ctxw.SetClaims(ctx, claims)
		ctx = logger.AddFields(ctx, zap.Uint64("user_id", claims.UserID), zap.String("username", claims.Username))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// CurrentIdentity 当前登录用户的会话身份
func CurrentIdentity(c *gin.Context) session.Identity {
	ctx := c.Request.Context()
	return session.Identity{UserID: ctxw.GetUserID(ctx), Username: ctxw.GetUsername(ctx)}
}
