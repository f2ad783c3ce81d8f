package auth

import (
	"github.com/gin-gonic/gin"

	"rbac-admin/internal/middleware"
	"rbac-admin/internal/request"
	"rbac-admin/internal/service"
	"rbac-admin/pkg/resp"
)

type AuthController struct {
	srv service.Service
}

func NewAuthController(srv service.Service) *AuthController {
	return &AuthController{
		srv: srv,
	}
}

// Login 用户名密码登录,签发token
func (a *AuthController) Login(c *gin.Context) {
	ctx := c.Request.Context()
	var req request.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	result, err := a.srv.Auth().Login(ctx, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Success(c, result)
}

// Logout 注销当前会话
func (a *AuthController) Logout(c *gin.Context) {
	if err := a.srv.Auth().Logout(c.Request.Context(), middleware.CurrentIdentity(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Success(c)
}

// Profile 当前用户信息及菜单、按钮权限
func (a *AuthController) Profile(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	result, err := a.srv.Auth().Profile(c.Request.Context(), identity.UserID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Success(c, result)
}
