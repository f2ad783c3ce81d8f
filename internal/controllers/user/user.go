package user

import (
	"github.com/gin-gonic/gin"

	"rbac-admin/internal/controllers"
	"rbac-admin/internal/middleware"
	"rbac-admin/internal/request"
	"rbac-admin/internal/service"
	"rbac-admin/pkg/resp"
)

type UserController struct {
	srv service.Service
}

func NewUserController(srv service.Service) *UserController {
	return &UserController{
		srv: srv,
	}
}

// Create 新增用户,返回一次性的初始密码
func (u *UserController) Create(c *gin.Context) {
	var req request.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	result, err := u.srv.Users().Create(c.Request.Context(), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, result)
}

// Update 修改用户资料
func (u *UserController) Update(c *gin.Context) {
	id, ok := controllers.ParamID(c)
	if !ok {
		return
	}
	var req request.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	if err := u.srv.Users().Update(c.Request.Context(), id, &req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Success(c)
}

// Delete 删除用户
func (u *UserController) Delete(c *gin.Context) {
	id, ok := controllers.ParamID(c)
	if !ok {
		return
	}
	if err := u.srv.Users().Delete(c.Request.Context(), id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Success(c)
}

// Get 用户详情
func (u *UserController) Get(c *gin.Context) {
	id, ok := controllers.ParamID(c)
	if !ok {
		return
	}
	result, err := u.srv.Users().Get(c.Request.Context(), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Success(c, result)
}

// List 分页查询用户
func (u *UserController) List(c *gin.Context) {
	var req request.ListUserReq
	if err := c.ShouldBindQuery(&req); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	if err := req.Check(); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	result, err := u.srv.Users().List(c.Request.Context(), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Success(c, result)
}

// AssignRoles 覆盖用户的角色
func (u *UserController) AssignRoles(c *gin.Context) {
	id, ok := controllers.ParamID(c)
	if !ok {
		return
	}
	var req request.AssignRolesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	if err := u.srv.Users().AssignRoles(c.Request.Context(), id, req.RoleIDs); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Success(c)
}

// ResetPassword 管理员重置密码
func (u *UserController) ResetPassword(c *gin.Context) {
	id, ok := controllers.ParamID(c)
	if !ok {
		return
	}
	result, err := u.srv.Users().ResetPassword(c.Request.Context(), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Success(c, result)
}

// ChangePassword 修改自己的密码,成功后需要重新登录
func (u *UserController) ChangePassword(c *gin.Context) {
	var req request.ChangePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	identity := middleware.CurrentIdentity(c)
	if err := u.srv.Users().ChangePassword(c.Request.Context(), identity.UserID, &req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Success(c)
}
