package role

import (
	"github.com/gin-gonic/gin"

	"rbac-admin/internal/controllers"
	"rbac-admin/internal/request"
	"rbac-admin/internal/response"
	"rbac-admin/internal/service"
	"rbac-admin/pkg/resp"
)

type RoleController struct {
	srv service.Service
}

func NewRoleController(srv service.Service) *RoleController {
	return &RoleController{
		srv: srv,
	}
}

func (r *RoleController) Create(c *gin.Context) {
	var req request.CreateRoleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	id, err := r.srv.Roles().Create(c.Request.Context(), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, &response.IDRes{ID: id})
}

func (r *RoleController) Update(c *gin.Context) {
	id, ok := controllers.ParamID(c)
	if !ok {
		return
	}
	var req request.UpdateRoleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	if err := r.srv.Roles().Update(c.Request.Context(), id, &req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Success(c)
}

// Delete 仍被用户持有的角色不能删除
func (r *RoleController) Delete(c *gin.Context) {
	id, ok := controllers.ParamID(c)
	if !ok {
		return
	}
	if err := r.srv.Roles().Delete(c.Request.Context(), id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Success(c)
}

func (r *RoleController) Get(c *gin.Context) {
	id, ok := controllers.ParamID(c)
	if !ok {
		return
	}
	result, err := r.srv.Roles().Get(c.Request.Context(), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Success(c, result)
}

func (r *RoleController) List(c *gin.Context) {
	var req request.ListRoleReq
	if err := c.ShouldBindQuery(&req); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	if err := req.Check(); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	result, err := r.srv.Roles().List(c.Request.Context(), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Success(c, result)
}

// All 全部角色,供下拉选择
func (r *RoleController) All(c *gin.Context) {
	result, err := r.srv.Roles().All(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Success(c, result)
}

// AssignPermissions 覆盖角色的权限
func (r *RoleController) AssignPermissions(c *gin.Context) {
	id, ok := controllers.ParamID(c)
	if !ok {
		return
	}
	var req request.AssignPermissionsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	if err := r.srv.Roles().AssignPermissions(c.Request.Context(), id, req.PermissionIDs); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Success(c)
}
