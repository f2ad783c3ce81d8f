package permission

import (
	"github.com/gin-gonic/gin"

	"rbac-admin/internal/controllers"
	"rbac-admin/internal/request"
	"rbac-admin/internal/response"
	"rbac-admin/internal/service"
	"rbac-admin/pkg/resp"
)

type PermissionController struct {
	srv service.Service
}

func NewPermissionController(srv service.Service) *PermissionController {
	return &PermissionController{
		srv: srv,
	}
}

func (p *PermissionController) Create(c *gin.Context) {
	var req request.CreatePermissionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	id, err := p.srv.Permissions().Create(c.Request.Context(), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, &response.IDRes{ID: id})
}

func (p *PermissionController) Update(c *gin.Context) {
	id, ok := controllers.ParamID(c)
	if !ok {
		return
	}
	var req request.UpdatePermissionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	if err := p.srv.Permissions().Update(c.Request.Context(), id, &req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Success(c)
}

// Delete 存在子节点时拒绝删除
func (p *PermissionController) Delete(c *gin.Context) {
	id, ok := controllers.ParamID(c)
	if !ok {
		return
	}
	if err := p.srv.Permissions().Delete(c.Request.Context(), id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Success(c)
}

func (p *PermissionController) Get(c *gin.Context) {
	id, ok := controllers.ParamID(c)
	if !ok {
		return
	}
	result, err := p.srv.Permissions().Get(c.Request.Context(), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Success(c, result)
}

// Tree 权限树,可按名称、类型、可见性过滤
func (p *PermissionController) Tree(c *gin.Context) {
	var req request.PermissionTreeReq
	if err := c.ShouldBindQuery(&req); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	result, err := p.srv.Permissions().Tree(c.Request.Context(), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Success(c, result)
}
