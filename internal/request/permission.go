package request

import "rbac-admin/internal/model"

// CreatePermissionReq 创建权限节点
type CreatePermissionReq struct {
	Name        string               `json:"name" binding:"required,max=64"`
	Type        model.PermissionType `json:"type" binding:"oneof=0 1 2"`
	ParentID    uint64               `json:"parent_id,string"`
	Path        string               `json:"path" binding:"max=255"`
	Component   string               `json:"component" binding:"max=255"`
	Icon        string               `json:"icon" binding:"max=100"`
	Code        string               `json:"code" binding:"omitempty,permission_code"`
	OrderNum    int                  `json:"order_num" binding:"min=0"`
	IsVisible   *bool                `json:"is_visible"`
	IsCacheable *bool                `json:"is_cacheable"`
}

// UpdatePermissionReq 更新权限节点,未传的字段保持不变
type UpdatePermissionReq struct {
	Name        *string               `json:"name" binding:"omitempty,min=1,max=64"`
	Type        *model.PermissionType `json:"type" binding:"omitempty,oneof=0 1 2"`
	ParentID    *uint64               `json:"parent_id,string"`
	Path        *string               `json:"path" binding:"omitempty,max=255"`
	Component   *string               `json:"component" binding:"omitempty,max=255"`
	Icon        *string               `json:"icon" binding:"omitempty,max=100"`
	Code        *string               `json:"code" binding:"omitempty,max=100,permission_code|len=0"`
	OrderNum    *int                  `json:"order_num" binding:"omitempty,min=0"`
	IsVisible   *bool                 `json:"is_visible"`
	IsCacheable *bool                 `json:"is_cacheable"`
}

// PermissionTreeReq 权限树过滤条件
type PermissionTreeReq struct {
	Name    string                `form:"name" binding:"omitempty,max=64"`
	Type    *model.PermissionType `form:"type" binding:"omitempty,oneof=0 1 2"`
	Visible *bool                 `form:"visible"`
}
