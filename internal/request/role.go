package request

import (
	"rbac-admin/internal/model"
	"rbac-admin/pkg/idx"
	"rbac-admin/pkg/storage"
)

// CreateRoleReq 创建角色
type CreateRoleReq struct {
	Name   string            `json:"name" binding:"required,max=64"`
	Key    string            `json:"key" binding:"required,max=64"`
	Status *model.RoleStatus `json:"status" binding:"omitempty,oneof=0 1"`
	Sort   int               `json:"sort" binding:"min=0"`
	Remark string            `json:"remark" binding:"max=500"`
}

// UpdateRoleReq 更新角色,未传的字段保持不变
type UpdateRoleReq struct {
	Name   *string           `json:"name" binding:"omitempty,min=1,max=64"`
	Key    *string           `json:"key" binding:"omitempty,min=1,max=64"`
	Status *model.RoleStatus `json:"status" binding:"omitempty,oneof=0 1"`
	Sort   *int              `json:"sort" binding:"omitempty,min=0"`
	Remark *string           `json:"remark" binding:"omitempty,max=500"`
}

// ListRoleReq 角色列表,keyword匹配名称或标识
type ListRoleReq struct {
	Keyword string            `form:"keyword" binding:"omitempty,max=64"`
	Status  *model.RoleStatus `form:"status" binding:"omitempty,oneof=0 1"`
	storage.ListQuery
}

var roleSortColumns = []string{"id", "name", "role_key", "status", "sort", "created_at", "updated_at"}

// Check 排序字段白名单
func (r *ListRoleReq) Check() error {
	return r.Sort.Allow(roleSortColumns...)
}

// AssignPermissionsReq 全量替换角色权限
type AssignPermissionsReq struct {
	PermissionIDs idx.IDs `json:"permission_ids"`
}
