package response

import (
	"rbac-admin/internal/model"
	"rbac-admin/pkg/idx"
	"rbac-admin/pkg/storage"
)

// Role 角色详情,附带已授权的权限id
type Role struct {
	*model.Role
	PermissionIDs idx.IDs `json:"permission_ids"`
}

type ListRoleRes struct {
	storage.Pagination
	List []*model.Role `json:"list"`
}
