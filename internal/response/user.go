package response

import (
	"rbac-admin/internal/model"
	"rbac-admin/pkg/storage"
)

// RoleBrief 用户所属角色
type RoleBrief struct {
	ID     uint64           `json:"id,string"`
	Name   string           `json:"name"`
	Key    string           `json:"key"`
	Status model.RoleStatus `json:"status"`
}

// User 用户信息,不含密码
type User struct {
	*model.User
	Roles []*RoleBrief `json:"roles"`
}

type ListUserRes struct {
	storage.Pagination
	List []*User `json:"list"`
}

// CreateUserRes 新用户的临时密码只返回这一次
type CreateUserRes struct {
	ID       uint64 `json:"id,string"`
	Password string `json:"password"`
}

// ResetPasswordRes 重置后的临时密码
type ResetPasswordRes struct {
	Password string `json:"password"`
}

// NewRoleBriefs 转换为角色摘要,保证非nil
func NewRoleBriefs(roles []*model.Role) []*RoleBrief {
	out := make([]*RoleBrief, 0, len(roles))
	for _, role := range roles {
		out = append(out, &RoleBrief{
			ID:     role.ID,
			Name:   role.Name,
			Key:    role.Key,
			Status: role.Status,
		})
	}
	return out
}
