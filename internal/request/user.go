package request

import (
	"rbac-admin/internal/model"
	"rbac-admin/pkg/idx"
	"rbac-admin/pkg/storage"
)

// CreateUserReq 创建用户,密码由服务端生成
type CreateUserReq struct {
	Username string            `json:"username" binding:"required,username"`
	Nickname string            `json:"nickname" binding:"required,max=64"`
	Email    string            `json:"email" binding:"omitempty,email,max=128"`
	Phone    string            `json:"phone" binding:"omitempty,numeric,min=5,max=32"`
	Gender   model.Gender      `json:"gender" binding:"oneof=0 1"`
	Avatar   string            `json:"avatar" binding:"omitempty,max=255"`
	Status   *model.UserStatus `json:"status" binding:"omitempty,oneof=0 1 2"`
	Remark   string            `json:"remark" binding:"max=500"`
}

// UpdateUserReq 更新用户,未传的字段保持不变
type UpdateUserReq struct {
	Nickname *string           `json:"nickname" binding:"omitempty,min=1,max=64"`
	Email    *string           `json:"email" binding:"omitempty,max=128,email|len=0"`
	Phone    *string           `json:"phone" binding:"omitempty,max=32,numeric|len=0"`
	Gender   *model.Gender     `json:"gender" binding:"omitempty,oneof=0 1"`
	Avatar   *string           `json:"avatar" binding:"omitempty,max=255"`
	Status   *model.UserStatus `json:"status" binding:"omitempty,oneof=0 1 2"`
	Remark   *string           `json:"remark" binding:"omitempty,max=500"`
}

// ListUserReq 用户列表
type ListUserReq struct {
	Username string            `form:"username" binding:"omitempty,max=32"`
	Status   *model.UserStatus `form:"status" binding:"omitempty,oneof=0 1 2"`
	RoleID   uint64            `form:"role_id"`
	storage.ListQuery
}

var userSortColumns = []string{"id", "username", "nickname", "status", "created_at", "updated_at"}

// Check 排序字段白名单
func (r *ListUserReq) Check() error {
	return r.Sort.Allow(userSortColumns...)
}

// AssignRolesReq 全量替换用户角色
type AssignRolesReq struct {
	RoleIDs idx.IDs `json:"role_ids"`
}

// ChangePasswordReq 修改本人密码
type ChangePasswordReq struct {
	OldPassword string `json:"old_password" binding:"required,max=72"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=72,nefield=OldPassword"`
}
