package store

import (
	"context"

	"rbac-admin/internal/model"
	"rbac-admin/internal/request"
)

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, id uint64, values map[string]interface{}) error
	// Delete 软删除用户并移除其角色关联
	Delete(ctx context.Context, id uint64) error
	Get(ctx context.Context, id uint64) (*model.User, error)
	// GetActiveByUsername 只查询状态正常的用户
	GetActiveByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context, req *request.ListUserReq) ([]*model.User, error)
	UpdatePassword(ctx context.Context, id uint64, digest string) error
	// ReplaceRoles 全量替换用户角色
	ReplaceRoles(ctx context.Context, id uint64, roleIDs []uint64) error
}
