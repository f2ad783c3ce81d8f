package store

import (
	"context"

	"rbac-admin/internal/model"
	"rbac-admin/internal/request"
)

type RoleStore interface {
	Create(ctx context.Context, role *model.Role) error
	Update(ctx context.Context, id uint64, values map[string]interface{}) error
	// Delete 软删除角色并移除其用户与权限关联
	Delete(ctx context.Context, id uint64) error
	Get(ctx context.Context, id uint64) (*model.Role, error)
	List(ctx context.Context, req *request.ListRoleReq) ([]*model.Role, error)
	All(ctx context.Context) ([]*model.Role, error)
	// ListByUsers 用户持有的未删除角色,status为nil时不过滤状态
	ListByUsers(ctx context.Context, userIDs []uint64, status *model.RoleStatus) (map[uint64][]*model.Role, error)
	// CountUsers 持有该角色的未删除用户数
	CountUsers(ctx context.Context, id uint64) (int64, error)
	// CountLive ids中未删除角色的数量
	CountLive(ctx context.Context, ids []uint64) (int64, error)
	PermissionIDs(ctx context.Context, id uint64) ([]uint64, error)
	// ReplacePermissions 全量替换角色权限
	ReplacePermissions(ctx context.Context, id uint64, permissionIDs []uint64) error
}
