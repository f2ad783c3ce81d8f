package store

import (
	"context"

	"rbac-admin/internal/model"
	"rbac-admin/internal/request"
)

type PermissionStore interface {
	Create(ctx context.Context, permission *model.Permission) error
	Update(ctx context.Context, id uint64, values map[string]interface{}) error
	// Delete 软删除权限并移除其角色授权
	Delete(ctx context.Context, id uint64) error
	Get(ctx context.Context, id uint64) (*model.Permission, error)
	// List 按(parent_id, order_num)排序
	List(ctx context.Context, req *request.PermissionTreeReq) ([]*model.Permission, error)
	// ListByRoles 角色授权的未删除权限,按order_num升序,多个角色重叠时可能重复
	ListByRoles(ctx context.Context, roleIDs []uint64) ([]*model.Permission, error)
	CountChildren(ctx context.Context, id uint64) (int64, error)
	// CountLive ids中未删除权限的数量
	CountLive(ctx context.Context, ids []uint64) (int64, error)
}
