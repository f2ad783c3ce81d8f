package mysql

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"rbac-admin/internal/code"
	"rbac-admin/internal/model"
	"rbac-admin/internal/request"
	"rbac-admin/pkg/storage"
)

func newPermission(db *storage.DB) *permission {
	return &permission{
		DB: db,
	}
}

type permission struct {
	*storage.DB
}

func (p permission) Create(ctx context.Context, obj *model.Permission) error {
	if err := p.With(ctx).Create(obj).Error; err != nil {
		return writeError(err, permissionConflicts)
	}
	return nil
}

func (p permission) Update(ctx context.Context, id uint64, values map[string]interface{}) error {
	values["updated_by"] = storage.Operator(ctx)
	if err := p.With(ctx).Model(&model.Permission{}).Where("id = ?", id).Updates(values).Error; err != nil {
		return writeError(err, permissionConflicts)
	}
	return nil
}

func (p permission) Delete(ctx context.Context, id uint64) error {
	return p.With(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Delete(&model.Permission{Base: storage.Base{SnowID: storage.SnowID{ID: id}}})
		if err := query.Error; err != nil {
			return dbError(err)
		}
		if query.RowsAffected == 0 {
			return errors.WithStack(code.ErrPermissionNotFound)
		}
		if err := tx.Where("permission_id = ?", id).Delete(&model.RolePermission{}).Error; err != nil {
			return dbError(err)
		}
		return nil
	})
}

func (p permission) Get(ctx context.Context, id uint64) (*model.Permission, error) {
	var obj model.Permission
	if err := p.With(ctx).Where("id = ?", id).First(&obj).Error; err != nil {
		return nil, notFound(err, code.ErrPermissionNotFound)
	}
	return &obj, nil
}

func (p permission) List(ctx context.Context, req *request.PermissionTreeReq) ([]*model.Permission, error) {
	objs := make([]*model.Permission, 0)
	query := p.With(ctx).Model(&model.Permission{})
	if req != nil {
		if req.Name != "" {
			query = query.Where(storage.Contains("name", req.Name))
		}
		if req.Type != nil {
			query = query.Where("type = ?", *req.Type)
		}
		if req.Visible != nil {
			query = query.Where("is_visible = ?", *req.Visible)
		}
	}
	if err := query.Order("parent_id").Order("order_num").Order("id").Find(&objs).Error; err != nil {
		return nil, dbError(err)
	}
	return objs, nil
}

func (p permission) ListByRoles(ctx context.Context, roleIDs []uint64) ([]*model.Permission, error) {
	objs := make([]*model.Permission, 0)
	if len(roleIDs) == 0 {
		return objs, nil
	}
	if err := p.With(ctx).Model(&model.Permission{}).
		Joins("JOIN sys_role_permission ON sys_role_permission.permission_id = sys_permission.id").
		Where("sys_role_permission.role_id IN ?", roleIDs).
		Order("sys_permission.order_num").Order("sys_permission.id").
		Find(&objs).Error; err != nil {
		return nil, dbError(err)
	}
	return objs, nil
}

func (p permission) CountChildren(ctx context.Context, id uint64) (int64, error) {
	var count int64
	if err := p.With(ctx).Model(&model.Permission{}).Where("parent_id = ?", id).Count(&count).Error; err != nil {
		return 0, dbError(err)
	}
	return count, nil
}

func (p permission) CountLive(ctx context.Context, ids []uint64) (int64, error) {
	var count int64
	if len(ids) == 0 {
		return 0, nil
	}
	if err := p.With(ctx).Model(&model.Permission{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return 0, dbError(err)
	}
	return count, nil
}
