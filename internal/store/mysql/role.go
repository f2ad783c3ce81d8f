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

func newRole(db *storage.DB) *role {
	return &role{
		DB: db,
	}
}

type role struct {
	*storage.DB
}

func (r role) Create(ctx context.Context, obj *model.Role) error {
	if err := r.With(ctx).Create(obj).Error; err != nil {
		return writeError(err, roleConflicts)
	}
	return nil
}

func (r role) Update(ctx context.Context, id uint64, values map[string]interface{}) error {
	values["updated_by"] = storage.Operator(ctx)
	if err := r.With(ctx).Model(&model.Role{}).Where("id = ?", id).Updates(values).Error; err != nil {
		return writeError(err, roleConflicts)
	}
	return nil
}

func (r role) Delete(ctx context.Context, id uint64) error {
	return r.With(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Delete(&model.Role{Base: storage.Base{SnowID: storage.SnowID{ID: id}}})
		if err := query.Error; err != nil {
			return dbError(err)
		}
		if query.RowsAffected == 0 {
			return errors.WithStack(code.ErrRoleNotFound)
		}
		if err := tx.Where("role_id = ?", id).Delete(&model.RolePermission{}).Error; err != nil {
			return dbError(err)
		}
		// 只剩已删除的用户仍关联该角色
		if err := tx.Where("role_id = ?", id).Delete(&model.UserRole{}).Error; err != nil {
			return dbError(err)
		}
		return nil
	})
}

func (r role) Get(ctx context.Context, id uint64) (*model.Role, error) {
	var obj model.Role
	if err := r.With(ctx).Where("id = ?", id).First(&obj).Error; err != nil {
		return nil, notFound(err, code.ErrRoleNotFound)
	}
	return &obj, nil
}

func (r role) List(ctx context.Context, req *request.ListRoleReq) ([]*model.Role, error) {
	var objs []*model.Role
	query := r.With(ctx).Model(&model.Role{})
	if req.Keyword != "" {
		nameCond, arg := storage.Contains("name", req.Keyword)
		keyCond, _ := storage.Contains("role_key", req.Keyword)
		query = query.Where("("+nameCond+" OR "+keyCond+")", arg, arg)
	}
	if req.Status != nil {
		query = query.Where("status = ?", *req.Status)
	}
	if err := req.Build(ctx, query).Find(&objs).Error; err != nil {
		return nil, dbError(err)
	}
	return objs, nil
}

func (r role) All(ctx context.Context) ([]*model.Role, error) {
	objs := make([]*model.Role, 0)
	if err := r.With(ctx).Order("sort").Order("id").Find(&objs).Error; err != nil {
		return nil, dbError(err)
	}
	return objs, nil
}

func (r role) ListByUsers(ctx context.Context, userIDs []uint64, status *model.RoleStatus) (map[uint64][]*model.Role, error) {
	result := make(map[uint64][]*model.Role, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}
	var links []*model.UserRole
	if err := r.With(ctx).Where("user_id IN ?", userIDs).Find(&links).Error; err != nil {
		return nil, dbError(err)
	}
	if len(links) == 0 {
		return result, nil
	}
	roleIDs := make([]uint64, 0, len(links))
	for _, link := range links {
		roleIDs = append(roleIDs, link.RoleID)
	}
	var roles []*model.Role
	query := r.With(ctx).Where("id IN ?", roleIDs)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if err := query.Order("sort").Order("id").Find(&roles).Error; err != nil {
		return nil, dbError(err)
	}
	holders := make(map[uint64][]uint64, len(roles))
	for _, link := range links {
		holders[link.RoleID] = append(holders[link.RoleID], link.UserID)
	}
	// 每个用户的角色保持(sort, id)顺序
	for _, obj := range roles {
		for _, userID := range holders[obj.ID] {
			result[userID] = append(result[userID], obj)
		}
	}
	return result, nil
}

func (r role) CountUsers(ctx context.Context, id uint64) (int64, error) {
	var count int64
	if err := r.With(ctx).Model(&model.User{}).
		Where("id IN (?)", r.With(ctx).Model(&model.UserRole{}).Select("user_id").Where("role_id = ?", id)).
		Count(&count).Error; err != nil {
		return 0, dbError(err)
	}
	return count, nil
}

func (r role) CountLive(ctx context.Context, ids []uint64) (int64, error) {
	var count int64
	if len(ids) == 0 {
		return 0, nil
	}
	if err := r.With(ctx).Model(&model.Role{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return 0, dbError(err)
	}
	return count, nil
}

func (r role) PermissionIDs(ctx context.Context, id uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	if err := r.With(ctx).Model(&model.RolePermission{}).
		Joins("JOIN sys_permission ON sys_permission.id = sys_role_permission.permission_id AND sys_permission.deleted = 0").
		Where("sys_role_permission.role_id = ?", id).
		Order("sys_role_permission.permission_id").
		Pluck("sys_role_permission.permission_id", &ids).Error; err != nil {
		return nil, dbError(err)
	}
	return ids, nil
}

func (r role) ReplacePermissions(ctx context.Context, id uint64, permissionIDs []uint64) error {
	return r.With(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", id).Delete(&model.RolePermission{}).Error; err != nil {
			return dbError(err)
		}
		if len(permissionIDs) == 0 {
			return nil
		}
		rows := make([]*model.RolePermission, 0, len(permissionIDs))
		for _, permissionID := range permissionIDs {
			rows = append(rows, &model.RolePermission{RoleID: id, PermissionID: permissionID})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return dbError(err)
		}
		return nil
	})
}
