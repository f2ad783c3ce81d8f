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

func newUser(db *storage.DB) *user {
	return &user{
		DB: db,
	}
}

type user struct {
	*storage.DB
}

func (u user) Create(ctx context.Context, obj *model.User) error {
	if err := u.With(ctx).Create(obj).Error; err != nil {
		return writeError(err, userConflicts)
	}
	return nil
}

func (u user) Update(ctx context.Context, id uint64, values map[string]interface{}) error {
	values["updated_by"] = storage.Operator(ctx)
	if err := u.With(ctx).Model(&model.User{}).Where("id = ?", id).Updates(values).Error; err != nil {
		return writeError(err, userConflicts)
	}
	return nil
}

func (u user) Delete(ctx context.Context, id uint64) error {
	return u.With(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Delete(&model.User{Base: storage.Base{SnowID: storage.SnowID{ID: id}}})
		if err := query.Error; err != nil {
			return dbError(err)
		}
		if query.RowsAffected == 0 {
			return errors.WithStack(code.ErrUserNotFound)
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.UserRole{}).Error; err != nil {
			return dbError(err)
		}
		return nil
	})
}

func (u user) Get(ctx context.Context, id uint64) (*model.User, error) {
	var obj model.User
	if err := u.With(ctx).Where("id = ?", id).First(&obj).Error; err != nil {
		return nil, notFound(err, code.ErrUserNotFound)
	}
	return &obj, nil
}

func (u user) GetActiveByUsername(ctx context.Context, username string) (*model.User, error) {
	var obj model.User
	if err := u.With(ctx).
		Where("username = ? AND status = ?", username, model.UserStatusNormal).
		First(&obj).Error; err != nil {
		return nil, notFound(err, code.ErrLoginUserNotFound)
	}
	return &obj, nil
}

func (u user) List(ctx context.Context, req *request.ListUserReq) ([]*model.User, error) {
	var objs []*model.User
	query := u.With(ctx).Model(&model.User{})
	if req.Username != "" {
		query = query.Where(storage.Contains("username", req.Username))
	}
	if req.Status != nil {
		query = query.Where("status = ?", *req.Status)
	}
	if req.RoleID != 0 {
		query = query.Where("id IN (?)", u.With(ctx).Model(&model.UserRole{}).
			Select("user_id").Where("role_id = ?", req.RoleID))
	}
	if err := req.Build(ctx, query).Find(&objs).Error; err != nil {
		return nil, dbError(err)
	}
	return objs, nil
}

func (u user) UpdatePassword(ctx context.Context, id uint64, digest string) error {
	query := u.With(ctx).Model(&model.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"password":   digest,
		"updated_by": storage.Operator(ctx),
	})
	if err := query.Error; err != nil {
		return dbError(err)
	}
	if query.RowsAffected == 0 {
		return errors.WithStack(code.ErrUserNotFound)
	}
	return nil
}

func (u user) ReplaceRoles(ctx context.Context, id uint64, roleIDs []uint64) error {
	return u.With(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&model.UserRole{}).Error; err != nil {
			return dbError(err)
		}
		if len(roleIDs) == 0 {
			return nil
		}
		rows := make([]*model.UserRole, 0, len(roleIDs))
		for _, roleID := range roleIDs {
			rows = append(rows, &model.UserRole{UserID: id, RoleID: roleID})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return dbError(err)
		}
		return nil
	})
}
