package role

import (
	"context"
	"errors"
	"fmt"
	"time"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"

	"rbac-admin/internal/code"
	"rbac-admin/internal/model"
	"rbac-admin/internal/request"
	"rbac-admin/internal/response"
	"rbac-admin/internal/store"
	"rbac-admin/pkg/cache"
	"rbac-admin/pkg/idx"
	"rbac-admin/pkg/json"
	"rbac-admin/pkg/logger"
)

// detailExpiration 角色详情缓存时间
const detailExpiration = 30 * time.Minute

type RoleSrv interface {
	Create(ctx context.Context, req *request.CreateRoleReq) (uint64, error)
	Update(ctx context.Context, id uint64, req *request.UpdateRoleReq) error
	Delete(ctx context.Context, id uint64) error
	Get(ctx context.Context, id uint64) (*response.Role, error)
	List(ctx context.Context, req *request.ListRoleReq) (*response.ListRoleRes, error)
	All(ctx context.Context) ([]*model.Role, error)
	AssignPermissions(ctx context.Context, id uint64, permissionIDs idx.IDs) error
}

func NewRoleSrv(store store.Store, c cache.Cache) RoleSrv {
	return roleSrv{
		store: store,
		cache: c,
	}
}

type roleSrv struct {
	store store.Store
	cache cache.Cache
}

func cacheKey(id uint64) string {
	return fmt.Sprintf("role:%d", id)
}

func (r roleSrv) Create(ctx context.Context, req *request.CreateRoleReq) (uint64, error) {
	obj := &model.Role{
		Name:   req.Name,
		Key:    req.Key,
		Status: model.RoleStatusNormal,
		Sort:   req.Sort,
		Remark: req.Remark,
	}
	if req.Status != nil {
		obj.Status = *req.Status
	}
	if err := r.store.Roles().Create(ctx, obj); err != nil {
		logger.From(ctx).Error("failed to create role", zap.Any("param", req), zap.Error(err))
		return 0, err
	}
	return obj.ID, nil
}

func (r roleSrv) Update(ctx context.Context, id uint64, req *request.UpdateRoleReq) error {
	if _, err := r.store.Roles().Get(ctx, id); err != nil {
		return err
	}
	values := make(map[string]interface{})
	if req.Name != nil {
		values["name"] = *req.Name
	}
	if req.Key != nil {
		values["role_key"] = *req.Key
	}
	if req.Status != nil {
		values["status"] = *req.Status
	}
	if req.Sort != nil {
		values["sort"] = *req.Sort
	}
	if req.Remark != nil {
		values["remark"] = *req.Remark
	}
	if len(values) == 0 {
		return nil
	}
	if err := r.store.Roles().Update(ctx, id, values); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

// Delete 仍有未删除用户持有该角色时拒绝删除
func (r roleSrv) Delete(ctx context.Context, id uint64) error {
	if _, err := r.store.Roles().Get(ctx, id); err != nil {
		return err
	}
	holders, err := r.store.Roles().CountUsers(ctx, id)
	if err != nil {
		return err
	}
	if holders > 0 {
		return pkgerrors.WithStack(code.ErrRoleInUse.WithResult(map[string]int64{"users": holders}))
	}
	if err = r.store.Roles().Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r roleSrv) Get(ctx context.Context, id uint64) (*response.Role, error) {
	obj, err := r.detail(ctx, id)
	if err != nil {
		return nil, err
	}
	permissionIDs, err := r.store.Roles().PermissionIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	return &response.Role{Role: obj, PermissionIDs: permissionIDs}, nil
}

// detail 先读缓存,未命中时读库并回写
func (r roleSrv) detail(ctx context.Context, id uint64) (*model.Role, error) {
	key := cacheKey(id)
	value, err := r.cache.Get(ctx, key)
	if err == nil {
		var obj model.Role
		if err = json.UnmarshalFromString(value, &obj); err == nil {
			return &obj, nil
		}
		logger.From(ctx).Warn("broken role cache", zap.String("key", key), zap.Error(err))
	} else if !errors.Is(err, cache.ErrNil) {
		logger.From(ctx).Warn("failed to read role cache", zap.String("key", key), zap.Error(err))
	}

	obj, err := r.store.Roles().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if value, err = json.MarshalToString(obj); err == nil {
		err = r.cache.Set(ctx, key, value, detailExpiration)
	}
	if err != nil {
		logger.From(ctx).Warn("failed to write role cache", zap.String("key", key), zap.Error(err))
	}
	return obj, nil
}

func (r roleSrv) invalidate(ctx context.Context, id uint64) {
	if err := r.cache.Del(ctx, cacheKey(id)); err != nil {
		logger.From(ctx).Error("failed to invalidate role cache", zap.Uint64("role_id", id), zap.Error(err))
	}
}

func (r roleSrv) List(ctx context.Context, req *request.ListRoleReq) (*response.ListRoleRes, error) {
	roles, err := r.store.Roles().List(ctx, req)
	if err != nil {
		logger.From(ctx).Error("failed to list roles", zap.Any("param", req), zap.Error(err))
		return nil, err
	}
	if roles == nil {
		roles = make([]*model.Role, 0)
	}
	return &response.ListRoleRes{Pagination: req.Pagination, List: roles}, nil
}

func (r roleSrv) All(ctx context.Context) ([]*model.Role, error) {
	return r.store.Roles().All(ctx)
}

// AssignPermissions 全量替换,所有id必须指向未删除的权限
func (r roleSrv) AssignPermissions(ctx context.Context, id uint64, permissionIDs idx.IDs) error {
	if _, err := r.store.Roles().Get(ctx, id); err != nil {
		return err
	}
	permissionIDs = permissionIDs.Unique()
	live, err := r.store.Permissions().CountLive(ctx, permissionIDs)
	if err != nil {
		return err
	}
	if live != int64(len(permissionIDs)) {
		return pkgerrors.WithStack(code.ErrPermissionNotFound)
	}
	if err = r.store.Transaction(ctx, func(tx store.Store) error {
		return tx.Roles().ReplacePermissions(ctx, id, permissionIDs)
	}); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}
