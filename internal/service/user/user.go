package user

import (
	"context"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"

	"rbac-admin/internal/code"
	"rbac-admin/internal/model"
	"rbac-admin/internal/request"
	"rbac-admin/internal/response"
	"rbac-admin/internal/session"
	"rbac-admin/internal/store"
	pkgcode "rbac-admin/pkg/code"
	"rbac-admin/pkg/idx"
	"rbac-admin/pkg/logger"
	"rbac-admin/pkg/password"
)

type UserSrv interface {
	// Create 返回新用户id与只展示一次的临时密码
	Create(ctx context.Context, req *request.CreateUserReq) (*response.CreateUserRes, error)
	Update(ctx context.Context, id uint64, req *request.UpdateUserReq) error
	Delete(ctx context.Context, id uint64) error
	Get(ctx context.Context, id uint64) (*response.User, error)
	List(ctx context.Context, req *request.ListUserReq) (*response.ListUserRes, error)
	AssignRoles(ctx context.Context, id uint64, roleIDs idx.IDs) error
	ResetPassword(ctx context.Context, id uint64) (*response.ResetPasswordRes, error)
	ChangePassword(ctx context.Context, id uint64, req *request.ChangePasswordReq) error
}

func NewUserSrv(store store.Store, sessions *session.Manager, opts ...Option) UserSrv {
	return userSrv{
		store:    store,
		sessions: sessions,
		option:   newOption(opts...),
	}
}

type userSrv struct {
	store    store.Store
	sessions *session.Manager
	option
}

func (u userSrv) Create(ctx context.Context, req *request.CreateUserReq) (*response.CreateUserRes, error) {
	plain, digest, err := u.newPassword()
	if err != nil {
		return nil, err
	}
	obj := &model.User{
		Username: req.Username,
		Password: digest,
		Nickname: req.Nickname,
		Email:    nullable(req.Email),
		Phone:    nullable(req.Phone),
		Status:   model.UserStatusNormal,
		Gender:   req.Gender,
		Avatar:   req.Avatar,
		Remark:   req.Remark,
	}
	if req.Status != nil {
		obj.Status = *req.Status
	}
	if err = u.store.Users().Create(ctx, obj); err != nil {
		logger.From(ctx).Error("failed to create user", zap.String("username", req.Username), zap.Error(err))
		return nil, err
	}
	return &response.CreateUserRes{ID: obj.ID, Password: plain}, nil
}

// Update 状态改为非正常时吊销会话
func (u userSrv) Update(ctx context.Context, id uint64, req *request.UpdateUserReq) error {
	obj, err := u.store.Users().Get(ctx, id)
	if err != nil {
		return err
	}
	values := make(map[string]interface{})
	if req.Nickname != nil {
		values["nickname"] = *req.Nickname
	}
	if req.Email != nil {
		values["email"] = nullable(*req.Email)
	}
	if req.Phone != nil {
		values["phone"] = nullable(*req.Phone)
	}
	if req.Gender != nil {
		values["gender"] = *req.Gender
	}
	if req.Avatar != nil {
		values["avatar"] = *req.Avatar
	}
	if req.Status != nil {
		values["status"] = *req.Status
	}
	if req.Remark != nil {
		values["remark"] = *req.Remark
	}
	if len(values) == 0 {
		return nil
	}
	if err = u.store.Users().Update(ctx, id, values); err != nil {
		return err
	}
	if req.Status != nil && *req.Status != model.UserStatusNormal {
		u.revoke(ctx, obj)
	}
	return nil
}

// Delete 软删除并吊销会话
func (u userSrv) Delete(ctx context.Context, id uint64) error {
	obj, err := u.store.Users().Get(ctx, id)
	if err != nil {
		return err
	}
	if err = u.store.Users().Delete(ctx, id); err != nil {
		return err
	}
	u.revoke(ctx, obj)
	return nil
}

func (u userSrv) Get(ctx context.Context, id uint64) (*response.User, error) {
	obj, err := u.store.Users().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	roles, err := u.store.Roles().ListByUsers(ctx, []uint64{id}, nil)
	if err != nil {
		return nil, err
	}
	return &response.User{User: obj, Roles: response.NewRoleBriefs(roles[id])}, nil
}

func (u userSrv) List(ctx context.Context, req *request.ListUserReq) (*response.ListUserRes, error) {
	users, err := u.store.Users().List(ctx, req)
	if err != nil {
		logger.From(ctx).Error("failed to list users", zap.Any("param", req), zap.Error(err))
		return nil, err
	}
	ids := make([]uint64, 0, len(users))
	for _, obj := range users {
		ids = append(ids, obj.ID)
	}
	roles, err := u.store.Roles().ListByUsers(ctx, ids, nil)
	if err != nil {
		return nil, err
	}
	result := &response.ListUserRes{
		Pagination: req.Pagination,
		List:       make([]*response.User, 0, len(users)),
	}
	for _, obj := range users {
		result.List = append(result.List, &response.User{User: obj, Roles: response.NewRoleBriefs(roles[obj.ID])})
	}
	return result, nil
}

// AssignRoles 全量替换,所有id必须指向未删除的角色
func (u userSrv) AssignRoles(ctx context.Context, id uint64, roleIDs idx.IDs) error {
	if _, err := u.store.Users().Get(ctx, id); err != nil {
		return err
	}
	roleIDs = roleIDs.Unique()
	live, err := u.store.Roles().CountLive(ctx, roleIDs)
	if err != nil {
		return err
	}
	if live != int64(len(roleIDs)) {
		return pkgerrors.WithStack(code.ErrRoleNotFound)
	}
	return u.store.Transaction(ctx, func(tx store.Store) error {
		return tx.Users().ReplaceRoles(ctx, id, roleIDs)
	})
}

// ResetPassword 生成新的临时密码并吊销会话
func (u userSrv) ResetPassword(ctx context.Context, id uint64) (*response.ResetPasswordRes, error) {
	obj, err := u.store.Users().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	plain, digest, err := u.newPassword()
	if err != nil {
		return nil, err
	}
	if err = u.store.Users().UpdatePassword(ctx, id, digest); err != nil {
		return nil, err
	}
	u.revoke(ctx, obj)
	return &response.ResetPasswordRes{Password: plain}, nil
}

// ChangePassword 校验旧密码,修改后需要重新登录
func (u userSrv) ChangePassword(ctx context.Context, id uint64, req *request.ChangePasswordReq) error {
	obj, err := u.store.Users().Get(ctx, id)
	if err != nil {
		return err
	}
	if obj.Password == "" {
		return pkgerrors.WithStack(code.ErrPasswordNotSet)
	}
	if err = password.Compare(obj.Password, req.OldPassword); err != nil {
		return pkgerrors.Wrap(code.ErrOldPasswordMismatch, err.Error())
	}
	digest, err := password.Hash(req.NewPassword, u.passwordCost)
	if err != nil {
		return pkgerrors.Wrap(pkgcode.ErrInternalServerError, err.Error())
	}
	if err = u.store.Users().UpdatePassword(ctx, id, digest); err != nil {
		return err
	}
	u.revoke(ctx, obj)
	return nil
}

func (u userSrv) newPassword() (string, string, error) {
	plain, err := password.Generate(u.passwordLength)
	if err != nil {
		return "", "", pkgerrors.Wrap(pkgcode.ErrInternalServerError, err.Error())
	}
	digest, err := password.Hash(plain, u.passwordCost)
	if err != nil {
		return "", "", pkgerrors.Wrap(pkgcode.ErrInternalServerError, err.Error())
	}
	return plain, digest, nil
}

// revoke 缓存不可用时会话校验同样失败,这里只记录日志
func (u userSrv) revoke(ctx context.Context, obj *model.User) {
	identity := session.Identity{UserID: obj.ID, Username: obj.Username}
	if err := u.sessions.Revoke(ctx, identity); err != nil {
		logger.From(ctx).Error("failed to revoke session", zap.String("key", identity.Key()), zap.Error(err))
	}
}

func nullable(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
