package auth

import (
	"context"
	"errors"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"

	"rbac-admin/internal/code"
	"rbac-admin/internal/model"
	"rbac-admin/internal/request"
	"rbac-admin/internal/response"
	"rbac-admin/internal/service/authorize"
	"rbac-admin/internal/session"
	"rbac-admin/internal/store"
	"rbac-admin/pkg/logger"
	"rbac-admin/pkg/password"
	"rbac-admin/pkg/prometheus"
	"rbac-admin/pkg/utils/v"
)

type AuthSrv interface {
	Login(ctx context.Context, req *request.LoginReq) (*response.LoginRes, error)
	Logout(ctx context.Context, identity session.Identity) error
	Profile(ctx context.Context, userID uint64) (*response.Profile, error)
}

type Option func(*authSrv)

// WithHideFailureReason 登录失败时统一返回用户名或密码错误
func WithHideFailureReason(hide bool) Option {
	return func(a *authSrv) {
		a.hideFailureReason = hide
	}
}

func NewAuthSrv(store store.Store, sessions *session.Manager, authorizer authorize.AuthorizeSrv, opts ...Option) AuthSrv {
	a := &authSrv{
		store:      store,
		sessions:   sessions,
		authorizer: authorizer,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

type authSrv struct {
	store             store.Store
	sessions          *session.Manager
	authorizer        authorize.AuthorizeSrv
	hideFailureReason bool
}

func (a *authSrv) Login(ctx context.Context, req *request.LoginReq) (*response.LoginRes, error) {
	obj, err := a.authenticate(ctx, req)
	if err != nil {
		prometheus.LoginCounterVec.WithLabelValues("failure").Inc()
		logger.From(ctx).Info("login failed", zap.String("username", req.Username), zap.Error(err))
		if a.hideFailureReason && !errors.Is(err, code.ErrDatabase) {
			return nil, pkgerrors.WithStack(code.ErrIncorrectPassword)
		}
		return nil, err
	}
	status := model.RoleStatusNormal
	roles, err := a.store.Roles().ListByUsers(ctx, []uint64{obj.ID}, &status)
	if err != nil {
		return nil, err
	}
	roleIDs := make([]uint64, 0, len(roles[obj.ID]))
	for _, role := range roles[obj.ID] {
		roleIDs = append(roleIDs, role.ID)
	}
	signed, _, err := a.sessions.Issue(ctx, session.Identity{UserID: obj.ID, Username: obj.Username}, roleIDs)
	if err != nil {
		return nil, err
	}
	prometheus.LoginCounterVec.WithLabelValues("success").Inc()
	logger.From(ctx).Info("login succeeded", zap.Uint64("user_id", obj.ID), zap.String("username", obj.Username))
	return &response.LoginRes{
		AccessToken: signed,
		TokenType:   strings.TrimSpace(v.BearerPrefix),
		ExpiresIn:   a.sessions.ExpiresIn(),
	}, nil
}

// authenticate 只有状态正常的未删除用户可以登录
func (a *authSrv) authenticate(ctx context.Context, req *request.LoginReq) (*model.User, error) {
	obj, err := a.store.Users().GetActiveByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if obj.Password == "" {
		return nil, pkgerrors.WithStack(code.ErrPasswordNotSet)
	}
	if err = password.Compare(obj.Password, req.Password); err != nil {
		return nil, pkgerrors.Wrap(code.ErrIncorrectPassword, err.Error())
	}
	return obj, nil
}

func (a *authSrv) Logout(ctx context.Context, identity session.Identity) error {
	return a.sessions.Revoke(ctx, identity)
}

func (a *authSrv) Profile(ctx context.Context, userID uint64) (*response.Profile, error) {
	obj, err := a.store.Users().Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	resolved, err := a.authorizer.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &response.Profile{
		User:    &response.User{User: obj, Roles: resolved.Roles},
		Menus:   resolved.Menus,
		Buttons: resolved.Buttons,
	}, nil
}
