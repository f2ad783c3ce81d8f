package service

import (
	"rbac-admin/internal/service/auth"
	"rbac-admin/internal/service/authorize"
	"rbac-admin/internal/service/permission"
	"rbac-admin/internal/service/role"
	"rbac-admin/internal/service/user"
	"rbac-admin/internal/session"
	"rbac-admin/internal/store"
	"rbac-admin/pkg/cache"
)

type Service interface {
	Users() user.UserSrv
	Roles() role.RoleSrv
	Permissions() permission.PermissionSrv
	Authorize() authorize.AuthorizeSrv
	Auth() auth.AuthSrv
}

type option struct {
	userOpts []user.Option
	authOpts []auth.Option
}

type Option func(*option)

// WithUserOptions 用户服务的配置
func WithUserOptions(opts ...user.Option) Option {
	return func(o *option) {
		o.userOpts = append(o.userOpts, opts...)
	}
}

// WithAuthOptions 登录服务的配置
func WithAuthOptions(opts ...auth.Option) Option {
	return func(o *option) {
		o.authOpts = append(o.authOpts, opts...)
	}
}

func NewService(s store.Store, c cache.Cache, sessions *session.Manager, opts ...Option) Service {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	authorizer := authorize.NewAuthorizeSrv(s)
	return &service{
		users:       user.NewUserSrv(s, sessions, o.userOpts...),
		roles:       role.NewRoleSrv(s, c),
		permissions: permission.NewPermissionSrv(s),
		authorizer:  authorizer,
		auth:        auth.NewAuthSrv(s, sessions, authorizer, o.authOpts...),
	}
}

type service struct {
	users       user.UserSrv
	roles       role.RoleSrv
	permissions permission.PermissionSrv
	authorizer  authorize.AuthorizeSrv
	auth        auth.AuthSrv
}

func (s *service) Users() user.UserSrv {
	return s.users
}

func (s *service) Roles() role.RoleSrv {
	return s.roles
}

func (s *service) Permissions() permission.PermissionSrv {
	return s.permissions
}

func (s *service) Authorize() authorize.AuthorizeSrv {
	return s.authorizer
}

func (s *service) Auth() auth.AuthSrv {
	return s.auth
}
