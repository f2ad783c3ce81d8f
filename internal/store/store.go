package store

import "context"

// Store defines the rbac storage interface.
type Store interface {
	Users() UserStore
	Roles() RoleStore
	Permissions() PermissionStore
	// Transaction 在同一事务中执行fn,fn返回错误时回滚
	Transaction(ctx context.Context, fn func(Store) error) error
}
