package mysql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rbac-admin/internal/code"
	"rbac-admin/internal/model"
	"rbac-admin/internal/request"
	"rbac-admin/internal/store"
	"rbac-admin/internal/testutil"
	pkgcode "rbac-admin/pkg/code"
)

func strPtr(s string) *string {
	return &s
}

func newUser(t *testing.T, s store.Store, username string) *model.User {
	t.Helper()
	obj := &model.User{Username: username, Nickname: username, Status: model.UserStatusNormal}
	require.NoError(t, s.Users().Create(context.Background(), obj))
	return obj
}

func newRole(t *testing.T, s store.Store, name string, status model.RoleStatus) *model.Role {
	t.Helper()
	obj := &model.Role{Name: name, Key: name, Status: status}
	require.NoError(t, s.Roles().Create(context.Background(), obj))
	return obj
}

func TestUserUniqueConflict(t *testing.T) {
	ctx := context.Background()
	s := testutil.OpenStore(t)
	newUser(t, s, "alice")

	err := s.Users().Create(ctx, &model.User{Username: "alice"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, code.ErrUsernameExists))
	assert.Contains(t, pkgcode.From(err).Message(), "username")

	require.NoError(t, s.Users().Create(ctx, &model.User{Username: "bob", Email: strPtr("a@b.c")}))
	err = s.Users().Create(ctx, &model.User{Username: "carol", Email: strPtr("a@b.c")})
	assert.True(t, errors.Is(err, code.ErrEmailExists))

	// email为NULL时不冲突
	require.NoError(t, s.Users().Create(ctx, &model.User{Username: "dave"}))
}

func TestUserSoftDelete(t *testing.T) {
	ctx := context.Background()
	s := testutil.OpenStore(t)
	u := newUser(t, s, "alice")
	r := newRole(t, s, "admin", model.RoleStatusNormal)
	require.NoError(t, s.Users().ReplaceRoles(ctx, u.ID, []uint64{r.ID}))

	require.NoError(t, s.Users().Delete(ctx, u.ID))
	_, err := s.Users().Get(ctx, u.ID)
	assert.True(t, errors.Is(err, code.ErrUserNotFound))
	assert.True(t, errors.Is(s.Users().Delete(ctx, u.ID), code.ErrUserNotFound))

	users, err := s.Users().List(ctx, &request.ListUserReq{})
	require.NoError(t, err)
	assert.Empty(t, users)

	// 删除后用户名可以再次使用
	again := newUser(t, s, "alice")
	assert.NotEqual(t, u.ID, again.ID)

	count, err := s.Roles().CountUsers(ctx, r.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGetActiveByUsername(t *testing.T) {
	ctx := context.Background()
	s := testutil.OpenStore(t)
	u := newUser(t, s, "alice")

	got, err := s.Users().GetActiveByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	require.NoError(t, s.Users().Update(ctx, u.ID, map[string]interface{}{"status": model.UserStatusLocked}))
	_, err = s.Users().GetActiveByUsername(ctx, "alice")
	assert.True(t, errors.Is(err, code.ErrLoginUserNotFound))
}

func TestUserList(t *testing.T) {
	ctx := context.Background()
	s := testutil.OpenStore(t)
	alice := newUser(t, s, "alice")
	newUser(t, s, "albert")
	newUser(t, s, "bob")
	newUser(t, s, "al_x")
	r := newRole(t, s, "admin", model.RoleStatusNormal)
	require.NoError(t, s.Users().ReplaceRoles(ctx, alice.ID, []uint64{r.ID}))

	tests := []struct {
		name string
		req  request.ListUserReq
		want []string
	}{
		{name: "contains", req: request.ListUserReq{Username: "al"}, want: []string{"al_x", "albert", "alice"}},
		{name: "escape underscore", req: request.ListUserReq{Username: "l_"}, want: []string{"al_x"}},
		{name: "role", req: request.ListUserReq{RoleID: r.ID}, want: []string{"alice"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			users, err := s.Users().List(ctx, &req)
			require.NoError(t, err)
			names := make([]string, 0, len(users))
			for _, u := range users {
				names = append(names, u.Username)
			}
			assert.ElementsMatch(t, tt.want, names)
			assert.Equal(t, int64(len(tt.want)), req.Total)
		})
	}
}

func TestRoleConflict(t *testing.T) {
	ctx := context.Background()
	s := testutil.OpenStore(t)
	newRole(t, s, "admin", model.RoleStatusNormal)

	err := s.Roles().Create(ctx, &model.Role{Name: "admin", Key: "other"})
	assert.True(t, errors.Is(err, code.ErrRoleNameExists))
	err = s.Roles().Create(ctx, &model.Role{Name: "other", Key: "admin"})
	assert.True(t, errors.Is(err, code.ErrRoleKeyExists))
}

func TestRolePermissions(t *testing.T) {
	ctx := context.Background()
	s := testutil.OpenStore(t)
	r := newRole(t, s, "admin", model.RoleStatusNormal)
	p1 := &model.Permission{Name: "system", Path: "/system"}
	p2 := &model.Permission{Name: "users", Path: "/system/users", OrderNum: 1}
	require.NoError(t, s.Permissions().Create(ctx, p1))
	p2.ParentID = p1.ID
	require.NoError(t, s.Permissions().Create(ctx, p2))

	require.NoError(t, s.Roles().ReplacePermissions(ctx, r.ID, []uint64{p1.ID, p2.ID}))
	ids, err := s.Roles().PermissionIDs(ctx, r.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{p1.ID, p2.ID}, ids)

	require.NoError(t, s.Roles().ReplacePermissions(ctx, r.ID, []uint64{p2.ID}))
	ids, err = s.Roles().PermissionIDs(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{p2.ID}, ids)

	count, err := s.Permissions().CountChildren(ctx, p1.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, s.Permissions().Delete(ctx, p2.ID))
	ids, err = s.Roles().PermissionIDs(ctx, r.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
	live, err := s.Permissions().CountLive(ctx, []uint64{p1.ID, p2.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), live)
}

func TestListByUsers(t *testing.T) {
	ctx := context.Background()
	s := testutil.OpenStore(t)
	u := newUser(t, s, "alice")
	normal := newRole(t, s, "normal", model.RoleStatusNormal)
	disabled := newRole(t, s, "disabled", model.RoleStatusDisabled)
	require.NoError(t, s.Users().ReplaceRoles(ctx, u.ID, []uint64{normal.ID, disabled.ID}))

	all, err := s.Roles().ListByUsers(ctx, []uint64{u.ID}, nil)
	require.NoError(t, err)
	assert.Len(t, all[u.ID], 2)

	status := model.RoleStatusNormal
	active, err := s.Roles().ListByUsers(ctx, []uint64{u.ID}, &status)
	require.NoError(t, err)
	require.Len(t, active[u.ID], 1)
	assert.Equal(t, normal.ID, active[u.ID][0].ID)
}

func TestPermissionCodeConflict(t *testing.T) {
	ctx := context.Background()
	s := testutil.OpenStore(t)
	require.NoError(t, s.Permissions().Create(ctx, &model.Permission{Name: "a", Code: strPtr("system:user:add")}))
	err := s.Permissions().Create(ctx, &model.Permission{Name: "b", Code: strPtr("system:user:add")})
	assert.True(t, errors.Is(err, code.ErrPermissionCodeExists))
	// 按钮以外的节点不设置code
	require.NoError(t, s.Permissions().Create(ctx, &model.Permission{Name: "c"}))
	require.NoError(t, s.Permissions().Create(ctx, &model.Permission{Name: "d"}))
}

func TestTransactionRollback(t *testing.T) {
	ctx := context.Background()
	s := testutil.OpenStore(t)
	err := s.Transaction(ctx, func(tx store.Store) error {
		if err := tx.Users().Create(ctx, &model.User{Username: "alice"}); err != nil {
			return err
		}
		return errors.New("abort")
	})
	require.EqualError(t, err, "abort")
	users, err := s.Users().List(ctx, &request.ListUserReq{})
	require.NoError(t, err)
	assert.Empty(t, users)
}
