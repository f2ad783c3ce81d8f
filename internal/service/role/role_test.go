package role

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rbac-admin/internal/code"
	"rbac-admin/internal/model"
	"rbac-admin/internal/request"
	"rbac-admin/internal/store"
	"rbac-admin/internal/testutil"
	"rbac-admin/pkg/cache"
	"rbac-admin/pkg/idx"
)

func setup(t *testing.T) (RoleSrv, store.Store, cache.Cache) {
	s := testutil.OpenStore(t)
	c := cache.NewMemory(time.Minute)
	return NewRoleSrv(s, c), s, c
}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	srv, _, c := setup(t)

	id, err := srv.Create(ctx, &request.CreateRoleReq{Name: "admin", Key: "admin", Sort: 1})
	require.NoError(t, err)

	got, err := srv.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Name)
	assert.Equal(t, model.RoleStatusNormal, got.Status)
	assert.NotNil(t, got.PermissionIDs)

	cached, err := c.Get(ctx, cacheKey(id))
	require.NoError(t, err)
	assert.Contains(t, cached, `"key":"admin"`)

	// 写操作使缓存失效
	name := "administrator"
	require.NoError(t, srv.Update(ctx, id, &request.UpdateRoleReq{Name: &name}))
	_, err = c.Get(ctx, cacheKey(id))
	assert.True(t, errors.Is(err, cache.ErrNil))
	got, err = srv.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "administrator", got.Name)

	_, err = srv.Create(ctx, &request.CreateRoleReq{Name: "administrator", Key: "other"})
	assert.True(t, errors.Is(err, code.ErrRoleNameExists))

	_, err = srv.Get(ctx, 404)
	assert.True(t, errors.Is(err, code.ErrRoleNotFound))
}

func TestDeleteRoleInUse(t *testing.T) {
	ctx := context.Background()
	srv, s, _ := setup(t)
	id, err := srv.Create(ctx, &request.CreateRoleReq{Name: "admin", Key: "admin"})
	require.NoError(t, err)

	u := &model.User{Username: "alice", Status: model.UserStatusNormal}
	require.NoError(t, s.Users().Create(ctx, u))
	require.NoError(t, s.Users().ReplaceRoles(ctx, u.ID, []uint64{id}))

	err = srv.Delete(ctx, id)
	assert.True(t, errors.Is(err, code.ErrRoleInUse))

	// 被持有的角色仍然可以修改
	disabled := model.RoleStatusDisabled
	require.NoError(t, srv.Update(ctx, id, &request.UpdateRoleReq{Status: &disabled}))

	// 用户删除后角色不再被占用
	require.NoError(t, s.Users().Delete(ctx, u.ID))
	require.NoError(t, srv.Delete(ctx, id))
	_, err = srv.Get(ctx, id)
	assert.True(t, errors.Is(err, code.ErrRoleNotFound))
	assert.True(t, errors.Is(srv.Delete(ctx, id), code.ErrRoleNotFound))
}

func TestAssignPermissions(t *testing.T) {
	ctx := context.Background()
	srv, s, _ := setup(t)
	id, err := srv.Create(ctx, &request.CreateRoleReq{Name: "admin", Key: "admin"})
	require.NoError(t, err)
	p1 := &model.Permission{Name: "a"}
	p2 := &model.Permission{Name: "b"}
	require.NoError(t, s.Permissions().Create(ctx, p1))
	require.NoError(t, s.Permissions().Create(ctx, p2))

	require.NoError(t, srv.AssignPermissions(ctx, id, idx.IDs{p1.ID, p2.ID, p1.ID}))
	got, err := srv.Get(ctx, id)
	require.NoError(t, err)
	assert.ElementsMatch(t, idx.IDs{p1.ID, p2.ID}, got.PermissionIDs)

	err = srv.AssignPermissions(ctx, id, idx.IDs{p1.ID, 999})
	assert.True(t, errors.Is(err, code.ErrPermissionNotFound))
	got, err = srv.Get(ctx, id)
	require.NoError(t, err)
	assert.Len(t, got.PermissionIDs, 2)

	require.NoError(t, srv.AssignPermissions(ctx, id, idx.IDs{}))
	got, err = srv.Get(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, got.PermissionIDs)
}

func TestListAndAll(t *testing.T) {
	ctx := context.Background()
	srv, _, _ := setup(t)
	for _, name := range []string{"admin", "auditor", "user"} {
		_, err := srv.Create(ctx, &request.CreateRoleReq{Name: name, Key: "k_" + name})
		require.NoError(t, err)
	}

	res, err := srv.List(ctx, &request.ListRoleReq{Keyword: "a"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Total)
	assert.Len(t, res.List, 2)

	res, err = srv.List(ctx, &request.ListRoleReq{Keyword: "k_user"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Total)

	all, err := srv.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
