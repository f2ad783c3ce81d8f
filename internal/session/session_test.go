package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rbac-admin/internal/code"
	"rbac-admin/pkg/cache"
	"rbac-admin/pkg/cache/mock"
	"rbac-admin/pkg/token"
)

func backends(t *testing.T) map[string]cache.Cache {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return map[string]cache.Cache{
		cache.DriverRedis:  cache.NewRedis(client),
		cache.DriverMemory: cache.NewMemory(time.Minute),
	}
}

func newManager(c cache.Cache) *Manager {
	return NewManager(token.NewSigner("secret", time.Hour, token.WithIssuer("rbac-admin")), c)
}

func TestIssueAndValidate(t *testing.T) {
	for name, c := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			m := newManager(c)
			identity := Identity{UserID: 1, Username: "admin"}

			signed, claims, err := m.Issue(ctx, identity, []uint64{9})
			require.NoError(t, err)
			assert.Equal(t, uint64(1), claims.UserID)

			stored, err := c.Get(ctx, "admin&1")
			require.NoError(t, err)
			assert.Equal(t, "Bearer "+signed, stored)
			ttl, err := c.TTL(ctx, "admin&1")
			require.NoError(t, err)
			assert.InDelta(t, time.Hour.Seconds(), ttl.Seconds(), 5)

			got, err := m.Validate(ctx, signed)
			require.NoError(t, err)
			assert.Equal(t, "admin", got.Username)
			assert.Equal(t, []uint64{9}, got.RoleIDs)

			// 带Bearer前缀同样可以校验
			_, err = m.Validate(ctx, "Bearer "+signed)
			assert.NoError(t, err)
		})
	}
}

func TestSupersession(t *testing.T) {
	for name, c := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			m := newManager(c)
			identity := Identity{UserID: 1, Username: "admin"}

			first, _, err := m.Issue(ctx, identity, nil)
			require.NoError(t, err)
			second, _, err := m.Issue(ctx, identity, nil)
			require.NoError(t, err)
			require.NotEqual(t, first, second)

			_, err = m.Validate(ctx, first)
			assert.True(t, errors.Is(err, code.ErrTokenInvalid))
			_, err = m.Validate(ctx, second)
			assert.NoError(t, err)
		})
	}
}

func TestRevoke(t *testing.T) {
	for name, c := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			m := newManager(c)
			identity := Identity{UserID: 1, Username: "admin"}

			signed, _, err := m.Issue(ctx, identity, nil)
			require.NoError(t, err)
			require.NoError(t, m.Revoke(ctx, identity))
			require.NoError(t, m.Revoke(ctx, identity))

			_, err = m.Validate(ctx, signed)
			assert.True(t, errors.Is(err, code.ErrTokenInvalid))
		})
	}
}

func TestValidateRejectsBadTokens(t *testing.T) {
	ctx := context.Background()
	m := newManager(cache.NewMemory(time.Minute))
	other := NewManager(token.NewSigner("other", time.Hour), cache.NewMemory(time.Minute))
	forged, _, err := other.Issue(ctx, Identity{UserID: 1, Username: "admin"}, nil)
	require.NoError(t, err)

	for _, tokenString := range []string{"", "Bearer ", "garbage", forged} {
		_, err := m.Validate(ctx, tokenString)
		assert.True(t, errors.Is(err, code.ErrTokenInvalid), tokenString)
	}
}

func TestValidateCacheFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	c := mock.NewMockCache(ctrl)
	m := newManager(c)

	c.EXPECT().Set(gomock.Any(), "admin&1", gomock.Any(), time.Hour).Return(nil)
	signed, _, err := m.Issue(ctx, Identity{UserID: 1, Username: "admin"}, nil)
	require.NoError(t, err)

	c.EXPECT().Get(gomock.Any(), "admin&1").Return("", errors.New("connection refused"))
	_, err = m.Validate(ctx, signed)
	assert.True(t, errors.Is(err, code.ErrTokenInvalid))

	c.EXPECT().Del(gomock.Any(), "admin&1").Return(errors.New("connection refused"))
	err = m.Revoke(ctx, Identity{UserID: 1, Username: "admin"})
	assert.True(t, errors.Is(err, code.ErrCache))
}

func TestIssueCacheFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewMockCache(ctrl)
	c.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("down"))
	_, _, err := newManager(c).Issue(context.Background(), Identity{UserID: 1, Username: "admin"}, nil)
	assert.True(t, errors.Is(err, code.ErrCache))
}
