package ctxw

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"rbac-admin/pkg/token"
)

func TestClaims(t *testing.T) {
	ctx := context.Background()
	assert.Zero(t, GetUserID(ctx))
	assert.Empty(t, GetUsername(ctx))

	ctx = SetClaims(ctx, &token.Claims{UserID: 7, Username: "alice"})
	assert.Equal(t, uint64(7), GetUserID(ctx))
	assert.Equal(t, "alice", GetUsername(ctx))

	_, ok := GetClaims(SetClaims(context.Background(), nil))
	assert.False(t, ok)
}
