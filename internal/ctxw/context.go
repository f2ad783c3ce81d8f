package ctxw

import (
	"context"

	"rbac-admin/pkg/token"
)

type claimsKey struct{}

// SetClaims Add the authenticated token claims to context.Context.
func SetClaims(ctx context.Context, claims *token.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// GetClaims Get the authenticated token claims from context.Context.
func GetClaims(ctx context.Context) (*token.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*token.Claims)
	return claims, ok && claims != nil
}

// GetUserID 当前登录用户id,匿名请求返回0
func GetUserID(ctx context.Context) uint64 {
	if claims, ok := GetClaims(ctx); ok {
		return claims.UserID
	}
	return 0
}

// GetUsername 当前登录用户名
func GetUsername(ctx context.Context) string {
	if claims, ok := GetClaims(ctx); ok {
		return claims.Username
	}
	return ""
}
