// Package session 签发、校验与吊销登录会话.
// 每个用户在缓存中只保留最近一次签发的token,后登录者覆盖先登录者.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"

	"rbac-admin/internal/code"
	"rbac-admin/pkg/cache"
	pkgcode "rbac-admin/pkg/code"
	"rbac-admin/pkg/logger"
	"rbac-admin/pkg/token"
	"rbac-admin/pkg/utils/v"
)

// Identity 会话所属用户
type Identity struct {
	UserID   uint64
	Username string
}

// Key 缓存中会话记录的key
func (i Identity) Key() string {
	return fmt.Sprintf("%s&%d", i.Username, i.UserID)
}

// Manager 会话管理
type Manager struct {
	signer *token.Signer
	cache  cache.Cache
}

func NewManager(signer *token.Signer, c cache.Cache) *Manager {
	return &Manager{
		signer: signer,
		cache:  c,
	}
}

// Issue 签发token并写入会话记录,有效期与token一致
func (m *Manager) Issue(ctx context.Context, identity Identity, roleIDs []uint64) (string, *token.Claims, error) {
	signed, claims, err := m.signer.Sign(identity.UserID, identity.Username, roleIDs)
	if err != nil {
		return "", nil, pkgerrors.Wrap(pkgcode.ErrInternalServerError, err.Error())
	}
	if err = m.cache.Set(ctx, identity.Key(), v.BearerPrefix+signed, m.signer.ExpiresIn()); err != nil {
		return "", nil, pkgerrors.Wrap(code.ErrCache, err.Error())
	}
	return signed, claims, nil
}

// Validate 先校验签名与有效期,再要求缓存中的记录与token完全一致
func (m *Manager) Validate(ctx context.Context, tokenString string) (*token.Claims, error) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, v.BearerPrefix))
	if tokenString == "" {
		return nil, pkgerrors.WithStack(code.ErrTokenInvalid)
	}
	claims, err := m.signer.Parse(tokenString)
	if err != nil {
		return nil, pkgerrors.Wrap(code.ErrTokenInvalid, err.Error())
	}
	identity := Identity{UserID: claims.UserID, Username: claims.Username}
	stored, err := m.cache.Get(ctx, identity.Key())
	if err != nil {
		if !errors.Is(err, cache.ErrNil) {
			logger.From(ctx).Error("failed to read session record",
				zap.String("key", identity.Key()), zap.Error(err))
		}
		return nil, pkgerrors.Wrap(code.ErrTokenInvalid, err.Error())
	}
	if stored != v.BearerPrefix+tokenString {
		return nil, pkgerrors.Wrap(code.ErrTokenInvalid, "token superseded")
	}
	return claims, nil
}

// Revoke 删除会话记录,记录不存在时同样成功
func (m *Manager) Revoke(ctx context.Context, identity Identity) error {
	if err := m.cache.Del(ctx, identity.Key()); err != nil {
		return pkgerrors.Wrap(code.ErrCache, err.Error())
	}
	return nil
}

// ExpiresIn token有效期
func (m *Manager) ExpiresIn() int64 {
	return int64(m.signer.ExpiresIn().Seconds())
}
