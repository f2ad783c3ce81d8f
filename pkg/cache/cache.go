//go:generate mockgen -destination=mock/cache.go -package=mock rbac-admin/pkg/cache Cache

package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNil key不存在或已过期
var ErrNil = errors.New("cache: nil")

// Cache 键值缓存,expiration为0表示永不过期
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, expiration time.Duration) error
	// SetNX key不存在时写入,返回是否写入成功
	SetNX(ctx context.Context, key, value string, expiration time.Duration) (bool, error)
	TTL(ctx context.Context, key string) (time.Duration, error)
	Del(ctx context.Context, keys ...string) error
}

const (
	DriverRedis  = "redis"
	DriverMemory = "memory"
)
