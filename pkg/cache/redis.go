package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// NewRedis 基于redis的缓存,多实例部署时共享会话
func NewRedis(client redis.UniversalClient) Cache {
	return &redisCache{store: client}
}

type redisCache struct {
	store redis.UniversalClient
}

func (c *redisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.store.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNil
		}
		return "", err
	}
	return value, nil
}

func (c *redisCache) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	return c.store.Set(ctx, key, value, expiration).Err()
}

func (c *redisCache) SetNX(ctx context.Context, key, value string, expiration time.Duration) (bool, error) {
	return c.store.SetNX(ctx, key, value, expiration).Result()
}

func (c *redisCache) TTL(ctx context.Context, key string) (time.Duration, error) {
	expiration, err := c.store.PTTL(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	// -2 key不存在, -1 未设置过期时间
	switch expiration {
	case -2 * time.Nanosecond, -2 * time.Millisecond:
		return 0, ErrNil
	case -1 * time.Nanosecond, -1 * time.Millisecond:
		return 0, nil
	}
	return expiration, nil
}

func (c *redisCache) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.store.Del(ctx, keys...).Err()
}
