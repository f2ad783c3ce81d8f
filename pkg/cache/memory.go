package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// NewMemory 进程内缓存,仅适用于单实例部署
func NewMemory(cleanupInterval time.Duration) Cache {
	return &memoryCache{store: gocache.New(gocache.NoExpiration, cleanupInterval)}
}

type memoryCache struct {
	store *gocache.Cache
}

func expiration(d time.Duration) time.Duration {
	if d <= 0 {
		return gocache.NoExpiration
	}
	return d
}

func (c *memoryCache) Get(_ context.Context, key string) (string, error) {
	value, ok := c.store.Get(key)
	if !ok {
		return "", ErrNil
	}
	s, _ := value.(string)
	return s, nil
}

func (c *memoryCache) Set(_ context.Context, key, value string, d time.Duration) error {
	c.store.Set(key, value, expiration(d))
	return nil
}

func (c *memoryCache) SetNX(_ context.Context, key, value string, d time.Duration) (bool, error) {
	// Add 在key已存在且未过期时返回错误
	if err := c.store.Add(key, value, expiration(d)); err != nil {
		return false, nil
	}
	return true, nil
}

func (c *memoryCache) TTL(_ context.Context, key string) (time.Duration, error) {
	_, expireAt, ok := c.store.GetWithExpiration(key)
	if !ok {
		return 0, ErrNil
	}
	if expireAt.IsZero() {
		return 0, nil
	}
	return time.Until(expireAt), nil
}

func (c *memoryCache) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		c.store.Delete(key)
	}
	return nil
}
