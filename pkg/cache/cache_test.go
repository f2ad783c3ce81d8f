package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drivers(t *testing.T) map[string]func() (Cache, func(time.Duration)) {
	return map[string]func() (Cache, func(time.Duration)){
		DriverRedis: func() (Cache, func(time.Duration)) {
			mr := miniredis.RunT(t)
			client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
			t.Cleanup(func() { _ = client.Close() })
			return NewRedis(client), mr.FastForward
		},
		DriverMemory: func() (Cache, func(time.Duration)) {
			// go-cache依赖真实时间,用短过期时间配合sleep
			return NewMemory(time.Minute), time.Sleep
		},
	}
}

func TestCache(t *testing.T) {
	for name, build := range drivers(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			c, advance := build()

			_, err := c.Get(ctx, "missing")
			assert.True(t, errors.Is(err, ErrNil))

			require.NoError(t, c.Set(ctx, "k", "v", 0))
			got, err := c.Get(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, "v", got)

			ttl, err := c.TTL(ctx, "k")
			require.NoError(t, err)
			assert.Zero(t, ttl)

			require.NoError(t, c.Set(ctx, "short", "v", 50*time.Millisecond))
			ttl, err = c.TTL(ctx, "short")
			require.NoError(t, err)
			assert.True(t, ttl > 0 && ttl <= 50*time.Millisecond)
			advance(100 * time.Millisecond)
			_, err = c.Get(ctx, "short")
			assert.True(t, errors.Is(err, ErrNil))
			_, err = c.TTL(ctx, "short")
			assert.True(t, errors.Is(err, ErrNil))

			ok, err := c.SetNX(ctx, "nx", "1", time.Minute)
			require.NoError(t, err)
			assert.True(t, ok)
			ok, err = c.SetNX(ctx, "nx", "2", time.Minute)
			require.NoError(t, err)
			assert.False(t, ok)
			got, err = c.Get(ctx, "nx")
			require.NoError(t, err)
			assert.Equal(t, "1", got)

			require.NoError(t, c.Del(ctx, "k", "nx", "missing"))
			require.NoError(t, c.Del(ctx))
			_, err = c.Get(ctx, "k")
			assert.True(t, errors.Is(err, ErrNil))
			ok, err = c.SetNX(ctx, "nx", "3", time.Minute)
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}
