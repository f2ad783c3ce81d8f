package redis

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	redisStatActive = 1
	redisStatError  = 2
)

// Checker 周期性检测Redis服务状态
type Checker struct {
	client          redis.UniversalClient
	interval        time.Duration
	maxFailureCount int
	state           uint32
}

func NewChecker(client redis.UniversalClient, interval time.Duration, maxFailureCount int) *Checker {
	if interval <= 0 {
		// 默认5秒钟
		interval = 5 * time.Second
	}
	if maxFailureCount <= 0 {
		// 默认连续检测3次
		maxFailureCount = 3
	}
	return &Checker{
		client:          client,
		interval:        interval,
		maxFailureCount: maxFailureCount,
		state:           redisStatActive,
	}
}

func (c *Checker) check(ctx context.Context) {
	// 连续检测指定次数，只要超过指定次数都失败，才认为Redis不可用
	for i := 0; i < c.maxFailureCount; i++ {
		if err := c.client.Ping(ctx).Err(); err == nil {
			atomic.StoreUint32(&c.state, redisStatActive)
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(500 * time.Millisecond):
		}
	}
	atomic.StoreUint32(&c.state, redisStatError)
}

// Run 阻塞直到ctx结束
func (c *Checker) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			c.check(ctx)
		}
	}
}

// Active Redis服务是否可用
func (c *Checker) Active() bool {
	return atomic.LoadUint32(&c.state) == redisStatActive
}
