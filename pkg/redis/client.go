package redis

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

var Nil = redis.Nil

type Option struct {
	AddrList []string
	Password string
	DB       int
}

// New 创建通用客户端,单地址为单机模式,多地址为集群模式
func New(ctx context.Context, opts ...func(*Option)) (redis.UniversalClient, error) {
	o := Option{AddrList: []string{"127.0.0.1:6379"}}
	for _, opt := range opts {
		opt(&o)
	}
	cli := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:    o.AddrList,
		Password: o.Password,
		DB:       o.DB,
	})
	if err := cli.Ping(ctx).Err(); err != nil {
		_ = cli.Close()
		return nil, fmt.Errorf("redis ping failed.Error:%w", err)
	}
	return cli, nil
}
