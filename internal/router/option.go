package router

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type option struct {
	logger         *zap.Logger
	allowedOrigins []string
	repeatInterval time.Duration
	cacheActive    func() bool
	healthProbes   []func(context.Context) error
}

type Option func(*option)

// WithLogger 请求日志的基础logger
func WithLogger(l *zap.Logger) Option {
	return func(o *option) {
		o.logger = l
	}
}

// WithAllowedOrigins 跨域白名单,为空时允许任意来源
func WithAllowedOrigins(origins ...string) Option {
	return func(o *option) {
		o.allowedOrigins = origins
	}
}

// WithRepeatInterval 防重复提交的时间窗口
func WithRepeatInterval(interval time.Duration) Option {
	return func(o *option) {
		o.repeatInterval = interval
	}
}

// WithCacheActive 缓存可用性探测,不可用时拒绝写请求
func WithCacheActive(active func() bool) Option {
	return func(o *option) {
		o.cacheActive = active
	}
}

// WithHealthProbe /health需要通过的探测,如数据库ping
func WithHealthProbe(probes ...func(context.Context) error) Option {
	return func(o *option) {
		o.healthProbes = append(o.healthProbes, probes...)
	}
}

func newOption(opts ...Option) *option {
	o := &option{
		logger:         zap.NewNop(),
		repeatInterval: 3 * time.Second,
		cacheActive:    func() bool { return true },
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
