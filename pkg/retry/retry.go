package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	defaultAttempt  = 5
	defaultInterval = time.Second
)

type option struct {
	attempts int
	interval time.Duration
	notify   func(err error, next time.Duration)
}

type Option func(*option)

// WithAttempt 最大重试次数,不含首次执行
func WithAttempt(attempt int) Option {
	return func(o *option) {
		o.attempts = attempt
	}
}

// WithInterval 首次重试的间隔,之后指数增长
func WithInterval(interval time.Duration) Option {
	return func(o *option) {
		o.interval = interval
	}
}

// WithNotify 每次失败后回调
func WithNotify(notify func(err error, next time.Duration)) Option {
	return func(o *option) {
		o.notify = notify
	}
}

// Permanent 包装后的错误不再重试
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &backoff.PermanentError{
		Err: err,
	}
}

// Do 按指数退避重试fn,直到成功、ctx结束或次数用尽
func Do(ctx context.Context, fn func(context.Context) error, opts ...Option) error {
	o := &option{
		attempts: defaultAttempt,
		interval: defaultInterval,
	}
	for _, opt := range opts {
		opt(o)
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = o.interval
	b.MaxInterval = 30 * o.interval
	b.MaxElapsedTime = 0
	var policy backoff.BackOff = b
	if o.attempts >= 0 {
		policy = backoff.WithMaxRetries(b, uint64(o.attempts))
	}
	return backoff.RetryNotify(func() error {
		return fn(ctx)
	}, backoff.WithContext(policy, ctx), o.notify)
}
