package logger

import (
	"context"

	"go.uber.org/zap"
)

type logKey struct{}

// From 从context中获取logger,未设置时返回Nop
func From(ctx context.Context) *zap.Logger {
	l, ok := ctx.Value(logKey{}).(*zap.Logger)
	if !ok {
		return zap.NewNop()
	}
	return l
}

func With(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, logKey{}, l)
}

// AddFields 在context的logger上追加字段
func AddFields(ctx context.Context, fields ...zap.Field) context.Context {
	return With(ctx, From(ctx).With(fields...))
}
