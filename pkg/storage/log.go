package storage

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/utils"

	rlog "rbac-admin/pkg/logger"
)

// NewLog gorm日志输出到context中的zap logger
func NewLog(opts ...func(*logger.Config)) logger.Interface {
	cfg := logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	}
	for _, o := range opts {
		o(&cfg)
	}
	return &gormLog{Config: cfg}
}

type gormLog struct {
	logger.Config
}

func (g *gormLog) LogMode(level logger.LogLevel) logger.Interface {
	l := *g
	l.LogLevel = level
	return &l
}

func (g *gormLog) Info(ctx context.Context, msg string, data ...interface{}) {
	if g.LogLevel >= logger.Info {
		rlog.From(ctx).Sugar().Infof(msg, data...)
	}
}

func (g *gormLog) Warn(ctx context.Context, msg string, data ...interface{}) {
	if g.LogLevel >= logger.Warn {
		rlog.From(ctx).Sugar().Warnf(msg, data...)
	}
}

func (g *gormLog) Error(ctx context.Context, msg string, data ...interface{}) {
	if g.LogLevel >= logger.Error {
		rlog.From(ctx).Sugar().Errorf(msg, data...)
	}
}

func (g *gormLog) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.LogLevel <= logger.Silent {
		return
	}
	elapsed := time.Since(begin)
	fields := func() []zap.Field {
		s, rows := fc()
		return []zap.Field{
			zap.String("sql", s),
			zap.Int64("rows", rows),
			zap.Duration("elapsed", elapsed),
			zap.String("source", utils.FileWithLineNum()),
		}
	}
	switch {
	case err != nil && g.LogLevel >= logger.Error &&
		(!errors.Is(err, gorm.ErrRecordNotFound) || !g.IgnoreRecordNotFoundError):
		rlog.From(ctx).Error("sql failed", append(fields(), zap.Error(err))...)
	case elapsed > g.SlowThreshold && g.SlowThreshold != 0 && g.LogLevel >= logger.Warn:
		rlog.From(ctx).Warn("slow sql", append(fields(), zap.Duration("threshold", g.SlowThreshold))...)
	case g.LogLevel == logger.Info:
		rlog.From(ctx).Debug("sql", fields()...)
	}
}
