package logger

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"rbac-admin/pkg/timex"
)

// level 全局日志级别,可通过RegisterLog注册的接口动态调整
var level = zap.NewAtomicLevel()

func New(opts ...Option) *zap.Logger {
	o := &option{
		level:   zapcore.InfoLevel.String(),
		encoder: zapcore.NewConsoleEncoder,
		writer:  os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}
	level.SetLevel(newLevel(o.level))

	var fields []zap.Field
	if o.serverName != "" {
		fields = append(fields, zap.String("service_name", o.serverName))
	}
	core := zapcore.NewCore(
		o.encoder(newEncoderConfig()),
		zapcore.AddSync(o.writer),
		level,
	).With(fields)
	// 大于error增加堆栈信息
	return zap.New(core).WithOptions(zap.AddCaller(),
		zap.AddStacktrace(zapcore.DPanicLevel), zap.WithClock(systemClock{}))
}

func newEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:     "Message",
		LevelKey:       "Level",
		TimeKey:        "Time",
		NameKey:        "Logger",
		CallerKey:      "Caller",
		StacktraceKey:  "Stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout(timex.TimeFormatLayout),
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
}

func newLevel(level string) zapcore.Level {
	l, err := zapcore.ParseLevel(level)
	if err != nil {
		l = zap.InfoLevel
	}
	return l
}

// systemClock implements default Clock that uses system time.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().In(timex.CST)
}

func (systemClock) NewTicker(duration time.Duration) *time.Ticker {
	return time.NewTicker(duration)
}
