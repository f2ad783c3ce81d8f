package logger

import (
	"io"

	"go.uber.org/zap/zapcore"
)

type option struct {
	level      string
	encoder    func(zapcore.EncoderConfig) zapcore.Encoder
	writer     io.Writer
	serverName string
}

type Option func(*option)

// WithLevel debug/info/warn/error,无法解析时为info
func WithLevel(level string) Option {
	return func(o *option) {
		o.level = level
	}
}

func WithEncoder(encoder func(zapcore.EncoderConfig) zapcore.Encoder) Option {
	return func(o *option) {
		o.encoder = encoder
	}
}

// WithJSONEncoder 输出json格式,适合日志采集
func WithJSONEncoder() Option {
	return WithEncoder(zapcore.NewJSONEncoder)
}

func WithWriter(w io.Writer) Option {
	return func(o *option) {
		o.writer = w
	}
}

func WithServerName(name string) Option {
	return func(o *option) {
		o.serverName = name
	}
}
