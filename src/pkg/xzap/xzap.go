package xzap

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config is the log section of the service config file.
type Config struct {
	Level      string `toml:"level" mapstructure:"level" json:"level"`
	Mode       string `toml:"mode" mapstructure:"mode" json:"mode"` // console or file
	Path       string `toml:"path" mapstructure:"path" json:"path"`
	MaxSize    int    `toml:"max_size" mapstructure:"max_size" json:"max_size"` // megabytes
	MaxBackups int    `toml:"max_backups" mapstructure:"max_backups" json:"max_backups"`
	MaxAge     int    `toml:"max_age" mapstructure:"max_age" json:"max_age"` // days
	Compress   bool   `toml:"compress" mapstructure:"compress" json:"compress"`
}

// Logger carries a zap logger bound to a request context.
type Logger struct {
	l *zap.Logger
}

var global = zap.NewNop()

// SetUp builds the global logger from config. Returns the logger so callers
// can defer Sync.
func SetUp(c Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if c.Level != "" {
		if err := level.UnmarshalText([]byte(c.Level)); err != nil {
			return nil, err
		}
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var ws zapcore.WriteSyncer
	if c.Mode == "file" && c.Path != "" {
		ws = zapcore.AddSync(&lumberjack.Logger{
			Filename:   c.Path,
			MaxSize:    c.MaxSize,
			MaxBackups: c.MaxBackups,
			MaxAge:     c.MaxAge,
			Compress:   c.Compress,
		})
	} else {
		ws = zapcore.Lock(os.Stdout)
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), ws, level)
	global = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	return global, nil
}

// WithContext returns a request-scoped logger. The context is accepted for
// future trace propagation; the global logger is the base.
func WithContext(ctx context.Context) *Logger {
	_ = ctx
	return &Logger{l: global}
}

func (x *Logger) Info(msg string, fields ...zap.Field) {
	x.l.Info(msg, fields...)
}

func (x *Logger) Warn(msg string, fields ...zap.Field) {
	x.l.Warn(msg, fields...)
}

func (x *Logger) Error(msg string, fields ...zap.Field) {
	x.l.Error(msg, fields...)
}

func (x *Logger) Infof(format string, args ...interface{}) {
	x.l.Info(fmt.Sprintf(format, args...))
}

func (x *Logger) Errorf(format string, args ...interface{}) {
	x.l.Error(fmt.Sprintf(format, args...))
}
