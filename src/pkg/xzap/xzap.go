package xzap

import (
	"context"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// CtxTraceID is the gin/context key carrying the per-request trace id.
const CtxTraceID = "trace_id"

// LogConf controls the global logger.
type LogConf struct {
	Level      string `toml:"level" mapstructure:"level" json:"level"`
	Path       string `toml:"path" mapstructure:"path" json:"path"`
	MaxSize    int    `toml:"max_size" mapstructure:"max_size" json:"max_size"`
	MaxBackups int    `toml:"max_backups" mapstructure:"max_backups" json:"max_backups"`
	MaxAge     int    `toml:"max_age" mapstructure:"max_age" json:"max_age"`
	Compress   bool   `toml:"compress" mapstructure:"compress" json:"compress"`
	Console    bool   `toml:"console" mapstructure:"console" json:"console"`
}

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

// SetUp builds the global zap logger. File output rotates via lumberjack;
// console output can be enabled alongside it for local runs.
func SetUp(c LogConf) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if c.Level != "" {
		if err := level.Set(c.Level); err != nil {
			return nil, err
		}
	}

	encConf := zap.NewProductionEncoderConfig()
	encConf.EncodeTime = zapcore.ISO8601TimeEncoder

	var cores []zapcore.Core
	if c.Path != "" {
		w := zapcore.AddSync(&lumberjack.Logger{
			Filename:   c.Path,
			MaxSize:    c.MaxSize,
			MaxBackups: c.MaxBackups,
			MaxAge:     c.MaxAge,
			Compress:   c.Compress,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encConf), w, level))
	}
	if c.Console || c.Path == "" {
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encConf), zapcore.AddSync(os.Stdout), level))
	}

	l := zap.New(zapcore.NewTee(cores...), zap.AddCaller())

	mu.Lock()
	logger = l
	mu.Unlock()

	return l, nil
}

// WithContext returns the global logger annotated with the request trace id
// when one is present on the context.
func WithContext(ctx context.Context) *zap.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()

	if ctx != nil {
		if traceID, ok := ctx.Value(CtxTraceID).(string); ok && traceID != "" {
			l = l.With(zap.String("trace_id", traceID))
		}
	}
	return l
}
