// Package logger carries a structured zap logger through context.Context.
//
// The process-wide default is configured once with Setup; request and job
// scoped loggers are attached with WithLogger or WithFields and read back with
// Get. Code that only has a context should log through the level helpers.
package logger

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

const (
	// DevelopmentEnvironment logs human readable console output at debug level.
	DevelopmentEnvironment = "development"
	// ProductionEnvironment logs JSON at info level.
	ProductionEnvironment = "production"
)

// defaultLogger is used when no logger is attached to the context.
var defaultLogger = zap.NewNop() //nolint: gochecknoglobals

// Setup builds the default logger for environment. A non-empty level
// ("debug", "info", "warn", "error") overrides the environment's default.
func Setup(environment, level string) error {
	cfg := zap.NewDevelopmentConfig()
	if environment == ProductionEnvironment {
		cfg = zap.NewProductionConfig()
	}

	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("could not parse log level %q: %w", level, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("could not build logger: %w", err)
	}
	defaultLogger = l

	return nil
}

type key struct{}

// Get returns the logger attached to ctx, or the default logger.
func Get(ctx context.Context) *zap.Logger {
	if l, _ := ctx.Value(key{}).(*zap.Logger); l != nil {
		return l
	}

	return defaultLogger
}

// WithLogger attaches l to ctx.
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, l)
}

// WithFields attaches a child of the current logger that always carries fields.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// Slog bridges the context logger to log/slog for libraries that expect it.
func Slog(ctx context.Context) *slog.Logger {
	return slog.New(zapslog.NewHandler(Get(ctx).Core()))
}

func IsDebug(ctx context.Context) bool {
	return Get(ctx).Core().Enabled(zap.DebugLevel)
}

func Debug(ctx context.Context, msg string, fields ...zapcore.Field) { Get(ctx).Debug(msg, fields...) }
func Info(ctx context.Context, msg string, fields ...zapcore.Field)  { Get(ctx).Info(msg, fields...) }
func Warn(ctx context.Context, msg string, fields ...zapcore.Field)  { Get(ctx).Warn(msg, fields...) }
func Error(ctx context.Context, msg string, fields ...zapcore.Field) { Get(ctx).Error(msg, fields...) }
func Fatal(ctx context.Context, msg string, fields ...zapcore.Field) { Get(ctx).Fatal(msg, fields...) }
