package logger_test

import (
	"context"
	"evdemand/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed(level zapcore.Level) (context.Context, *observer.ObservedLogs) {
	core, logs := observer.New(level)

	return logger.WithLogger(context.Background(), zap.New(core)), logs
}

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		debug       bool
		wantErr     bool
	}{
		{name: "development default", environment: logger.DevelopmentEnvironment, debug: true},
		{name: "production default", environment: logger.ProductionEnvironment, debug: false},
		{name: "production debug override", environment: logger.ProductionEnvironment, level: "debug", debug: true},
		{name: "development warn override", environment: logger.DevelopmentEnvironment, level: "warn", debug: false},
		{name: "bad level", environment: logger.DevelopmentEnvironment, level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := logger.Setup(tt.environment, tt.level)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.debug, logger.IsDebug(context.Background()))
		})
	}
}

func TestGet_FallsBackToDefault(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))
	require.NotNil(t, logger.Get(context.Background()))

	custom := zap.NewNop()
	require.Same(t, custom, logger.Get(logger.WithLogger(context.Background(), custom)))
}

func TestWithFields(t *testing.T) {
	ctx, logs := observed(zap.InfoLevel)
	ctx = logger.WithFields(ctx, zap.String("postal_code", "10115"))

	logger.Info(ctx, "analysed", zap.Int("stations", 4))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "analysed", entries[0].Message)
	fields := entries[0].ContextMap()
	require.Equal(t, "10115", fields["postal_code"])
	require.EqualValues(t, 4, fields["stations"])
}

func TestLevelHelpers(t *testing.T) {
	ctx, logs := observed(zap.InfoLevel)

	logger.Debug(ctx, "hidden")
	logger.Info(ctx, "info")
	logger.Warn(ctx, "warn")
	logger.Error(ctx, "error")

	require.Equal(t, 0, logs.FilterMessage("hidden").Len())
	require.Equal(t, 1, logs.FilterLevelExact(zap.InfoLevel).Len())
	require.Equal(t, 1, logs.FilterLevelExact(zap.WarnLevel).Len())
	require.Equal(t, 1, logs.FilterLevelExact(zap.ErrorLevel).Len())
}

func TestSlog(t *testing.T) {
	ctx, logs := observed(zap.InfoLevel)

	logger.Slog(ctx).Info("from slog", "queue", "default")

	entries := logs.FilterMessage("from slog").All()
	require.Len(t, entries, 1)
	require.Equal(t, "default", entries[0].ContextMap()["queue"])
}
