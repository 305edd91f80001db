package events_test

import (
	"context"
	"evdemand/pkg/domain"
	"evdemand/pkg/events"
	"evdemand/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogHandlers(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	b := events.NewBus()
	events.RegisterLogHandlers(b)

	a, err := domain.NewDemandAnalysis(mustPopulation(t, 30000), 5, nil)
	require.NoError(t, err)

	err = b.Publish(ctx,
		domain.NewPostalCodeValidated(mitte),
		domain.NewStationSearchPerformed(mitte, 5, nil),
		domain.NewStationSearchFailed(mitte, "connection refused", "UNAVAILABLE"),
		domain.NewStationSearchFailed(mitte, "boom", ""),
		domain.NewNoStationsFound(mitte),
		a.PullEvents()[0],
	)
	require.NoError(t, err)

	want := []struct {
		level zapcore.Level
		msg   string
	}{
		{zap.InfoLevel, "[EVENT] Postal code validated successfully: 10115"},
		{zap.InfoLevel, "[EVENT] Station search performed for postal code: 10115 (found 5 stations)"},
		{zap.ErrorLevel, "[EVENT] Station search failed for postal code: 10115 - Error: connection refused (Type: UNAVAILABLE)"},
		{zap.ErrorLevel, "[EVENT] Station search failed for postal code: 10115 - Error: boom (Type: Unknown)"},
		{zap.WarnLevel, "[EVENT] No stations found for postal code: 10115"},
		{zap.InfoLevel, "[EVENT] Demand analysis calculated for postal code: 10115"},
	}
	entries := logs.All()
	require.Len(t, entries, len(want))
	for i, w := range want {
		require.Equal(t, w.level, entries[i].Level, w.msg)
		require.Equal(t, w.msg, entries[i].Message)
		require.Equal(t, "10115", entries[i].ContextMap()["postal_code"])
	}
	require.Equal(t, "CRITICAL", entries[len(entries)-1].ContextMap()["coverage"])
}

func mustPopulation(t *testing.T, n int) domain.PopulationData {
	t.Helper()
	p, err := domain.NewPopulationData(mitte, n)
	require.NoError(t, err)

	return p
}
