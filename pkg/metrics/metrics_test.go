package metrics_test

import (
	"context"
	"evdemand/pkg/domain"
	"evdemand/pkg/metrics"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()

	_, err := metrics.New(reg)
	require.NoError(t, err)

	_, err = metrics.New(reg)
	require.Error(t, err, "duplicate registration must fail")
}

func TestHandle(t *testing.T) {
	m := metrics.NewForTesting()
	ctx := context.Background()
	pc := domain.MustPostalCode("12043")

	pop, err := domain.NewPopulationData(pc, 30000)
	require.NoError(t, err)
	a, err := domain.NewDemandAnalysis(pop, 5, nil)
	require.NoError(t, err)

	for _, e := range []domain.Event{
		domain.NewPostalCodeValidated(pc),
		domain.NewStationSearchPerformed(pc, 5, nil),
		domain.NewStationSearchPerformed(pc, 0, nil),
		domain.NewStationSearchFailed(pc, "boom", ""),
		a.PullEvents()[0],
	} {
		require.NoError(t, m.Handle(ctx, e))
	}

	require.InDelta(t, 2.0, testutil.ToFloat64(m.Events.WithLabelValues(domain.EventStationSearchPerformed)), 0)
	require.InDelta(t, 1.0, testutil.ToFloat64(m.Events.WithLabelValues(domain.EventPostalCodeValidated)), 0)
	require.InDelta(t, 1.0, testutil.ToFloat64(m.Analyses.WithLabelValues("High")), 0)
	require.InDelta(t, 1.0, testutil.ToFloat64(m.StationSearches.WithLabelValues(metrics.SearchFound)), 0)
	require.InDelta(t, 1.0, testutil.ToFloat64(m.StationSearches.WithLabelValues(metrics.SearchEmpty)), 0)
	require.InDelta(t, 1.0, testutil.ToFloat64(m.StationSearches.WithLabelValues(metrics.SearchFailure)), 0)
}

func TestObserveAnalysis(t *testing.T) {
	m := metrics.NewForTesting()
	m.ObserveAnalysis(time.Now().Add(-time.Second))

	require.Equal(t, 1, testutil.CollectAndCount(m.AnalysisDuration))
}
