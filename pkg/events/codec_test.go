package events_test

import (
	"evdemand/pkg/domain"
	"evdemand/pkg/events"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	domain.SetClock(clockwork.NewFakeClockAt(time.Date(2026, 4, 1, 6, 0, 0, 0, time.UTC)))
	t.Cleanup(func() { domain.SetClock(nil) })

	a, err := domain.NewDemandAnalysis(mustPopulation(t, 30000), 5, nil)
	require.NoError(t, err)

	tests := []struct {
		name  string
		event domain.Event
		extra string
	}{
		{"validated", domain.NewPostalCodeValidated(mitte), ``},
		{"no stations", domain.NewNoStationsFound(mitte), ``},
		{
			"search performed",
			domain.NewStationSearchPerformed(mitte, 2, map[string]string{"source": "csv", "area": "10115"}),
			`,"stations_found":2,"search_parameters":{"area":"10115","source":"csv"}`,
		},
		{
			"search failed without type",
			domain.NewStationSearchFailed(mitte, "boom", ""),
			`,"error_message":"boom"`,
		},
		{
			"search failed",
			domain.NewStationSearchFailed(mitte, "boom", "UNAVAILABLE"),
			`,"error_message":"boom","error_type":"UNAVAILABLE"`,
		},
		{
			"analysis",
			a.PullEvents()[0],
			`,"population":30000,"station_count":5,"demand_priority":"High","coverage_assessment":"CRITICAL","residents_per_station":6000`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := events.Encode(tt.event)
			require.NoError(t, err)

			want := `{"event_id":"` + tt.event.ID().String() + `","event_type":"` + tt.event.EventType() +
				`","occurred_at":"2026-04-01T06:00:00Z","postal_code":"10115"` + tt.extra + `}`
			require.JSONEq(t, want, string(got))
		})
	}
}

func TestEncode_Nil(t *testing.T) {
	_, err := events.Encode(nil)
	require.Error(t, err)
}
