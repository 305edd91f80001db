package domain_test

import (
	"evdemand/pkg/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvents_TypesAndKeys(t *testing.T) {
	at := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	freezeClock(t, at)

	events := []struct {
		event domain.Event
		typ   string
	}{
		{domain.NewPostalCodeValidated(mitte), domain.EventPostalCodeValidated},
		{domain.NewStationSearchPerformed(mitte, 3, nil), domain.EventStationSearchPerformed},
		{domain.NewStationSearchFailed(mitte, "boom", ""), domain.EventStationSearchFailed},
		{domain.NewNoStationsFound(mitte), domain.EventNoStationsFound},
	}
	seen := map[string]bool{}
	for _, tt := range events {
		assert.Equal(t, tt.typ, tt.event.EventType())
		assert.Equal(t, "10115", tt.event.AggregateKey())
		assert.Equal(t, at, tt.event.OccurredAt())

		id := tt.event.ID().String()
		require.False(t, seen[id], "event ids must be unique")
		seen[id] = true
	}
}

func TestNewStationSearchPerformed_CopiesParameters(t *testing.T) {
	params := map[string]string{"source": "csv"}
	ev := domain.NewStationSearchPerformed(mitte, 0, params)
	params["source"] = "changed"

	require.Equal(t, "csv", ev.SearchParameters["source"])
	require.Equal(t, 0, ev.StationsFound)
}
