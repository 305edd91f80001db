package domain_test

import (
	"evdemand/pkg/domain"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func station(t *testing.T, kw float64) domain.ChargingStation {
	t.Helper()
	s, err := domain.NewChargingStation(mitte, 52.53, 13.38, kw, "Stromnetz Berlin")
	require.NoError(t, err)

	return s
}

func TestNewChargingStation(t *testing.T) {
	s := station(t, 22)
	assert.Equal(t, mitte, s.PostalCode)
	assert.InDelta(t, 52.53, s.Latitude, 1e-9)
	assert.InDelta(t, 13.38, s.Longitude, 1e-9)
	assert.InDelta(t, 22.0, s.PowerCapacity.Kilowatts(), 1e-9)
	assert.Equal(t, "Stromnetz Berlin", s.Operator)
}

func TestNewChargingStation_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		kw       float64
	}{
		{"latitude too large", 91, 13.4, 22},
		{"longitude too small", 52.5, -181, 22},
		{"negative power", 52.5, 13.4, -1},
		{"nan power", 52.5, 13.4, math.NaN()},
		{"infinite power", 52.5, 13.4, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewChargingStation(mitte, tt.lat, tt.lon, tt.kw, "")
			require.ErrorIs(t, err, domain.ErrInvalidStation)
			require.True(t, domain.IsValidation(err))
		})
	}
}

func TestChargingStation_Category(t *testing.T) {
	tests := []struct {
		kw   float64
		cat  domain.ChargingCategory
		fast bool
	}{
		{0, domain.ChargingNormal, false},
		{11, domain.ChargingNormal, false},
		{49.9, domain.ChargingNormal, false},
		{50, domain.ChargingFast, true},
		{149, domain.ChargingFast, true},
		{150, domain.ChargingUltra, true},
		{350, domain.ChargingUltra, true},
	}
	for _, tt := range tests {
		s := station(t, tt.kw)
		assert.Equal(t, tt.cat, s.ChargingCategory(), "%v kW", tt.kw)
		assert.Equal(t, tt.fast, s.IsFastCharger(), "%v kW", tt.kw)
	}
}
