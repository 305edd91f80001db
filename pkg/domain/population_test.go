package domain_test

import (
	"evdemand/pkg/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mitte = domain.MustPostalCode("10115")

func population(t *testing.T, n int) domain.PopulationData {
	t.Helper()
	p, err := domain.NewPopulationData(mitte, n)
	require.NoError(t, err)

	return p
}

func TestNewPopulationData_Negative(t *testing.T) {
	_, err := domain.NewPopulationData(mitte, -1)
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrNegativePopulation)
	require.Equal(t, "Population cannot be negative, got: -1", err.Error())
}

func TestNewPopulationData_Zero(t *testing.T) {
	p, err := domain.NewPopulationData(mitte, 0)
	require.NoError(t, err)
	require.Equal(t, 0, p.Population())
	require.Equal(t, mitte, p.PostalCode())
}

func TestPopulationData_DensityCategory(t *testing.T) {
	tests := []struct {
		population int
		want       domain.PopulationDensityCategory
	}{
		{0, domain.DensityLow},
		{10000, domain.DensityLow},
		{10001, domain.DensityMedium},
		{20000, domain.DensityMedium},
		{20001, domain.DensityHigh},
		{95000, domain.DensityHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, population(t, tt.population).DensityCategory(), "population %d", tt.population)
	}
}

func TestPopulationData_IsHighDensity(t *testing.T) {
	assert.False(t, population(t, 15000).IsHighDensity())
	assert.True(t, population(t, 15001).IsHighDensity())
	// 18000 is high density but only MEDIUM category; the thresholds differ.
	p := population(t, 18000)
	assert.True(t, p.IsHighDensity())
	assert.Equal(t, domain.DensityMedium, p.DensityCategory())
}

func TestPopulationData_DemandRatio(t *testing.T) {
	tests := []struct {
		name       string
		population int
		stations   int
		want       float64
	}{
		{"divides by stations", 30000, 5, 6000},
		{"fractional", 10, 4, 2.5},
		{"no stations returns population", 12000, 0, 12000},
		{"negative stations treated as none", 12000, -3, 12000},
		{"no population", 0, 7, 0},
		{"no population no stations", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, population(t, tt.population).DemandRatio(tt.stations), 1e-9)
		})
	}
}

func TestPopulationData_DemandRatio_Property(t *testing.T) {
	for p := 0; p <= 50000; p += 2500 {
		for s := 0; s <= 20; s++ {
			got := population(t, p).DemandRatio(s)
			switch {
			case p == 0:
				require.Zero(t, got)
			case s == 0:
				require.InDelta(t, float64(p), got, 1e-9)
			default:
				require.InDelta(t, float64(p)/float64(s), got, 1e-9)
			}
		}
	}
}

func TestPopulationData_EndToEnd(t *testing.T) {
	p := population(t, 30000)
	require.InDelta(t, 6000.0, p.DemandRatio(5), 1e-9)
	require.Equal(t, domain.DensityHigh, p.DensityCategory())
}
