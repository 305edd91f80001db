package domain_test

import (
	"evdemand/pkg/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapacityThresholds(t *testing.T) {
	p33, p66 := domain.CapacityThresholds(nil)
	assert.Zero(t, p33)
	assert.Zero(t, p66)

	p33, p66 = domain.CapacityThresholds([]float64{0, 0, 42})
	assert.InDelta(t, 42.0, p33, 1e-9)
	assert.InDelta(t, 42.0, p66, 1e-9)

	// Zeros are dropped, leaving 1..101 in steps of one after sorting.
	values := []float64{0, 0}
	for v := 101.0; v >= 1; v-- {
		values = append(values, v)
	}
	p33, p66 = domain.CapacityThresholds(values)
	assert.InDelta(t, 34.0, p33, 1e-9)
	assert.InDelta(t, 67.0, p66, 1e-9)
}

func TestClassifyCapacity(t *testing.T) {
	tests := []struct {
		value float64
		want  domain.CapacityCategory
	}{
		{0, domain.CapacityNone},
		{-5, domain.CapacityNone},
		{10, domain.CapacityLow},
		{33.9, domain.CapacityLow},
		{34, domain.CapacityMedium},
		{66.9, domain.CapacityMedium},
		{67, domain.CapacityHigh},
		{1000, domain.CapacityHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.ClassifyCapacity(tt.value, 34, 67), "value %v", tt.value)
	}
}
