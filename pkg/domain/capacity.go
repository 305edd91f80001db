package domain

import (
	"math"
	"slices"
)

// CapacityCategory ranks an area's installed charging power against all
// other areas.
type CapacityCategory string

const (
	CapacityNone   CapacityCategory = "None"
	CapacityLow    CapacityCategory = "Low"
	CapacityMedium CapacityCategory = "Medium"
	CapacityHigh   CapacityCategory = "High"
)

// CapacityThresholds returns the 33rd and 66th percentiles of values using
// linear interpolation between closest ranks. Zero values are ignored since
// they classify as None regardless.
func CapacityThresholds(values []float64) (p33, p66 float64) {
	nonZero := make([]float64, 0, len(values))
	for _, v := range values {
		if v > 0 {
			nonZero = append(nonZero, v)
		}
	}
	if len(nonZero) == 0 {
		return 0, 0
	}
	slices.Sort(nonZero)

	return percentile(nonZero, 33), percentile(nonZero, 66)
}

// percentile expects sorted, non-empty input.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	frac := rank - float64(lo)

	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// ClassifyCapacity buckets value: zero is None, below p33 Low, below p66
// Medium, otherwise High.
func ClassifyCapacity(value, p33, p66 float64) CapacityCategory {
	switch {
	case value <= 0:
		return CapacityNone
	case value < p33:
		return CapacityLow
	case value < p66:
		return CapacityMedium
	default:
		return CapacityHigh
	}
}
