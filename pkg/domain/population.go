package domain

import "evdemand/pkg/serrors"

// PopulationDensityCategory buckets postal codes by resident count.
type PopulationDensityCategory string

const (
	DensityLow    PopulationDensityCategory = "LOW"
	DensityMedium PopulationDensityCategory = "MEDIUM"
	DensityHigh   PopulationDensityCategory = "HIGH"
)

const (
	lowDensityMax    = 10000
	mediumDensityMax = 20000
	// highDensityThreshold drives IsHighDensity. It is deliberately not the
	// same as mediumDensityMax: the two classifications are independent.
	highDensityThreshold = 15000
)

// PopulationData is the resident count of one postal code.
type PopulationData struct {
	postalCode PostalCode
	population int
}

// NewPopulationData fails when population is negative.
func NewPopulationData(pc PostalCode, population int) (PopulationData, error) {
	if population < 0 {
		return PopulationData{}, serrors.With(ErrNegativePopulation,
			"Population cannot be negative, got: %d", population)
	}

	return PopulationData{postalCode: pc, population: population}, nil
}

func (p PopulationData) PostalCode() PostalCode { return p.postalCode }

func (p PopulationData) Population() int { return p.population }

// DensityCategory returns LOW up to 10000 residents, MEDIUM up to 20000 and
// HIGH above.
func (p PopulationData) DensityCategory() PopulationDensityCategory {
	switch {
	case p.population <= lowDensityMax:
		return DensityLow
	case p.population <= mediumDensityMax:
		return DensityMedium
	default:
		return DensityHigh
	}
}

// IsHighDensity reports a population above 15000.
func (p PopulationData) IsHighDensity() bool {
	return p.population > highDensityThreshold
}

// DemandRatio returns residents per station. With no stations the whole
// population counts as unserved; with no residents the ratio is zero.
func (p PopulationData) DemandRatio(stationCount int) float64 {
	if p.population == 0 {
		return 0
	}
	if stationCount <= 0 {
		return float64(p.population)
	}

	return float64(p.population) / float64(stationCount)
}
