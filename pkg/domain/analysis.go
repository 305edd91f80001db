package domain

import (
	"evdemand/pkg/serrors"
	"math"
	"time"
)

// DemandPriority is how urgently an area needs more charging infrastructure.
type DemandPriority string

const (
	PriorityHigh   DemandPriority = "High"
	PriorityMedium DemandPriority = "Medium"
	PriorityLow    DemandPriority = "Low"
)

// CoverageAssessment rates existing infrastructure against population.
type CoverageAssessment string

const (
	CoverageCritical CoverageAssessment = "CRITICAL"
	CoveragePoor     CoverageAssessment = "POOR"
	CoverageAdequate CoverageAssessment = "ADEQUATE"
	CoverageGood     CoverageAssessment = "GOOD"
)

// Residents-per-station bands.
const (
	highDemandResidentsPerStation   = 5000
	mediumDemandResidentsPerStation = 2000
	adequateResidentsPerStation     = 1000
	// TargetResidentsPerStation is the ratio AdditionalStationsNeeded plans for.
	TargetResidentsPerStation = adequateResidentsPerStation
)

// DemandAnalysis is the demand assessment of one postal code. It is computed
// once and never mutated; re-running an analysis replaces it.
type DemandAnalysis struct {
	population   PopulationData
	stationCount int
	geo          *GeoLocation

	residentsPerStation float64
	priority            DemandPriority
	coverage            CoverageAssessment
	calculatedAt        time.Time

	events []Event
}

// NewDemandAnalysis classifies population against station count and records a
// DemandAnalysisCalculated event. geo is optional but must describe the same
// postal code when given.
func NewDemandAnalysis(pop PopulationData, stationCount int, geo *GeoLocation) (*DemandAnalysis, error) {
	a, err := buildAnalysis(pop, stationCount, geo, now())
	if err != nil {
		return nil, err
	}

	a.events = append(a.events, DemandAnalysisCalculated{
		EventMeta:           newEventMeta(),
		PostalCode:          pop.PostalCode(),
		Population:          pop.Population(),
		StationCount:        stationCount,
		DemandPriority:      a.priority,
		CoverageAssessment:  a.coverage,
		ResidentsPerStation: a.residentsPerStation,
	})

	return a, nil
}

// RestoreDemandAnalysis rebuilds a persisted analysis. Classification is
// recomputed from the inputs; no events are recorded.
func RestoreDemandAnalysis(pop PopulationData,
	stationCount int,
	geo *GeoLocation,
	calculatedAt time.Time) (*DemandAnalysis, error) {
	return buildAnalysis(pop, stationCount, geo, calculatedAt)
}

func buildAnalysis(pop PopulationData,
	stationCount int,
	geo *GeoLocation,
	calculatedAt time.Time) (*DemandAnalysis, error) {
	if stationCount < 0 {
		return nil, serrors.With(ErrInvalidStationCount,
			"Station count cannot be negative, got: %d", stationCount)
	}
	if geo != nil && !geo.PostalCode().Equals(pop.PostalCode()) {
		return nil, serrors.With(ErrInvalidGeoLocation,
			"Geo location %s does not match postal code %s", geo.PostalCode(), pop.PostalCode())
	}

	ratio := pop.DemandRatio(stationCount)

	return &DemandAnalysis{
		population:          pop,
		stationCount:        stationCount,
		geo:                 geo,
		residentsPerStation: ratio,
		priority:            classifyPriority(ratio),
		coverage:            assessCoverage(pop.Population(), stationCount, ratio),
		calculatedAt:        calculatedAt,
	}, nil
}

func classifyPriority(residentsPerStation float64) DemandPriority {
	switch {
	case residentsPerStation > highDemandResidentsPerStation:
		return PriorityHigh
	case residentsPerStation > mediumDemandResidentsPerStation:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

func assessCoverage(population, stationCount int, residentsPerStation float64) CoverageAssessment {
	switch {
	case stationCount == 0 && population > 0:
		return CoverageCritical
	case residentsPerStation > highDemandResidentsPerStation:
		return CoverageCritical
	case residentsPerStation > mediumDemandResidentsPerStation:
		return CoveragePoor
	case residentsPerStation > adequateResidentsPerStation:
		return CoverageAdequate
	default:
		return CoverageGood
	}
}

func (a *DemandAnalysis) PostalCode() PostalCode { return a.population.PostalCode() }

func (a *DemandAnalysis) Population() int { return a.population.Population() }

func (a *DemandAnalysis) PopulationData() PopulationData { return a.population }

func (a *DemandAnalysis) StationCount() int { return a.stationCount }

func (a *DemandAnalysis) ResidentsPerStation() float64 { return a.residentsPerStation }

func (a *DemandAnalysis) DemandPriority() DemandPriority { return a.priority }

func (a *DemandAnalysis) CoverageAssessment() CoverageAssessment { return a.coverage }

func (a *DemandAnalysis) CalculatedAt() time.Time { return a.calculatedAt }

// GeoLocation returns the attached boundary, or nil.
func (a *DemandAnalysis) GeoLocation() *GeoLocation { return a.geo }

// ResidentsPerKm2 returns population density, or 0 without a boundary.
func (a *DemandAnalysis) ResidentsPerKm2() float64 {
	if a.geo == nil {
		return 0
	}
	area := a.geo.AreaKm2()
	if area <= 0 {
		return 0
	}

	return float64(a.population.Population()) / area
}

// AdditionalStationsNeeded returns how many stations must be added to reach
// TargetResidentsPerStation.
func (a *DemandAnalysis) AdditionalStationsNeeded() int {
	required := int(math.Ceil(float64(a.population.Population()) / TargetResidentsPerStation))
	if missing := required - a.stationCount; missing > 0 {
		return missing
	}

	return 0
}

// PullEvents returns and clears the events recorded since creation.
func (a *DemandAnalysis) PullEvents() []Event {
	out := a.events
	a.events = nil

	return out
}
