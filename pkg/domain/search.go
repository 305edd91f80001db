package domain

// CoverageLevel rates a postal code area by how many stations it has.
type CoverageLevel string

const (
	LevelNoCoverage CoverageLevel = "NO_COVERAGE"
	LevelPoor       CoverageLevel = "POOR"
	LevelAdequate   CoverageLevel = "ADEQUATE"
	LevelGood       CoverageLevel = "GOOD"
	LevelExcellent  CoverageLevel = "EXCELLENT"
)

// StationSearchResult groups the stations found for one postal code.
type StationSearchResult struct {
	postalCode PostalCode
	stations   []ChargingStation
}

// NewStationSearchResult keeps a copy of stations.
func NewStationSearchResult(pc PostalCode, stations []ChargingStation) *StationSearchResult {
	cp := make([]ChargingStation, len(stations))
	copy(cp, stations)

	return &StationSearchResult{postalCode: pc, stations: cp}
}

func (r *StationSearchResult) PostalCode() PostalCode { return r.postalCode }

// Stations returns a copy of the stations found.
func (r *StationSearchResult) Stations() []ChargingStation {
	cp := make([]ChargingStation, len(r.stations))
	copy(cp, r.stations)

	return cp
}

func (r *StationSearchResult) StationCount() int { return len(r.stations) }

func (r *StationSearchResult) FastChargerCount() int {
	n := 0
	for _, s := range r.stations {
		if s.IsFastCharger() {
			n++
		}
	}

	return n
}

// TotalCapacityKW sums the rated power of all stations.
func (r *StationSearchResult) TotalCapacityKW() float64 {
	var total float64
	for _, s := range r.stations {
		total += s.PowerCapacity.Kilowatts()
	}

	return total
}

// CategoryBreakdown counts stations per charging category. All categories are
// present in the result, zero when unused.
func (r *StationSearchResult) CategoryBreakdown() map[ChargingCategory]int {
	out := map[ChargingCategory]int{
		ChargingNormal: 0,
		ChargingFast:   0,
		ChargingUltra:  0,
	}
	for _, s := range r.stations {
		out[s.ChargingCategory()]++
	}

	return out
}

// CoverageLevel: none, 1-2 poor, 3-5 adequate, 6-10 good, more excellent.
func (r *StationSearchResult) CoverageLevel() CoverageLevel {
	switch n := len(r.stations); {
	case n == 0:
		return LevelNoCoverage
	case n <= 2:
		return LevelPoor
	case n <= 5:
		return LevelAdequate
	case n <= 10:
		return LevelGood
	default:
		return LevelExcellent
	}
}
