package v1handler

import (
	"evdemand/pkg/domain"
	"sort"
	"time"

	"github.com/go-faster/jx"
)

// EncodeAnalysis writes the JSON form of an analysis. It is shared by the API
// and the CLI.
func EncodeAnalysis(e *jx.Encoder, a *domain.DemandAnalysis) {
	e.Obj(func(e *jx.Encoder) {
		e.FieldStart("postal_code")
		e.Str(a.PostalCode().Value())
		e.FieldStart("population")
		e.Int(a.Population())
		e.FieldStart("station_count")
		e.Int(a.StationCount())
		e.FieldStart("residents_per_station")
		e.Float64(a.ResidentsPerStation())
		e.FieldStart("demand_priority")
		e.Str(string(a.DemandPriority()))
		e.FieldStart("coverage_assessment")
		e.Str(string(a.CoverageAssessment()))
		e.FieldStart("density_category")
		e.Str(string(a.PopulationData().DensityCategory()))
		e.FieldStart("additional_stations_needed")
		e.Int(a.AdditionalStationsNeeded())
		if geo := a.GeoLocation(); geo != nil {
			e.FieldStart("area_km2")
			e.Float64(geo.AreaKm2())
			e.FieldStart("residents_per_km2")
			e.Float64(a.ResidentsPerKm2())
			e.FieldStart("boundary")
			e.Str(geo.WKT())
		}
		e.FieldStart("calculated_at")
		e.Str(a.CalculatedAt().UTC().Format(time.RFC3339))
	})
}

// EncodeAnalyses wraps items in a list object with a count.
func EncodeAnalyses(e *jx.Encoder, items []*domain.DemandAnalysis) {
	e.Obj(func(e *jx.Encoder) {
		e.FieldStart("items")
		e.Arr(func(e *jx.Encoder) {
			for _, a := range items {
				EncodeAnalysis(e, a)
			}
		})
		e.FieldStart("count")
		e.Int(len(items))
	})
}

// EncodeSearchResult includes every station; the breakdown keys are sorted.
func EncodeSearchResult(e *jx.Encoder, r *domain.StationSearchResult) {
	e.Obj(func(e *jx.Encoder) {
		e.FieldStart("postal_code")
		e.Str(r.PostalCode().Value())
		e.FieldStart("station_count")
		e.Int(r.StationCount())
		e.FieldStart("fast_charger_count")
		e.Int(r.FastChargerCount())
		e.FieldStart("total_capacity_kw")
		e.Float64(r.TotalCapacityKW())
		e.FieldStart("coverage_level")
		e.Str(string(r.CoverageLevel()))

		breakdown := r.CategoryBreakdown()
		categories := make([]string, 0, len(breakdown))
		for c := range breakdown {
			categories = append(categories, string(c))
		}
		sort.Strings(categories)
		e.FieldStart("category_breakdown")
		e.Obj(func(e *jx.Encoder) {
			for _, c := range categories {
				e.FieldStart(c)
				e.Int(breakdown[domain.ChargingCategory(c)])
			}
		})

		e.FieldStart("stations")
		e.Arr(func(e *jx.Encoder) {
			for _, s := range r.Stations() {
				e.Obj(func(e *jx.Encoder) {
					e.FieldStart("latitude")
					e.Float64(s.Latitude)
					e.FieldStart("longitude")
					e.Float64(s.Longitude)
					e.FieldStart("power_kw")
					e.Float64(s.PowerCapacity.Kilowatts())
					e.FieldStart("category")
					e.Str(string(s.ChargingCategory()))
					if s.Operator != "" {
						e.FieldStart("operator")
						e.Str(s.Operator)
					}
				})
			}
		})
	})
}
