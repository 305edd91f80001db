package postgres

import (
	"database/sql"
	"evdemand/pkg/domain"
	"fmt"
	"time"
)

type PgAnalysis struct {
	PostalCode          string         `db:"postal_code"`
	Population          int            `db:"population"`
	StationCount        int            `db:"station_count"`
	ResidentsPerStation float64        `db:"residents_per_station"`
	DemandPriority      string         `db:"demand_priority"`
	CoverageAssessment  string         `db:"coverage_assessment"`
	Boundary            sql.NullString `db:"boundary"`
	CalculatedAt        time.Time      `db:"calculated_at"`
	UpdatedAt           time.Time      `db:"updated_at" goqu:"skipinsert,skipupdate"`
}

// FromDomain copies a into the row.
func (p *PgAnalysis) FromDomain(a *domain.DemandAnalysis) {
	*p = PgAnalysis{
		PostalCode:          a.PostalCode().Value(),
		Population:          a.Population(),
		StationCount:        a.StationCount(),
		ResidentsPerStation: a.ResidentsPerStation(),
		DemandPriority:      string(a.DemandPriority()),
		CoverageAssessment:  string(a.CoverageAssessment()),
		CalculatedAt:        a.CalculatedAt(),
	}
	if g := a.GeoLocation(); g != nil {
		p.Boundary = sql.NullString{String: g.WKT(), Valid: true}
	}
}

// ToDomain revalidates the stored row. Priority and coverage are recomputed
// from population and station count rather than trusted.
func (p *PgAnalysis) ToDomain() (*domain.DemandAnalysis, error) {
	pc, err := domain.NewPostalCode(p.PostalCode)
	if err != nil {
		return nil, fmt.Errorf("could not restore analysis: %w", err)
	}
	pop, err := domain.NewPopulationData(pc, p.Population)
	if err != nil {
		return nil, fmt.Errorf("could not restore analysis for %s: %w", pc, err)
	}

	var geo *domain.GeoLocation
	if p.Boundary.Valid {
		g, err := domain.NewGeoLocationFromWKT(pc, p.Boundary.String)
		if err != nil {
			return nil, fmt.Errorf("could not restore boundary for %s: %w", pc, err)
		}
		geo = &g
	}

	return domain.RestoreDemandAnalysis(pop, p.StationCount, geo, p.CalculatedAt.UTC())
}

type PgStation struct {
	ID         int64     `db:"id"          goqu:"skipinsert"`
	PostalCode string    `db:"postal_code"`
	Latitude   float64   `db:"latitude"`
	Longitude  float64   `db:"longitude"`
	PowerKW    float64   `db:"power_kw"`
	Operator   string    `db:"operator"`
	ImportedAt time.Time `db:"imported_at" goqu:"skipinsert"`
}

// FromDomain copies s into the row.
func (p *PgStation) FromDomain(s domain.ChargingStation) {
	*p = PgStation{
		PostalCode: s.PostalCode.Value(),
		Latitude:   s.Latitude,
		Longitude:  s.Longitude,
		PowerKW:    s.PowerCapacity.Kilowatts(),
		Operator:   s.Operator,
	}
}

// ToDomain validates the row into a station.
func (p *PgStation) ToDomain() (domain.ChargingStation, error) {
	pc, err := domain.NewPostalCode(p.PostalCode)
	if err != nil {
		return domain.ChargingStation{}, err
	}

	return domain.NewChargingStation(pc, p.Latitude, p.Longitude, p.PowerKW, p.Operator)
}

type PgPopulation struct {
	PostalCode string    `db:"postal_code"`
	Population int       `db:"population"`
	ImportedAt time.Time `db:"imported_at" goqu:"skipinsert"`
}

// ToDomain validates the row into population data.
func (p *PgPopulation) ToDomain() (*domain.PopulationData, error) {
	pc, err := domain.NewPostalCode(p.PostalCode)
	if err != nil {
		return nil, err
	}
	pop, err := domain.NewPopulationData(pc, p.Population)
	if err != nil {
		return nil, err
	}

	return &pop, nil
}

type PgBoundary struct {
	PostalCode string    `db:"postal_code"`
	Boundary   string    `db:"boundary"`
	ImportedAt time.Time `db:"imported_at" goqu:"skipinsert"`
}

// ToDomain parses the stored WKT.
func (p *PgBoundary) ToDomain() (*domain.GeoLocation, error) {
	pc, err := domain.NewPostalCode(p.PostalCode)
	if err != nil {
		return nil, err
	}
	g, err := domain.NewGeoLocationFromWKT(pc, p.Boundary)
	if err != nil {
		return nil, err
	}

	return &g, nil
}
