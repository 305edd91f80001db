package postgres

import (
	"context"
	"evdemand/pkg/domain"
	"fmt"

	"github.com/doug-martin/goqu/v9"
)

const (
	stationsTable   = "charging_stations"
	populationTable = "population"
	boundariesTable = "geo_boundaries"

	// insertBatchSize keeps multi-row inserts well below the 65535 bind
	// parameter limit.
	insertBatchSize = 1000
)

// FindStationsByPostalCode returns the stations of pc, possibly none.
func (p *PgSQL) FindStationsByPostalCode(ctx context.Context, pc domain.PostalCode) ([]domain.ChargingStation, error) {
	var rows []PgStation
	if err := p.Builder.From(stationsTable).
		Where(goqu.I("postal_code").Eq(pc.Value())).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch stations for %s from pg: %w", pc, err)
	}

	out := make([]domain.ChargingStation, 0, len(rows))
	for i := range rows {
		s, err := rows[i].ToDomain()
		if err != nil {
			return nil, fmt.Errorf("invalid station row %d: %w", rows[i].ID, err)
		}
		out = append(out, s)
	}

	return out, nil
}

// FindPopulationByPostalCode returns nil without error when pc is unknown.
func (p *PgSQL) FindPopulationByPostalCode(ctx context.Context, pc domain.PostalCode) (*domain.PopulationData, error) {
	var row PgPopulation
	found, err := p.Builder.From(populationTable).
		Where(goqu.I("postal_code").Eq(pc.Value())).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch population for %s from pg: %w", pc, err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// PostalCodes lists every postal code with population data, ascending.
func (p *PgSQL) PostalCodes(ctx context.Context) ([]domain.PostalCode, error) {
	var codes []string
	if err := p.Builder.From(populationTable).
		Select("postal_code").
		Order(goqu.I("postal_code").Asc()).
		Executor().ScanValsContext(ctx, &codes); err != nil {
		return nil, fmt.Errorf("could not fetch postal codes from pg: %w", err)
	}

	out := make([]domain.PostalCode, 0, len(codes))
	for _, c := range codes {
		pc, err := domain.NewPostalCode(c)
		if err != nil {
			return nil, err
		}
		out = append(out, pc)
	}

	return out, nil
}

// FindGeoLocationByPostalCode returns nil without error when no boundary is
// stored.
func (p *PgSQL) FindGeoLocationByPostalCode(ctx context.Context, pc domain.PostalCode) (*domain.GeoLocation, error) {
	var row PgBoundary
	found, err := p.Builder.From(boundariesTable).
		Where(goqu.I("postal_code").Eq(pc.Value())).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch boundary for %s from pg: %w", pc, err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// ReplaceStations deletes all stations and inserts the given ones.
func (p *PgSQL) ReplaceStations(ctx context.Context, stations []domain.ChargingStation) error {
	rows := make([]PgStation, len(stations))
	for i := range stations {
		rows[i].FromDomain(stations[i])
	}

	return replaceAll(ctx, p.Builder, stationsTable, rows)
}

// ReplacePopulation swaps the population table for the given rows.
func (p *PgSQL) ReplacePopulation(ctx context.Context, population []domain.PopulationData) error {
	rows := make([]PgPopulation, len(population))
	for i, pop := range population {
		rows[i] = PgPopulation{PostalCode: pop.PostalCode().Value(), Population: pop.Population()}
	}

	return replaceAll(ctx, p.Builder, populationTable, rows)
}

// ReplaceGeoLocations swaps the boundary table for the given rows.
func (p *PgSQL) ReplaceGeoLocations(ctx context.Context, locations []domain.GeoLocation) error {
	rows := make([]PgBoundary, len(locations))
	for i, g := range locations {
		rows[i] = PgBoundary{PostalCode: g.PostalCode().Value(), Boundary: g.WKT()}
	}

	return replaceAll(ctx, p.Builder, boundariesTable, rows)
}

func replaceAll[T any](ctx context.Context, b Builder, table string, rows []T) error {
	if _, err := b.Delete(table).Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not clear %s in pg: %w", table, err)
	}

	for start := 0; start < len(rows); start += insertBatchSize {
		end := min(start+insertBatchSize, len(rows))
		if _, err := b.Insert(table).Rows(rows[start:end]).Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("could not insert into %s in pg: %w", table, err)
		}
	}

	return nil
}
