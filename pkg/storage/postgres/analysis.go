package postgres

import (
	"context"
	"evdemand/pkg/domain"
	"fmt"

	"github.com/doug-martin/goqu/v9"
)

const analysesTable = "demand_analyses"

// SaveAnalysis upserts by postal code.
func (p *PgSQL) SaveAnalysis(ctx context.Context, a *domain.DemandAnalysis) error {
	var row PgAnalysis
	row.FromDomain(a)

	_, err := p.Builder.Insert(analysesTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("postal_code", goqu.Record{
			"population":            goqu.L("EXCLUDED.population"),
			"station_count":         goqu.L("EXCLUDED.station_count"),
			"residents_per_station": goqu.L("EXCLUDED.residents_per_station"),
			"demand_priority":       goqu.L("EXCLUDED.demand_priority"),
			"coverage_assessment":   goqu.L("EXCLUDED.coverage_assessment"),
			"boundary":              goqu.L("EXCLUDED.boundary"),
			"calculated_at":         goqu.L("EXCLUDED.calculated_at"),
			"updated_at":            goqu.L("CURRENT_TIMESTAMP"),
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not save analysis for %s in pg: %w", a.PostalCode(), err)
	}

	return nil
}

// FindAnalysisByPostalCode returns nil without error when nothing is stored.
func (p *PgSQL) FindAnalysisByPostalCode(ctx context.Context, pc domain.PostalCode) (*domain.DemandAnalysis, error) {
	var row PgAnalysis
	found, err := p.Builder.From(analysesTable).
		Where(goqu.I("postal_code").Eq(pc.Value())).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch analysis for %s from pg: %w", pc, err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// FindAllAnalyses returns every stored analysis ordered by postal code.
func (p *PgSQL) FindAllAnalyses(ctx context.Context) ([]*domain.DemandAnalysis, error) {
	var rows []PgAnalysis
	if err := p.Builder.From(analysesTable).
		Order(goqu.I("postal_code").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch analyses from pg: %w", err)
	}

	out := make([]*domain.DemandAnalysis, 0, len(rows))
	for i := range rows {
		a, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, nil
}

// DeleteAnalysis reports whether a row was removed.
func (p *PgSQL) DeleteAnalysis(ctx context.Context, pc domain.PostalCode) (bool, error) {
	res, err := p.Builder.Delete(analysesTable).
		Where(goqu.I("postal_code").Eq(pc.Value())).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete analysis for %s in pg: %w", pc, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n > 0, nil
}

// AnalysisExists reports whether an analysis is stored for pc.
func (p *PgSQL) AnalysisExists(ctx context.Context, pc domain.PostalCode) (bool, error) {
	n, err := p.Builder.From(analysesTable).
		Where(goqu.I("postal_code").Eq(pc.Value())).
		CountContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not check analysis for %s in pg: %w", pc, err)
	}

	return n > 0, nil
}

// CountAnalyses returns the number of stored analyses.
func (p *PgSQL) CountAnalyses(ctx context.Context) (int64, error) {
	n, err := p.Builder.From(analysesTable).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count analyses in pg: %w", err)
	}

	return n, nil
}
