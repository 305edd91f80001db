package demand

import (
	"context"
	"evdemand/pkg/domain"
)

// Analyzer is the application service behind the API, the workers and the
// CLI. Postal codes arrive as raw strings; invalid ones fail with a domain
// validation error.
//
//go:generate mockgen -package mockdemand -source=interface.go -destination=mock/mockdemand.go *
type Analyzer interface {
	// Analyze computes, stores and returns the demand analysis for postalCode.
	Analyze(ctx context.Context, postalCode string) (*domain.DemandAnalysis, error)
	// SearchStations returns the stations of postalCode without storing
	// anything.
	SearchStations(ctx context.Context, postalCode string) (*domain.StationSearchResult, error)
	// Analysis returns the stored analysis or a not-found error.
	Analysis(ctx context.Context, postalCode string) (*domain.DemandAnalysis, error)
	// Analyses returns every stored analysis ordered by postal code.
	Analyses(ctx context.Context) ([]*domain.DemandAnalysis, error)
	// Delete removes the stored analysis or fails with not found.
	Delete(ctx context.Context, postalCode string) error
	// Enqueue schedules a background analysis. It fails with a conflict when
	// one is already queued for the same postal code.
	Enqueue(ctx context.Context, postalCode string) error
	// EnqueueAll schedules an analysis for every postal code with population
	// data and returns how many were newly queued.
	EnqueueAll(ctx context.Context) (int, error)
}
