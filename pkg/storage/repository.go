package storage

import (
	"context"
	"evdemand/pkg/domain"
)

// StationRepository looks up charging stations.
type StationRepository interface {
	// FindStationsByPostalCode returns every station registered in pc. An area
	// without stations yields an empty slice and no error.
	FindStationsByPostalCode(ctx context.Context, pc domain.PostalCode) ([]domain.ChargingStation, error)
}

// PopulationRepository looks up resident counts.
type PopulationRepository interface {
	// FindPopulationByPostalCode returns nil when pc has no population record.
	FindPopulationByPostalCode(ctx context.Context, pc domain.PostalCode) (*domain.PopulationData, error)
	// PostalCodes lists every postal code with population data, ascending.
	PostalCodes(ctx context.Context) ([]domain.PostalCode, error)
}

// GeoDataRepository looks up postal code boundaries.
type GeoDataRepository interface {
	// FindGeoLocationByPostalCode returns nil when pc has no boundary.
	FindGeoLocationByPostalCode(ctx context.Context, pc domain.PostalCode) (*domain.GeoLocation, error)
}

// DemandAnalysisRepository persists the latest analysis per postal code.
type DemandAnalysisRepository interface {
	// SaveAnalysis inserts or replaces the analysis for its postal code.
	SaveAnalysis(ctx context.Context, a *domain.DemandAnalysis) error
	// FindAnalysisByPostalCode returns nil when no analysis is stored.
	FindAnalysisByPostalCode(ctx context.Context, pc domain.PostalCode) (*domain.DemandAnalysis, error)
	// FindAllAnalyses returns every stored analysis ordered by postal code.
	FindAllAnalyses(ctx context.Context) ([]*domain.DemandAnalysis, error)
	// DeleteAnalysis reports whether an analysis existed and was removed.
	DeleteAnalysis(ctx context.Context, pc domain.PostalCode) (bool, error)
	AnalysisExists(ctx context.Context, pc domain.PostalCode) (bool, error)
	CountAnalyses(ctx context.Context) (int64, error)
}

// ReferenceDataWriter replaces the public datasets wholesale. Callers run the
// three replacements in one transaction to keep the datasets consistent.
type ReferenceDataWriter interface {
	ReplaceStations(ctx context.Context, stations []domain.ChargingStation) error
	ReplacePopulation(ctx context.Context, population []domain.PopulationData) error
	ReplaceGeoLocations(ctx context.Context, locations []domain.GeoLocation) error
}
