// Package storage defines the persistence interfaces the demand analysis
// core depends on. Backends live in sub packages: postgres for the service,
// csvstore for the public data files and memory for tests and one-off runs.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is everything the service needs from a single backend.
type AllStorage interface {
	ReferenceStorage
	DemandAnalysisRepository
	ReferenceDataWriter
	JobStorage
}

// ReferenceStorage bundles the read-only lookups of the public datasets.
type ReferenceStorage interface {
	StationRepository
	PopulationRepository
	GeoDataRepository
}

// TxStorage is an AllStorage bound to an open transaction. It becomes unusable
// after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is a non-transactional handle that can start transactions.
type Storage interface {
	AllStorage

	// Close releases the underlying connection pool.
	Close() error

	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb in a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
