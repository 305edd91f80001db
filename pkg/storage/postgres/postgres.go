// Package postgres implements storage.Storage on PostgreSQL. Queries are built
// with goqu and executed through database/sql on top of a pgx pool, so the same
// handle also serves goose migrations and river's database/sql driver.
package postgres

import (
	"context"
	"database/sql"
	"evdemand/pkg/storage"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

const dialect = "postgres"

// Options holds connection and pool settings.
type Options struct {
	Username string
	Password string
	Host     string
	Port     int
	Database string
	// SslMode is passed through as libpq sslmode, e.g. "disable" or "require".
	SslMode string

	ConnMaxLifetime    time.Duration
	ConnMaxIdleTime    time.Duration
	MaxOpenConnections int
	MaxIdleConnections int
}

// DB is the part of database/sql shared by *sql.DB and *sql.Tx.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Builder is the part of goqu shared by *goqu.Database and *goqu.TxDatabase.
type Builder interface {
	From(table ...any) *goqu.SelectDataset
	Insert(table any) *goqu.InsertDataset
	Update(table any) *goqu.UpdateDataset
	Delete(table any) *goqu.DeleteDataset
}

// PgSQL is a storage handle. DB is a *sql.DB outside and a *sql.Tx inside a
// transaction; Builder is bound to the same executor.
type PgSQL struct {
	DB      DB
	Builder Builder
	Pool    *pgxpool.Pool
}

var (
	_ storage.Storage   = (*PgSQL)(nil)
	_ storage.TxStorage = (*PgSQL)(nil)
)

// New opens a pgx pool and wraps it in database/sql.
func New(ctx context.Context, options Options) (*PgSQL, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s dbname=%s password=%s sslmode=%s",
		options.Host,
		options.Port,
		options.Username,
		options.Database,
		options.Password,
		options.SslMode)
	cfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("could not parse pgxpool config: %w", err)
	}
	if options.MaxOpenConnections > 0 {
		cfg.MaxConns = int32(options.MaxOpenConnections) //nolint: gosec
	}
	if options.MaxIdleConnections > 0 {
		cfg.MinConns = int32(options.MaxIdleConnections) //nolint: gosec
	}
	if options.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = options.ConnMaxLifetime
	}
	if options.ConnMaxIdleTime > 0 {
		cfg.MaxConnIdleTime = options.ConnMaxIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx pool: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	return &PgSQL{
		DB:      sqlDB,
		Builder: goqu.Dialect(dialect).DB(sqlDB),
		Pool:    pool,
	}, nil
}

// Ping checks that the database is reachable.
func (p *PgSQL) Ping(ctx context.Context) error {
	if p.Pool == nil {
		return nil
	}

	return p.Pool.Ping(ctx)
}

// Close releases the pools. It is a no-op on a transaction handle.
func (p *PgSQL) Close() error {
	if db, ok := p.DB.(*sql.DB); ok {
		_ = db.Close()
	}
	if p.Pool != nil {
		p.Pool.Close()
	}

	return nil
}

// Commit commits the transaction behind p.
func (p *PgSQL) Commit() error {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

// Rollback aborts the transaction behind p.
func (p *PgSQL) Rollback() error {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

// Begin returns storage.ErrAlreadyInTx when p is itself a transaction.
func (p *PgSQL) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &PgSQL{
		DB:      tx,
		Builder: goqu.NewTx(dialect, tx),
	}, nil
}

// WithTx runs cb in a transaction, committing when cb returns nil and
// rolling back otherwise.
func (p *PgSQL) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := p.Begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	return tx.Commit()
}
