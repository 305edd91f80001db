package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
)

// AddJob inserts a river job. Inside a transaction it uses InsertTx, so the
// job becomes visible to workers only once the surrounding work commits.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	if tx, ok := p.DB.(*sql.Tx); ok {
		client, err := river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
		if err != nil {
			return false, fmt.Errorf("could not create river client: %w", err)
		}

		res, err := client.InsertTx(ctx, tx, args, opts)
		if err != nil {
			return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
		}

		return !res.UniqueSkippedAsDuplicate, nil
	}

	db, ok := p.DB.(*sql.DB)
	if !ok {
		return false, fmt.Errorf("unsupported executor %T", p.DB)
	}
	client, err := river.NewClient(riverdatabasesql.New(db), &river.Config{})
	if err != nil {
		return false, fmt.Errorf("could not create river client: %w", err)
	}

	res, err := client.Insert(ctx, args, opts)
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
