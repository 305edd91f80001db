package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs. Inside a transaction the insert
// becomes visible only on commit.
type JobStorage interface {
	// AddJob reports false when the job was skipped as a duplicate of an
	// already queued unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
