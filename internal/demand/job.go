package demand

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// AnalyzeJobArgs asks a worker to analyse one postal code. At most one job per
// postal code is queued or running at a time.
type AnalyzeJobArgs struct {
	PostalCode string `json:"postal_code" river:"unique"`

	// maxAttempts only matters at insert time and is not serialized.
	maxAttempts int
}

func (AnalyzeJobArgs) Kind() string { return "AnalyzePostalCodeJob" }

// InsertOpts makes the job unique per postal code while it is waiting or
// running.
func (args AnalyzeJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// RefreshJobArgs re-queues an analysis for every known postal code. It is
// scheduled periodically by the worker.
type RefreshJobArgs struct{}

func (RefreshJobArgs) Kind() string { return "RefreshAnalysesJob" }

func (RefreshJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateScheduled,
			},
		},
	}
}
