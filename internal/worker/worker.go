package worker

import (
	"context"
	"evdemand/internal/config"
	"evdemand/internal/demand"
	"evdemand/pkg/logger"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap"
)

// Options configure the river client.
type Options struct {
	// MaxWorkers caps concurrent jobs on the default queue.
	MaxWorkers int
	// RefreshInterval schedules a periodic re-analysis of every postal code.
	// Zero disables it.
	RefreshInterval time.Duration
	// UnavailableBackoff is how long a job waits when a dependency is down.
	UnavailableBackoff time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:         cfg.Worker.MaxWorkers,
		RefreshInterval:    cfg.Worker.RefreshInterval,
		UnavailableBackoff: defaultUnavailableBackoff,
	}
}

const defaultUnavailableBackoff = 30 * time.Second

// Start registers the analysis workers and starts processing jobs until ctx is
// cancelled or the client is stopped.
func Start(ctx context.Context, dbPool *pgxpool.Pool, analyzer demand.Analyzer, options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewAnalysisWorker(analyzer, options.UnavailableBackoff))
	river.AddWorker(workers, NewRefreshWorker(analyzer))

	var periodic []*river.PeriodicJob
	if options.RefreshInterval > 0 {
		periodic = append(periodic, river.NewPeriodicJob(
			river.PeriodicInterval(options.RefreshInterval),
			func() (river.JobArgs, *river.InsertOpts) { return demand.RefreshJobArgs{}, nil },
			nil,
		))
		logger.Info(ctx, "periodic refresh enabled", zap.Duration("interval", options.RefreshInterval))
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.MaxWorkers},
		},
		Workers:      workers,
		PeriodicJobs: periodic,
		Logger:       logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
