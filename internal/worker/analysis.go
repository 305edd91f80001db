package worker

import (
	"context"
	"errors"
	"evdemand/internal/demand"
	"evdemand/pkg/domain"
	"evdemand/pkg/logger"
	"evdemand/pkg/serrors"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// AnalysisWorker runs one demand analysis per job.
//
// Jobs whose input can never succeed are cancelled instead of retried: an
// invalid postal code or one without population data. When a dependency
// reports itself unavailable the job is snoozed, which does not consume an
// attempt. Every other error is returned and retried by river up to the job's
// MaxAttempts.
type AnalysisWorker struct {
	river.WorkerDefaults[demand.AnalyzeJobArgs]

	analyzer demand.Analyzer
	// backoff is the snooze duration for unavailable dependencies.
	backoff time.Duration
}

// NewAnalysisWorker creates the worker; backoff is how long a job is snoozed
// while a dependency is unavailable.
func NewAnalysisWorker(analyzer demand.Analyzer, backoff time.Duration) *AnalysisWorker {
	return &AnalysisWorker{
		analyzer: analyzer,
		backoff:  backoff,
	}
}

// Work runs one analysis job.
func (w *AnalysisWorker) Work(ctx context.Context, job *river.Job[demand.AnalyzeJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("postalCode", job.Args.PostalCode))

	analysis, err := w.analyzer.Analyze(ctx, job.Args.PostalCode)
	if err != nil {
		if domain.IsValidation(err) || errors.Is(err, serrors.ErrNotFound) {
			logger.Warn(ctx, "cancelling analysis job", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in analysing postal code", zap.Error(err))

		if errors.Is(err, serrors.ErrUnavailable) {
			return river.JobSnooze(w.backoff) //nolint: wrapcheck
		}

		return fmt.Errorf("could not analyse postal code: %w", err)
	}

	logger.Info(ctx, "postal code analysed",
		zap.String("priority", string(analysis.DemandPriority())),
		zap.Int("stations", analysis.StationCount()))

	return nil
}

// RefreshWorker queues an analysis for every postal code with population data.
type RefreshWorker struct {
	river.WorkerDefaults[demand.RefreshJobArgs]

	analyzer demand.Analyzer
}

// NewRefreshWorker creates the worker behind the periodic refresh.
func NewRefreshWorker(analyzer demand.Analyzer) *RefreshWorker {
	return &RefreshWorker{analyzer: analyzer}
}

// Work queues an analysis for every known postal code.
func (w *RefreshWorker) Work(ctx context.Context, job *river.Job[demand.RefreshJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	if _, err := w.analyzer.EnqueueAll(ctx); err != nil {
		return fmt.Errorf("could not queue refresh: %w", err)
	}

	return nil
}
