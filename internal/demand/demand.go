package demand

import (
	"context"
	"evdemand/internal/config"
	"evdemand/pkg/domain"
	"evdemand/pkg/events"
	"evdemand/pkg/logger"
	"evdemand/pkg/metrics"
	"evdemand/pkg/serrors"
	"evdemand/pkg/storage"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const unknownErrorType = "Unknown"

var tracer = otel.Tracer("evdemand/internal/demand") //nolint: gochecknoglobals

// Options configure job enqueueing and how searches are described in events.
type Options struct {
	// MaxAttempts is how often a worker retries an analysis job before giving up.
	MaxAttempts int
	// Source names the backend stations are read from. It is reported as a
	// search parameter.
	Source string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts: cfg.Worker.MaxAttempts,
		Source:      cfg.Data.Source,
	}
}

// Deps are the collaborators of the analyzer. Jobs and Metrics are optional:
// without Jobs the Enqueue methods fail as unavailable.
type Deps struct {
	// Stations, Population and Geo serve the reference datasets.
	Stations   storage.StationRepository
	Population storage.PopulationRepository
	Geo        storage.GeoDataRepository
	// Analyses stores results.
	Analyses storage.DemandAnalysisRepository
	// Jobs inserts background analysis jobs.
	Jobs storage.JobStorage
	// Publisher receives every domain event raised while analysing.
	Publisher events.Publisher
	// Metrics records analysis latency.
	Metrics *metrics.Metrics
}

// analyzer is the concrete Analyzer. It holds no state besides its
// collaborators and is safe for concurrent use.
type analyzer struct {
	// options holds the job and search settings.
	options Options
	// deps are the repositories and sinks the analyzer works with.
	deps Deps
}

// Analyze runs the full flow for one postal code: validate, look up the
// population, search stations, attach the boundary when known, calculate,
// store and publish.
func (a analyzer) Analyze(ctx context.Context, postalCode string) (_ *domain.DemandAnalysis, err error) {
	start := time.Now()
	ctx, span := tracer.Start(ctx, "demand.Analyze", trace.WithAttributes(attribute.String("postal_code", postalCode)))
	defer func() { endSpan(span, err) }()

	pc, err := a.validate(ctx, postalCode)
	if err != nil {
		return nil, err
	}

	pop, err := a.deps.Population.FindPopulationByPostalCode(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("could not get population: %w", err)
	}
	if pop == nil {
		return nil, serrors.With(serrors.ErrNotFound, "no population data for postal code %s", pc)
	}

	result, err := a.search(ctx, pc)
	if err != nil {
		return nil, err
	}

	geo, err := a.deps.Geo.FindGeoLocationByPostalCode(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("could not get boundary: %w", err)
	}

	analysis, err := domain.NewDemandAnalysis(*pop, result.StationCount(), geo)
	if err != nil {
		return nil, err
	}

	if err := a.deps.Analyses.SaveAnalysis(ctx, analysis); err != nil {
		return nil, fmt.Errorf("could not save analysis: %w", err)
	}

	a.publish(ctx, analysis.PullEvents()...)
	if a.deps.Metrics != nil {
		a.deps.Metrics.ObserveAnalysis(start)
	}
	span.SetAttributes(
		attribute.String("demand_priority", string(analysis.DemandPriority())),
		attribute.Int("station_count", analysis.StationCount()),
	)

	return analysis, nil
}

// SearchStations validates postalCode and looks up its stations. Nothing is
// stored; the search is still reported as events.
func (a analyzer) SearchStations(ctx context.Context, postalCode string) (_ *domain.StationSearchResult, err error) {
	ctx, span := tracer.Start(ctx, "demand.SearchStations", trace.WithAttributes(attribute.String("postal_code", postalCode)))
	defer func() { endSpan(span, err) }()

	pc, err := a.validate(ctx, postalCode)
	if err != nil {
		return nil, err
	}

	return a.search(ctx, pc)
}

// search looks up the stations of pc and reports the outcome as events.
func (a analyzer) search(ctx context.Context, pc domain.PostalCode) (*domain.StationSearchResult, error) {
	stations, err := a.deps.Stations.FindStationsByPostalCode(ctx, pc)
	if err != nil {
		errType := unknownErrorType
		if k := serrors.KindOf(err); k != nil {
			errType = k.Error()
		}
		a.publish(ctx, domain.NewStationSearchFailed(pc, err.Error(), errType))

		return nil, fmt.Errorf("could not search stations: %w", err)
	}

	a.publish(ctx, domain.NewStationSearchPerformed(pc, len(stations), map[string]string{
		"postal_code": pc.Value(),
		"source":      a.options.Source,
	}))
	if len(stations) == 0 {
		a.publish(ctx, domain.NewNoStationsFound(pc))
	}

	return domain.NewStationSearchResult(pc, stations), nil
}

// Analysis returns the stored analysis for postalCode.
func (a analyzer) Analysis(ctx context.Context, postalCode string) (*domain.DemandAnalysis, error) {
	pc, err := domain.NewPostalCode(postalCode)
	if err != nil {
		return nil, err
	}

	res, err := a.deps.Analyses.FindAnalysisByPostalCode(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("could not get analysis: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "analysis not found")
	}

	return res, nil
}

// Analyses lists every stored analysis.
func (a analyzer) Analyses(ctx context.Context) ([]*domain.DemandAnalysis, error) {
	res, err := a.deps.Analyses.FindAllAnalyses(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list analyses: %w", err)
	}

	return res, nil
}

// Delete removes the stored analysis. Queued jobs are left alone; they would
// simply store a fresh analysis.
func (a analyzer) Delete(ctx context.Context, postalCode string) error {
	pc, err := domain.NewPostalCode(postalCode)
	if err != nil {
		return err
	}

	deleted, err := a.deps.Analyses.DeleteAnalysis(ctx, pc)
	if err != nil {
		return fmt.Errorf("could not delete analysis: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "analysis not found")
	}

	return nil
}

// Enqueue inserts a unique analysis job for postalCode. A job already waiting
// or running for the same postal code makes it fail with a conflict.
func (a analyzer) Enqueue(ctx context.Context, postalCode string) error {
	if a.deps.Jobs == nil {
		return serrors.With(serrors.ErrUnavailable, "background jobs are not configured")
	}

	pc, err := domain.NewPostalCode(postalCode)
	if err != nil {
		return err
	}

	added, err := a.deps.Jobs.AddJob(ctx, a.jobArgs(pc), nil)
	if err != nil {
		return fmt.Errorf("could not add job: %w", err)
	}
	if !added {
		return serrors.With(serrors.ErrConflict, "analysis for postal code %s is already queued", pc)
	}

	return nil
}

// EnqueueAll inserts an analysis job for every postal code with population
// data. Postal codes that already have a queued job are skipped and not
// counted. It stops at the first insert error.
func (a analyzer) EnqueueAll(ctx context.Context) (int, error) {
	if a.deps.Jobs == nil {
		return 0, serrors.With(serrors.ErrUnavailable, "background jobs are not configured")
	}

	postalCodes, err := a.deps.Population.PostalCodes(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not list postal codes: %w", err)
	}

	queued := 0
	for _, pc := range postalCodes {
		added, err := a.deps.Jobs.AddJob(ctx, a.jobArgs(pc), nil)
		if err != nil {
			return queued, fmt.Errorf("could not add job for %s: %w", pc, err)
		}
		if added {
			queued++
		}
	}

	logger.Info(ctx, "queued analysis jobs", zap.Int("queued", queued), zap.Int("postal_codes", len(postalCodes)))

	return queued, nil
}

// jobArgs carries the configured attempt limit into the job's insert options.
func (a analyzer) jobArgs(pc domain.PostalCode) AnalyzeJobArgs {
	return AnalyzeJobArgs{PostalCode: pc.Value(), maxAttempts: a.options.MaxAttempts}
}

// validate parses the raw postal code and announces it.
func (a analyzer) validate(ctx context.Context, raw string) (domain.PostalCode, error) {
	pc, err := domain.NewPostalCode(raw)
	if err != nil {
		return domain.PostalCode{}, err
	}
	a.publish(ctx, domain.NewPostalCodeValidated(pc))

	return pc, nil
}

// publish never fails the caller; handler errors are only logged.
func (a analyzer) publish(ctx context.Context, evs ...domain.Event) {
	if a.deps.Publisher == nil || len(evs) == 0 {
		return
	}
	if err := a.deps.Publisher.Publish(ctx, evs...); err != nil {
		logger.Error(ctx, "could not publish events", zap.Error(err), zap.Int("count", len(evs)))
	}
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// New creates an Analyzer over the given repositories.
func New(deps Deps, options Options) Analyzer {
	return &analyzer{
		options: options,
		deps:    deps,
	}
}

// NewFromStorage wires every repository from a single backend.
func NewFromStorage(st storage.AllStorage, publisher events.Publisher, m *metrics.Metrics, options Options) Analyzer {
	return New(Deps{
		Stations:   st,
		Population: st,
		Geo:        st,
		Analyses:   st,
		Jobs:       st,
		Publisher:  publisher,
		Metrics:    m,
	}, options)
}
