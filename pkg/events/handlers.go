package events

import (
	"context"
	"evdemand/pkg/domain"
	"evdemand/pkg/logger"
	"fmt"

	"go.uber.org/zap"
)

const unknownErrorType = "Unknown"

// RegisterLogHandlers subscribes the event log lines to b.
func RegisterLogHandlers(b *Bus) {
	b.Subscribe(domain.EventPostalCodeValidated, logPostalCodeValidated)
	b.Subscribe(domain.EventStationSearchPerformed, logStationSearchPerformed)
	b.Subscribe(domain.EventStationSearchFailed, logStationSearchFailed)
	b.Subscribe(domain.EventNoStationsFound, logNoStationsFound)
	b.Subscribe(domain.EventDemandAnalysisCalculated, logDemandAnalysisCalculated)
}

func eventFields(e domain.Event) []zap.Field {
	return []zap.Field{
		zap.String("event_id", e.ID().String()),
		zap.String("event_type", e.EventType()),
		zap.String("postal_code", e.AggregateKey()),
		zap.Time("occurred_at", e.OccurredAt()),
	}
}

func logPostalCodeValidated(ctx context.Context, e domain.Event) error {
	logger.Info(ctx, "[EVENT] Postal code validated successfully: "+e.AggregateKey(), eventFields(e)...)

	return nil
}

func logStationSearchPerformed(ctx context.Context, e domain.Event) error {
	ev, ok := e.(domain.StationSearchPerformed)
	if !ok {
		return fmt.Errorf("unexpected %T for %s", e, e.EventType())
	}

	logger.Info(ctx,
		fmt.Sprintf("[EVENT] Station search performed for postal code: %s (found %d stations)",
			ev.PostalCode, ev.StationsFound),
		append(eventFields(e), zap.Int("stations_found", ev.StationsFound))...)

	return nil
}

func logStationSearchFailed(ctx context.Context, e domain.Event) error {
	ev, ok := e.(domain.StationSearchFailed)
	if !ok {
		return fmt.Errorf("unexpected %T for %s", e, e.EventType())
	}

	errType := ev.ErrorType
	if errType == "" {
		errType = unknownErrorType
	}
	logger.Error(ctx,
		fmt.Sprintf("[EVENT] Station search failed for postal code: %s - Error: %s (Type: %s)",
			ev.PostalCode, ev.ErrorMessage, errType),
		eventFields(e)...)

	return nil
}

func logNoStationsFound(ctx context.Context, e domain.Event) error {
	logger.Warn(ctx, "[EVENT] No stations found for postal code: "+e.AggregateKey(), eventFields(e)...)

	return nil
}

func logDemandAnalysisCalculated(ctx context.Context, e domain.Event) error {
	fields := eventFields(e)
	if ev, ok := e.(domain.DemandAnalysisCalculated); ok {
		fields = append(fields,
			zap.String("priority", string(ev.DemandPriority)),
			zap.String("coverage", string(ev.CoverageAssessment)),
			zap.Float64("residents_per_station", ev.ResidentsPerStation))
	}
	logger.Info(ctx, "[EVENT] Demand analysis calculated for postal code: "+e.AggregateKey(), fields...)

	return nil
}
