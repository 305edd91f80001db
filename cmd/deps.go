package main

import (
	"context"
	"evdemand/internal/config"
	"evdemand/pkg/events"
	"evdemand/pkg/events/kafka"
	"evdemand/pkg/logger"
	"evdemand/pkg/metrics"
	"evdemand/pkg/storage"
	"evdemand/pkg/storage/csvstore"

	"go.uber.org/zap"
)

// newBus subscribes the log handlers and the metrics to a fresh bus. With
// Kafka enabled every event is also forwarded to the configured topic; the
// returned func closes the producer.
func newBus(ctx context.Context, cfg *config.Config, m *metrics.Metrics) (*events.Bus, func()) {
	bus := events.NewBus()
	events.RegisterLogHandlers(bus)
	if m != nil {
		bus.SubscribeAll(m.Handle)
	}

	if !cfg.Kafka.Enabled {
		return bus, func() {}
	}

	w := kafka.NewWriter(ctx, kafka.Options{
		Brokers:      cfg.Kafka.Brokers,
		Topic:        cfg.Kafka.Topic,
		WriteTimeout: cfg.Kafka.WriteTimeout,
	})
	bus.SubscribeAll(w.Handle)
	logger.Info(ctx, "forwarding events to kafka", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))

	return bus, func() {
		if err := w.Close(); err != nil {
			logger.Warn(ctx, "could not close kafka writer", zap.Error(err))
		}
	}
}

func csvOptions(cfg *config.Config) csvstore.Options {
	return csvstore.Options{
		StationsPath:   cfg.Data.StationsPath,
		PopulationPath: cfg.Data.PopulationPath,
		GeoDataPath:    cfg.Data.GeoDataPath,
	}
}

// referenceSource returns the stations, population and boundaries analyses
// read from. For the postgres source that is pg itself.
func referenceSource(ctx context.Context, cfg *config.Config, pg storage.ReferenceStorage) storage.ReferenceStorage {
	if cfg.Data.Source != config.SourceCSV {
		return pg
	}

	store, err := csvstore.Load(ctx, csvOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not load csv data", zap.Error(err))
	}

	return store
}
