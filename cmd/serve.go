package main

import (
	"context"
	"errors"
	"evdemand/internal/api"
	"evdemand/internal/api/handler/v1handler"
	"evdemand/internal/config"
	"evdemand/internal/demand"
	"evdemand/internal/worker"
	"evdemand/pkg/logger"
	"evdemand/pkg/metrics"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			m, err := metrics.New(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not register metrics", zap.Error(err))
			}
			bus, closeBus := newBus(ctx, cfg, m)
			defer closeBus()

			pg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()
			ref := referenceSource(ctx, cfg, pg)

			analyzer := demand.New(demand.Deps{
				Stations:   ref,
				Population: ref,
				Geo:        ref,
				Analyses:   pg,
				Jobs:       pg,
				Publisher:  bus,
				Metrics:    m,
			}, demand.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, pg.Pool, analyzer, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			server, err := api.NewServer(api.Deps{Deps: v1handler.Deps{Analyzer: analyzer}}, api.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create webserver", zap.Error(err))
			}

			g, gCtx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.Info(gCtx, "starting webserver...", zap.String("addr", server.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}

				return nil
			})
			g.Go(func() error {
				// wait for interrupt or a failed server
				<-gCtx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
				defer cancel()

				logger.Info(ctx, "stopping webserver...")
				srvErr := server.Shutdown(shutdownCtx)
				logger.Info(ctx, "stopping workers...")
				workerErr := riverClient.Stop(shutdownCtx)

				return errors.Join(srvErr, workerErr)
			})

			if err := g.Wait(); err != nil {
				logger.Error(ctx, "service stopped with error", zap.Error(err))
			}
		},
	}

	return cmd
}
