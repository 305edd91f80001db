package main

import (
	"context"
	"errors"
	"evdemand/internal/config"
	"evdemand/internal/demand"
	"evdemand/pkg/domain"
	"evdemand/pkg/logger"
	"evdemand/pkg/storage"
	"evdemand/pkg/storage/csvstore"
	"evdemand/pkg/storage/memory"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// analyzeCommand runs analyses in process. With the csv source nothing is
// persisted and no database is needed.
func analyzeCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <postal-code>...",
		Short: "Analyzes charging demand for the given postal codes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			if err := validateFormat(format); err != nil {
				return err
			}

			ctx := context.Background()
			bus, closeBus := newBus(ctx, cfg, nil)
			defer closeBus()

			var (
				ref      storage.ReferenceStorage
				analyses storage.DemandAnalysisRepository
			)
			if cfg.Data.Source == config.SourceCSV {
				store, err := csvstore.Load(ctx, csvOptions(cfg))
				if err != nil {
					return fmt.Errorf("could not load csv data: %w", err)
				}
				ref, analyses = store, memory.NewAnalysisStore()
			} else {
				pg, closeStrg := getPostgres(ctx, cfg)
				defer closeStrg()
				ref, analyses = pg, pg
			}

			analyzer := demand.New(demand.Deps{
				Stations:   ref,
				Population: ref,
				Geo:        ref,
				Analyses:   analyses,
				Publisher:  bus,
			}, demand.NewOptions(cfg))

			results, err := analyzeAll(ctx, analyzer, args)
			if rerr := renderAnalyses(cmd.OutOrStdout(), results, format); rerr != nil {
				return rerr
			}

			return err
		},
	}

	cmd.Flags().StringP("format", "f", formatTable, "Output format: table or json")

	return cmd
}

// analyzeAll keeps going after a failed postal code; the failures are logged
// and returned together.
func analyzeAll(ctx context.Context, analyzer demand.Analyzer, postalCodes []string) ([]*domain.DemandAnalysis, error) {
	results := make([]*domain.DemandAnalysis, 0, len(postalCodes))
	var errs []error
	for _, pc := range postalCodes {
		a, err := analyzer.Analyze(ctx, pc)
		if err != nil {
			logger.Error(ctx, "could not analyze postal code", zap.String("postal_code", pc), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", pc, err))

			continue
		}
		results = append(results, a)
	}

	return results, errors.Join(errs...)
}
