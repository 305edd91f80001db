package main

import (
	"context"
	"evdemand/internal/config"
	"evdemand/pkg/domain"
	"evdemand/pkg/storage"
	"fmt"

	"github.com/spf13/cobra"
)

// reportCommand lists stored analyses with the installed charging capacity of
// each area, ranked against all reported areas.
func reportCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Prints stored analyses with their capacity category",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			if err := validateFormat(format); err != nil {
				return err
			}

			ctx := context.Background()
			pg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			analyses, err := pg.FindAllAnalyses(ctx)
			if err != nil {
				return fmt.Errorf("could not list analyses: %w", err)
			}

			rows, p33, p66, err := capacityReport(ctx, referenceSource(ctx, cfg, pg), analyses)
			if err != nil {
				return err
			}

			return renderReport(cmd.OutOrStdout(), rows, p33, p66, format)
		},
	}

	cmd.Flags().StringP("format", "f", formatTable, "Output format: table or json")

	return cmd
}

// capacityReport sums the rated power per area and classifies it against the
// 33rd and 66th percentile of all areas in the report.
func capacityReport(ctx context.Context,
	stations storage.StationRepository,
	analyses []*domain.DemandAnalysis) ([]capacityRow, float64, float64, error) {
	rows := make([]capacityRow, 0, len(analyses))
	totals := make([]float64, 0, len(analyses))
	for _, a := range analyses {
		found, err := stations.FindStationsByPostalCode(ctx, a.PostalCode())
		if err != nil {
			return nil, 0, 0, fmt.Errorf("could not get stations of %s: %w", a.PostalCode(), err)
		}
		total := domain.NewStationSearchResult(a.PostalCode(), found).TotalCapacityKW()
		rows = append(rows, capacityRow{Analysis: a, TotalCapacityKW: total})
		totals = append(totals, total)
	}

	p33, p66 := domain.CapacityThresholds(totals)
	for i := range rows {
		rows[i].Category = domain.ClassifyCapacity(rows[i].TotalCapacityKW, p33, p66)
	}

	return rows, p33, p66, nil
}
