package main

import (
	"context"
	"evdemand/internal/config"
	"evdemand/pkg/logger"
	"evdemand/pkg/storage"
	"evdemand/pkg/storage/csvstore"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// importCommand loads the CSV exports and replaces the reference tables in a
// single transaction, so readers never see a half imported dataset.
func importCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Imports stations, population and boundaries from the CSV files",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			store, err := csvstore.Load(ctx, csvOptions(cfg))
			if err != nil {
				return fmt.Errorf("could not load csv data: %w", err)
			}

			pg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			err = pg.WithTx(ctx, func(tx storage.AllStorage) error {
				if err := tx.ReplaceStations(ctx, store.Stations()); err != nil {
					return err
				}
				if err := tx.ReplacePopulation(ctx, store.Population()); err != nil {
					return err
				}

				return tx.ReplaceGeoLocations(ctx, store.GeoLocations())
			})
			if err != nil {
				return fmt.Errorf("could not import reference data: %w", err)
			}

			logger.Info(ctx, "reference data imported",
				zap.Int("stations", len(store.Stations())),
				zap.Int("postal_codes", len(store.Population())),
				zap.Int("boundaries", len(store.GeoLocations())))
			renderLoadStats(cmd.OutOrStdout(), store.Stats())

			return nil
		},
	}

	return cmd
}
