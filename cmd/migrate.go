package main

import (
	"context"
	"database/sql"
	root "evdemand"
	"evdemand/internal/config"
	"evdemand/pkg/logger"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand applies the embedded schema migrations and then river's own
// tables, both to their latest version.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db, ok := strg.DB.(*sql.DB)
			if !ok {
				return fmt.Errorf("unexpected database handle %T", strg.DB)
			}

			if err := migrateSchema(ctx, db); err != nil {
				return err
			}

			return migrateRiver(ctx, db)
		},
	}

	return cmd
}

func migrateSchema(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("could not migrate schema: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("could not read schema version: %w", err)
	}
	logger.Info(ctx, "schema migrated", zap.Int64("version", version))

	return nil
}

func migrateRiver(ctx context.Context, db *sql.DB) error {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river migrator: %w", err)
	}

	all := migrator.AllVersions()
	latest := all[len(all)-1].Version
	current := 0
	existing, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return fmt.Errorf("could not get existing river migrations: %w", err)
	}
	if len(existing) > 0 {
		current = existing[len(existing)-1].Version
	}
	if latest <= current {
		logger.Info(ctx, "river tables up to date", zap.Int("version", current))

		return nil
	}

	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: latest,
	}); err != nil {
		return fmt.Errorf("could not migrate river tables: %w", err)
	}
	logger.Info(ctx, "river tables migrated", zap.Int("from", current), zap.Int("to", latest))

	return nil
}
