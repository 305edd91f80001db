// Package main provides the CLI entrypoint for the EV charging demand service.
// It wires subcommands (serve, migrate, import, analyze, report, jwt), loads
// configuration, and initializes logging.
package main

import (
	"context"
	"evdemand/internal/config"
	"evdemand/pkg/logger"
	"evdemand/pkg/storage/postgres"
	"flag"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "evdemand",
		Short: "Demand analysis of EV charging infrastructure in Berlin",
	}

	// cobra parses flags only when a command runs, but the config is needed
	// to build the commands. The flag is declared on cobra so it is accepted
	// and read up front with the standard flag package.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	fs := flag.NewFlagSet("evdemand", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.String("c", "config.yml", "The config file path")
	_ = fs.Parse(leadingConfigFlag(os.Args[1:]))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	if err := logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatal("could not set up logger: ", err)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		importCommand(cfg),
		analyzeCommand(cfg),
		reportCommand(cfg),
		JWTCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// leadingConfigFlag extracts "-c <path>" (or --config) from args so the
// standard flag set does not stop at the subcommand name.
func leadingConfigFlag(args []string) []string {
	for i, a := range args {
		switch {
		case (a == "-c" || a == "--config") && i+1 < len(args):
			return []string{"-c", args[i+1]}
		case len(a) > 3 && a[:3] == "-c=":
			return []string{a}
		case len(a) > 9 && a[:9] == "--config=":
			return []string{"-c=" + a[9:]}
		}
	}

	return nil
}
