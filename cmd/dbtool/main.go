// Command dbtool prepares the PostgreSQL schema and demo data outside of the
// service: migrate, seed, and reset.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"depot/cmd"
	"depot/internal/adapters/out/postgres"
	"depot/internal/core/application/usecases/commands"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:          "dbtool",
		Short:        "Manage the depot database",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "env file with DB_* settings")

	root.AddCommand(
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the tables",
			RunE: func(_ *cobra.Command, _ []string) error {
				return withDatabase(envFile, func(_ context.Context, db *gorm.DB, _ cmd.Config, logger *slog.Logger) error {
					if err := postgres.Migrate(db); err != nil {
						return err
					}
					logger.Info("Schema migrated")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Insert the demo warehouse and packages if no warehouse exists",
			RunE: func(_ *cobra.Command, _ []string) error {
				return withDatabase(envFile, seed)
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Drop all tables, migrate and seed again",
			RunE: func(_ *cobra.Command, _ []string) error {
				return withDatabase(envFile, func(ctx context.Context, db *gorm.DB, config cmd.Config, logger *slog.Logger) error {
					if err := postgres.Drop(db); err != nil {
						return err
					}
					if err := postgres.Migrate(db); err != nil {
						return err
					}
					logger.Info("Schema recreated")
					return seed(ctx, db, config, logger)
				})
			},
		},
	)

	return root
}

func seed(ctx context.Context, db *gorm.DB, config cmd.Config, logger *slog.Logger) error {
	root := cmd.NewPostgresCompositionRoot(config, db, logger)
	seeded, err := root.CreateSeedDemoDataCommandHandler().Handle(ctx, commands.NewSeedDemoDataCommand())
	if err != nil {
		return err
	}
	if seeded {
		logger.Info("Demo data seeded", "warehouse_id", commands.DemoWarehouseID().String())
	} else {
		logger.Info("Warehouses exist, nothing seeded")
	}
	return nil
}

// withDatabase opens the database through lib/pq and hands the pool to GORM.
func withDatabase(
	envFile string,
	fn func(ctx context.Context, db *gorm.DB, config cmd.Config, logger *slog.Logger) error,
) error {
	config, err := cmd.LoadConfig(envFile)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: config.LogLevel})).
		With("component", "dbtool")

	sqlDB, err := sql.Open("postgres", config.DSN())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer sqlDB.Close()

	ctx := context.Background()
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	db, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("open gorm: %w", err)
	}

	return fn(ctx, db, config, logger)
}
