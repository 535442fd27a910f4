package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"depot/cmd"
	httpin "depot/internal/adapters/in/http"
	"depot/internal/adapters/out/postgres"
	"depot/internal/core/application/usecases/commands"

	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := newCompositionRoot(config, logger)

	if config.SeedDemoData {
		seeded, err := app.CreateSeedDemoDataCommandHandler().Handle(ctx, commands.NewSeedDemoDataCommand())
		if err != nil {
			log.Fatalf("Error seeding demo data: %v", err)
		}
		if seeded {
			logger.InfoContext(ctx, "Demo data seeded", "warehouse_id", commands.DemoWarehouseID().String())
		}
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	if err := startWebServer(ctx, app, config.HTTPPort, logger); err != nil {
		logger.ErrorContext(ctx, "HTTP server stopped with error", "error", err)
	}
}

func newCompositionRoot(config cmd.Config, logger *slog.Logger) cmd.CompositionRoot {
	if config.Store == cmd.StoreMemory {
		logger.Info("Using in-memory store")
		return cmd.NewMemoryCompositionRoot(config, logger)
	}

	gormDB, err := openDatabase(config)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	logger.Info("Using PostgreSQL store", "host", config.DBHost, "database", config.DBName)

	return cmd.NewPostgresCompositionRoot(config, gormDB, logger)
}

func openDatabase(config cmd.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(gorm_postgres.Open(config.DSN()), &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(config.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(config.DBMaxOpenConns)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	return gormDB, nil
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string, logger *slog.Logger) error {
	e, err := httpin.NewEcho(app.CreateHTTPServer(), logger)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "port", port)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
