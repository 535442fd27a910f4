package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	HTTPPort                string
	Store                   string
	DBHost                  string
	DBPort                  string
	DBUser                  string
	DBPassword              string
	DBName                  string
	DBSslMode               string
	DBMaxOpenConns          int
	SeedDemoData            bool
	OccupancyReportSchedule string
	LogLevel                slog.Level
}

// LoadConfig reads the environment after loading envFile into it. A missing
// env file is not an error; variables already set in the environment win.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	config := Config{
		HTTPPort:                envOr("HTTP_PORT", "8080"),
		Store:                   strings.ToLower(envOr("STORE", StorePostgres)),
		DBHost:                  envOr("DB_HOST", "localhost"),
		DBPort:                  envOr("DB_PORT", "5432"),
		DBUser:                  os.Getenv("DB_USER"),
		DBPassword:              os.Getenv("DB_PASSWORD"),
		DBName:                  os.Getenv("DB_NAME"),
		DBSslMode:               envOr("DB_SSLMODE", "disable"),
		OccupancyReportSchedule: envOr("OCCUPANCY_REPORT_SCHEDULE", "0 * * * * *"),
	}

	var err error
	if config.DBMaxOpenConns, err = strconv.Atoi(envOr("DB_MAX_OPEN_CONNS", "10")); err != nil {
		return Config{}, fmt.Errorf("DB_MAX_OPEN_CONNS: %w", err)
	}
	if config.SeedDemoData, err = strconv.ParseBool(envOr("SEED_DEMO_DATA", "true")); err != nil {
		return Config{}, fmt.Errorf("SEED_DEMO_DATA: %w", err)
	}
	if err = config.LogLevel.UnmarshalText([]byte(envOr("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	if config.Store != StorePostgres && config.Store != StoreMemory {
		return Config{}, fmt.Errorf("STORE must be %q or %q, got %q", StorePostgres, StoreMemory, config.Store)
	}

	return config, nil
}

// DSN is the PostgreSQL connection string in key=value form.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
