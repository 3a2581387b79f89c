// Command createdb creates the target database if it does not exist.
// It connects as a privileged role to the administrative database and
// is meant to be run once, before migrations.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/medibook/booking-api/config"
	"github.com/medibook/booking-api/pkg/logger"
)

func main() {
	godotenv.Load()
	logger.Setup("createdb")

	adminCfg, err := config.LoadAdminConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load admin configuration")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := run(ctx, adminCfg, cfg.Database.Name); err != nil {
		logFailure(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, adminCfg *config.AdminConfig, dbName string) error {
	db, err := sqlx.ConnectContext(ctx, "postgres", adminCfg.DSN())
	if err != nil {
		return fmt.Errorf("failed to connect to administrative database: %w", err)
	}
	// Always release the administrative connection, success or failure.
	defer func() {
		db.Close()
		log.Info().Msg("administrative connection closed")
	}()

	log.Info().Str("database", adminCfg.Database).Msg("connected to administrative database")

	var one int
	err = db.GetContext(ctx, &one, `SELECT 1 FROM pg_database WHERE datname = $1`, dbName)
	if err == nil {
		log.Info().Str("database", dbName).Msg("database already exists, no action needed")
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to check for database: %w", err)
	}

	// CREATE DATABASE does not accept bind parameters. The name is a
	// fixed configuration value, never user input, so interpolating it
	// is safe.
	if _, err := db.ExecContext(ctx, fmt.Sprintf(`CREATE DATABASE %q`, dbName)); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	log.Info().Str("database", dbName).Msg("database created successfully")
	return nil
}

// logFailure classifies the common administrative failures into
// actionable messages; anything else is logged raw.
func logFailure(err error) {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "password authentication failed"):
		log.Error().Err(err).Msg("authentication failed: check the superuser password (PG_SUPERUSER_PASSWORD)")
	case strings.Contains(msg, "does not exist") && strings.Contains(msg, "role"):
		log.Error().Err(err).Msg("the specified administrative role does not exist")
	case strings.Contains(msg, "permission denied to create database"):
		log.Error().Err(err).Msg("the administrative role lacks CREATE DATABASE privileges")
	default:
		log.Error().Err(err).Msg("database creation failed")
	}
}
