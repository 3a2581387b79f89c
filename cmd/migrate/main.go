// Command migrate applies the embedded SQL migrations in filename
// order. Applied versions are tracked in schema_migrations, so the
// command is safe to re-run.
package main

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/medibook/booking-api/config"
	"github.com/medibook/booking-api/internal/repository/postgres"
	"github.com/medibook/booking-api/migrations"
	"github.com/medibook/booking-api/pkg/logger"
)

func main() {
	godotenv.Load()
	logger.Setup("migrate")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	applied, err := run(ctx, db)
	if err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	log.Info().Int("applied", applied).Msg("migrations up to date")
}

func run(ctx context.Context, db *sqlx.DB) (int, error) {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version text PRIMARY KEY,
			applied_at timestamptz NOT NULL DEFAULT now()
		)
	`); err != nil {
		return 0, fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	entries, err := migrations.FS.ReadDir(".")
	if err != nil {
		return 0, fmt.Errorf("failed to read migrations: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	applied := 0
	for _, name := range names {
		done, err := apply(ctx, db, name)
		if err != nil {
			return applied, fmt.Errorf("migration %s: %w", name, err)
		}
		if done {
			log.Info().Str("migration", name).Msg("applied")
			applied++
		}
	}
	return applied, nil
}

func apply(ctx context.Context, db *sqlx.DB, name string) (bool, error) {
	var exists bool
	err := db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)`, name)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	stmt, err := migrations.FS.ReadFile(name)
	if err != nil {
		return false, err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return false, err
	}
	if _, err := tx.ExecContext(ctx, string(stmt)); err != nil {
		tx.Rollback()
		return false, err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version) VALUES ($1)`, name); err != nil {
		tx.Rollback()
		return false, err
	}
	return true, tx.Commit()
}
