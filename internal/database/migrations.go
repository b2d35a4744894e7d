package database

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Schema creates the run history table and its indexes
const Schema = `
	CREATE TABLE IF NOT EXISTS suite_runs (
		id UUID PRIMARY KEY,
		scenario VARCHAR(255) NOT NULL,
		base_url TEXT NOT NULL,
		browser VARCHAR(32) NOT NULL,
		status VARCHAR(16) NOT NULL,
		failure_reason TEXT NOT NULL DEFAULT '',
		started_at TIMESTAMPTZ NOT NULL,
		finished_at TIMESTAMPTZ
	);

	CREATE INDEX IF NOT EXISTS idx_suite_runs_status ON suite_runs(status);
	CREATE INDEX IF NOT EXISTS idx_suite_runs_started_at ON suite_runs(started_at DESC);
	`

// RunMigrations creates the necessary database tables
func RunMigrations() error {
	if DB == nil {
		return fmt.Errorf("database connection not initialized")
	}
	if err := Migrate(DB); err != nil {
		return err
	}

	log.Info().Msg("database migrations completed")
	return nil
}

// Migrate applies Schema to the given connection
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(Schema); err != nil {
		return fmt.Errorf("failed to create suite_runs table: %w", err)
	}
	return nil
}
