package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/themizzi/swaglabs-e2e/internal/config"

	_ "github.com/lib/pq"
)

var DB *sql.DB

// Connect establishes a connection to the run history database
func Connect() error {
	pgConfig, err := config.LoadPostgresConfig()
	if err != nil {
		return fmt.Errorf("failed to load postgres config: %w", err)
	}

	DB, err = sql.Open("postgres", pgConfig.ConnectionString())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	DB.SetMaxOpenConns(5)
	DB.SetMaxIdleConns(2)
	DB.SetConnMaxLifetime(5 * time.Minute)

	if err = DB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	log.Debug().Str("host", pgConfig.Host).Str("db", pgConfig.Database).Msg("connected to run history database")
	return nil
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
