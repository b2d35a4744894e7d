package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// PostgresConfig locates the run history database
type PostgresConfig struct {
	User     string `envconfig:"POSTGRES_USER" required:"true"`
	Password string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	Database string `envconfig:"POSTGRES_DB" required:"true"`
	Host     string `envconfig:"POSTGRES_HOSTNAME" required:"true"`
	Port     int    `envconfig:"POSTGRES_PORT" default:"5432"`
	SSLMode  string `envconfig:"POSTGRES_SSLMODE" default:"disable"`
}

// LoadPostgresConfig loads the run history database settings from environment variables
func LoadPostgresConfig() (*PostgresConfig, error) {
	var cfg PostgresConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process postgres config: %w", err)
	}
	return &cfg, nil
}

// ConnectionString returns a key/value lib/pq connection string
func (c *PostgresConfig) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}
