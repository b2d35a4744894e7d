package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// ServerConfig holds configuration for the snapshot server
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

// LoadServerConfig loads server configuration from environment variables
func LoadServerConfig() (ServerConfig, error) {
	var cfg ServerConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("failed to process server config: %w", err)
	}
	return cfg, nil
}
