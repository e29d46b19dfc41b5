package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds the configuration for the dinefind service.
// Environment variables are parsed from the DINEFIND_ prefix.
type Config struct {
	// DBDriver selects the store backend: sqlite or postgres. "auto" picks
	// postgres when a DSN is present, sqlite otherwise.
	DBDriver string `envconfig:"DB_DRIVER" default:"auto"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Postgres Configuration
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	// SQLite Configuration
	SQLitePath string `envconfig:"SQLITE_PATH" default:"data/dinefind.db"`

	// Search provider (Yelp-style business search API)
	SearchURL    string `envconfig:"SEARCH_URL" default:"https://api.yelp.com"`
	SearchAPIKey string `envconfig:"SEARCH_API_KEY" default:""`

	// RecommendLimit caps a recommendation result.
	RecommendLimit int `envconfig:"RECOMMEND_LIMIT" default:"10"`
}

// ResolveDefaults validates the driver choice and derives DBDriver when set
// to "auto" or empty.
func (c *Config) ResolveDefaults() error {
	if c.DBDriver == "" || c.DBDriver == "auto" {
		if c.PostgresDSN != "" {
			c.DBDriver = "postgres"
		} else {
			c.DBDriver = "sqlite"
		}
	}
	switch c.DBDriver {
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("DB_DRIVER=postgres requires POSTGRES_DSN")
		}
	case "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}
	if c.RecommendLimit <= 0 {
		return fmt.Errorf("RECOMMEND_LIMIT must be positive, got %d", c.RecommendLimit)
	}
	return nil
}

// New creates a Config by parsing DINEFIND_-prefixed environment variables.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("DINEFIND", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("db_driver", cfg.DBDriver).
		Int("port", cfg.HTTPPort).
		Int("recommend_limit", cfg.RecommendLimit).
		Str("search_url", cfg.SearchURL).
		Bool("postgres_dsn_present", cfg.PostgresDSN != "").
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config suitable for tests: in-memory sqlite and no
// external search provider.
func NewForTesting() *Config {
	return &Config{
		DBDriver:       "sqlite",
		HTTPPort:       8080,
		SQLitePath:     "",
		RecommendLimit: 10,
	}
}

// GetHTTPAddr returns the HTTP server address.
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
