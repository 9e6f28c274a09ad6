package config

import (
	"os"
	"time"
)

// Listing holds the list-page constants. They are configuration, not global
// mutable state: the service receives them explicitly.
type Listing struct {
	PageSize int
	Ordering string
}

func DefaultListing() Listing {
	return Listing{
		PageSize: 10,
		// id is the tiebreaker so the order stays total when two rows share
		// a creation timestamp.
		Ordering: "created_at DESC, id DESC",
	}
}

type AppConfig struct {
	Port        string
	Environment string

	// DatabaseURL selects the postgres adapter when set; otherwise the
	// sqlite file at DatabasePath is used.
	DatabaseURL    string
	DatabasePath   string
	MigrationsPath string

	OTLPEndpoint     string
	TelemetryEnabled bool

	RateLimitEnabled bool
	PageCacheEnabled bool
	PageCacheTTL     time.Duration

	Listing Listing
}

func Load() *AppConfig {
	cfg := &AppConfig{
		Port:             envOr("PORT", "8080"),
		Environment:      envOr("APP_ENV", "development"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		DatabasePath:     envOr("DATABASE_PATH", "database.db"),
		MigrationsPath:   os.Getenv("MIGRATIONS_PATH"),
		OTLPEndpoint:     envOr("OTLP_ENDPOINT", "localhost:4317"),
		TelemetryEnabled: os.Getenv("TELEMETRY_ENABLED") == "true",
		RateLimitEnabled: os.Getenv("RATE_LIMIT_ENABLED") == "true",
		PageCacheEnabled: os.Getenv("PAGE_CACHE_ENABLED") == "true",
		PageCacheTTL:     3 * time.Second,
		Listing:          DefaultListing(),
	}

	if cfg.Environment == "production" {
		cfg.RateLimitEnabled = true
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
