package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/rankandrent/Packaginghippo-sub002/internal/metadata"
)

// Config holds all configuration for the storefront tools.
type Config struct {
	// Server
	Port        string
	BaseURL     string
	Environment string // development, staging, production
	SiteName    string

	// Database
	DatabaseURL  string
	DBMaxConns   int32
	DBMinConns   int32
	QueryTimeout time.Duration // 0 disables the per-command deadline

	// Logging
	LogLevel  string
	LogFormat string // json, text

	// Tracing
	TraceExporter string // none, stdout
}

// Load reads configuration from environment variables.
// In development, it will also load from a .env file if present.
//
// A missing DATABASE_URL is not an error here; commands that need the
// database fail when they try to connect.
func Load() (*Config, error) {
	// Load .env file in development (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		SiteName:    getEnv("SITE_NAME", metadata.DefaultSiteName),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		TraceExporter: getEnv("TRACE_EXPORTER", "none"),
	}

	maxConns, err := getEnvInt32("DB_MAX_CONNS", 10)
	if err != nil {
		return nil, err
	}
	minConns, err := getEnvInt32("DB_MIN_CONNS", 2)
	if err != nil {
		return nil, err
	}
	if minConns > maxConns {
		return nil, fmt.Errorf("DB_MIN_CONNS (%d) must not exceed DB_MAX_CONNS (%d)", minConns, maxConns)
	}
	cfg.DBMaxConns = maxConns
	cfg.DBMinConns = minConns

	timeout, err := getEnvDuration("QUERY_TIMEOUT", 0)
	if err != nil {
		return nil, err
	}
	cfg.QueryTimeout = timeout

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv returns the value of an environment variable or a fallback default.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt32(key string, fallback int32) (int32, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(value, 10, 32)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, value)
	}
	return int32(n), nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%s must be a non-negative duration, got %q", key, value)
	}
	return d, nil
}
