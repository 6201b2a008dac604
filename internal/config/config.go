package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultHTTPPort    = "8080"
	defaultDatabaseURL = ":memory:"
	defaultJWTTTL      = "12h"
	defaultJWTSecret   = "change-me-jwt-secret"
	defaultMQExchange  = "bwbackbone.events"
)

type Config struct {
	AppEnv           string
	HTTPPort         string
	DatabaseURL      string
	JWTSecret        string
	JWTTTL           time.Duration
	RabbitMQURL      string
	RabbitMQExchange string
}

// Load reads the configuration from the environment, applying development
// defaults. The default database is an in-memory SQLite store so the server
// runs with no external services at all.
func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:           strings.ToLower(getEnv("APP_ENV", "dev")),
		HTTPPort:         getEnv("HTTP_PORT", defaultHTTPPort),
		DatabaseURL:      getEnv("DATABASE_URL", defaultDatabaseURL),
		JWTSecret:        strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
		RabbitMQURL:      strings.TrimSpace(os.Getenv("RABBITMQ_URL")),
		RabbitMQExchange: getEnv("RABBITMQ_EXCHANGE", defaultMQExchange),
	}

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if isProdLike(cfg.AppEnv) {
		if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.DatabaseURL == defaultDatabaseURL {
			return fmt.Errorf("in prod/release DATABASE_URL must point at a real database")
		}
	}
	return nil
}

func isProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
