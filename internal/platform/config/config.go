// Package config loads and validates environment configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

// Config holds all runtime settings. Values come from the environment,
// optionally seeded by a .env file in development.
type Config struct {
	AppEnv string `env:"APP_ENV" default:"development"`
	Port   string `env:"PORT" default:"8080"`

	// RedisURL selects the dataset store backend: set for the Redis
	// store (multi-instance), empty for the in-memory store.
	RedisURL string `env:"REDIS_URL"`

	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`

	SessionSecret string        `env:"SESSION_SECRET"`
	SessionMaxAge time.Duration `env:"SESSION_MAX_AGE" default:"168h"` // 7 days

	// DatasetTTL bounds how long an uploaded dataset stays queryable.
	DatasetTTL time.Duration `env:"DATASET_TTL" default:"24h"`

	// MaxUploadSize is an echo body-limit spec such as "8M".
	MaxUploadSize       string  `env:"MAX_UPLOAD_SIZE" default:"8M"`
	UploadRatePerMinute float64 `env:"UPLOAD_RATE_PER_MINUTE" default:"10"`

	// Recommendation cutoffs; see analysis.Thresholds.
	RecStrengthThreshold float64 `env:"REC_STRENGTH_THRESHOLD" default:"0.5"`
	RecImproveThreshold  float64 `env:"REC_IMPROVE_THRESHOLD" default:"-0.3"`
}

// Load reads the environment (and .env if present) into a validated Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.AppEnv == "production" && cfg.SessionSecret == "" {
		return errors.New("SESSION_SECRET is required in production")
	}
	if cfg.SessionSecret != "" && len(cfg.SessionSecret) < 32 {
		return errors.New("SESSION_SECRET must be at least 32 characters")
	}

	if cfg.RecStrengthThreshold <= cfg.RecImproveThreshold {
		return fmt.Errorf("REC_STRENGTH_THRESHOLD (%g) must be greater than REC_IMPROVE_THRESHOLD (%g)",
			cfg.RecStrengthThreshold, cfg.RecImproveThreshold)
	}
	if cfg.RecStrengthThreshold <= 0 || cfg.RecStrengthThreshold > 1 {
		return fmt.Errorf("REC_STRENGTH_THRESHOLD must be in (0, 1], got %g", cfg.RecStrengthThreshold)
	}
	if cfg.RecImproveThreshold >= 0 || cfg.RecImproveThreshold < -1 {
		return fmt.Errorf("REC_IMPROVE_THRESHOLD must be in [-1, 0), got %g", cfg.RecImproveThreshold)
	}

	if cfg.DatasetTTL <= 0 {
		return errors.New("DATASET_TTL must be positive")
	}
	if cfg.UploadRatePerMinute <= 0 {
		return errors.New("UPLOAD_RATE_PER_MINUTE must be positive")
	}

	return nil
}
