package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/GabeGustafson/dota-matchups-CLI/internal/domain/matchup"
	"github.com/GabeGustafson/dota-matchups-CLI/internal/platform/logging"
)

const (
	EnvDev     = "dev"
	EnvStaging = "staging"
	EnvProd    = "prod"
)

// Config stores runtime configuration for the CLI.
type Config struct {
	AppEnv             string `validate:"required,oneof=dev staging prod"`
	HeroesFile         string `validate:"required"`
	DefaultVariant     string `validate:"required"`
	OpenDotaBaseURL    string `validate:"required,url"`
	OpenDotaTimeout    time.Duration
	OpenDotaMaxRetries int    `validate:"gte=0"`
	DotabuffBaseURL    string `validate:"required,url"`
	DotabuffUserAgent  string
	DotabuffTimeout    time.Duration
	DotabuffMaxRetries int `validate:"gte=0"`
	LogLevel           logging.Level
}

func Load() (Config, error) {
	openDotaTimeout, err := getEnvAsDuration("OPENDOTA_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse OPENDOTA_TIMEOUT: %w", err)
	}
	openDotaMaxRetries, err := getEnvAsInt("OPENDOTA_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse OPENDOTA_MAX_RETRIES: %w", err)
	}

	dotabuffTimeout, err := getEnvAsDuration("DOTABUFF_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse DOTABUFF_TIMEOUT: %w", err)
	}
	dotabuffMaxRetries, err := getEnvAsInt("DOTABUFF_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse DOTABUFF_MAX_RETRIES: %w", err)
	}

	cfg := Config{
		AppEnv:             strings.ToLower(strings.TrimSpace(getEnv("APP_ENV", EnvDev))),
		HeroesFile:         getEnv("HEROES_FILE", "heroes.json"),
		DefaultVariant:     getEnv("DEFAULT_VARIANT", string(matchup.VariantOpenDotaAPI)),
		OpenDotaBaseURL:    getEnv("OPENDOTA_BASE_URL", "https://api.opendota.com/api"),
		OpenDotaTimeout:    openDotaTimeout,
		OpenDotaMaxRetries: openDotaMaxRetries,
		DotabuffBaseURL:    getEnv("DOTABUFF_BASE_URL", "https://www.dotabuff.com"),
		DotabuffUserAgent:  getEnv("DOTABUFF_USER_AGENT", ""),
		DotabuffTimeout:    dotabuffTimeout,
		DotabuffMaxRetries: dotabuffMaxRetries,
		LogLevel:           parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}

	if cfg.OpenDotaTimeout <= 0 {
		return Config{}, fmt.Errorf("OPENDOTA_TIMEOUT must be > 0")
	}
	if cfg.DotabuffTimeout <= 0 {
		return Config{}, fmt.Errorf("DOTABUFF_TIMEOUT must be > 0")
	}
	if _, ok := matchup.ParseVariant(cfg.DefaultVariant); !ok {
		return Config{}, fmt.Errorf("DEFAULT_VARIANT %q is not a known variant", cfg.DefaultVariant)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return time.ParseDuration(value)
}
