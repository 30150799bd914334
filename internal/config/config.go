package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
// It is the single source of truth for runtime parameters.
type Config struct {
	Port          string
	Env           string
	SessionSecret string
	SessionTTL    time.Duration

	Redis    RedisConfig
	Provider ProviderConfig
}

// RedisConfig contains Redis connection parameters.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// ProviderConfig contains the upstream VTU provider connection settings.
type ProviderConfig struct {
	BaseURL string
	APIKey  string
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first. It returns a populated
// Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that production
	// environments relying solely on real environment variables keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.Port = getEnv("PORT", "8080")
	cfg.Env = getEnv("ENV", "development")
	cfg.SessionSecret = getEnv("SESSION_SECRET", "")

	// Redis
	cfg.Redis = RedisConfig{
		Host:     getEnv("REDIS_HOST", "redis"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
	}

	// Upstream provider
	cfg.Provider = ProviderConfig{
		BaseURL: getEnv("VTUPAY_BASE_URL", ""),
		APIKey:  getEnv("VTUPAY_API_KEY", ""),
	}

	var err error
	if cfg.SessionTTL, err = parseDurationEnv("SESSION_TTL", "30m"); err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	if cfg.Provider.BaseURL == "" {
		return nil, errors.New("provider configuration incomplete: ensure VTUPAY_BASE_URL is set")
	}
	if cfg.SessionSecret == "" {
		return nil, errors.New("SESSION_SECRET must be set to validate session tokens")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt returns the value of an environment variable as an integer or a default if empty/invalid.
func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// parseDurationEnv reads an environment variable and parses it as time.Duration.
// If the variable is empty, it falls back to the provided default value.
func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be > 0")
	}
	return d, nil
}
