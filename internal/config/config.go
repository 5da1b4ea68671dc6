package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for question-catalog
type Config struct {
	Server  ServerConfig
	Remote  RemoteConfig
	Refresh RefreshConfig
	Seed    SeedConfig
	Auth    AuthConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
}

// RemoteConfig holds import service configuration
type RemoteConfig struct {
	BaseURL string
	Timeout time.Duration
}

// RefreshConfig holds refresh worker configuration
type RefreshConfig struct {
	Interval time.Duration
}

// SeedConfig holds seed data configuration. An empty File means the embedded seed.
type SeedConfig struct {
	File string
}

// AuthConfig guards write routes when AdminAPIKey is set
type AuthConfig struct {
	AdminAPIKey string
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Remote: RemoteConfig{
			BaseURL: getEnv("REMOTE_BASE_URL", "http://localhost:5000/api"),
			Timeout: getEnvAsDuration("REMOTE_TIMEOUT", 10*time.Second),
		},
		Refresh: RefreshConfig{
			Interval: getEnvAsDuration("REFRESH_INTERVAL", time.Minute),
		},
		Seed: SeedConfig{
			File: getEnv("SEED_FILE", ""),
		},
		Auth: AuthConfig{
			AdminAPIKey: getEnv("ADMIN_API_KEY", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Remote.BaseURL == "" {
		return fmt.Errorf("remote base URL is required")
	}
	u, err := url.Parse(c.Remote.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid remote base URL: %q", c.Remote.BaseURL)
	}

	if c.Remote.Timeout <= 0 {
		return fmt.Errorf("remote timeout must be positive")
	}

	if c.Refresh.Interval <= 0 {
		return fmt.Errorf("refresh interval must be positive")
	}

	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
