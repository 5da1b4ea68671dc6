package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "http://localhost:5000/api", cfg.Remote.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Remote.Timeout)
	assert.Equal(t, time.Minute, cfg.Refresh.Interval)
	assert.Empty(t, cfg.Seed.File)
	assert.Empty(t, cfg.Auth.AdminAPIKey)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, http://localhost:3000")
	t.Setenv("REMOTE_BASE_URL", "http://importer:5000/api")
	t.Setenv("REMOTE_TIMEOUT", "3s")
	t.Setenv("REFRESH_INTERVAL", "30s")
	t.Setenv("SEED_FILE", "/etc/catalog/seed.yaml")
	t.Setenv("ADMIN_API_KEY", "secret-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "http://importer:5000/api", cfg.Remote.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Remote.Timeout)
	assert.Equal(t, 30*time.Second, cfg.Refresh.Interval)
	assert.Equal(t, "/etc/catalog/seed.yaml", cfg.Seed.File)
	assert.Equal(t, "secret-key", cfg.Auth.AdminAPIKey)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("REFRESH_INTERVAL", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, time.Minute, cfg.Refresh.Interval)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:  ServerConfig{Port: 8080},
			Remote:  RemoteConfig{BaseURL: "http://localhost:5000/api", Timeout: time.Second},
			Refresh: RefreshConfig{Interval: time.Minute},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"port too high", func(c *Config) { c.Server.Port = 70000 }},
		{"missing remote", func(c *Config) { c.Remote.BaseURL = "" }},
		{"relative remote", func(c *Config) { c.Remote.BaseURL = "/api" }},
		{"zero timeout", func(c *Config) { c.Remote.Timeout = 0 }},
		{"zero interval", func(c *Config) { c.Refresh.Interval = 0 }},
	}

	assert.NoError(t, valid().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
