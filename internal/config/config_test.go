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
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, int64(20*1024*1024), cfg.Upload.MaxFileSize)
	assert.True(t, cfg.Rate.Enabled)
	assert.Equal(t, 60, cfg.Rate.RequestsPerMinute)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("UPLOAD_MAX_FILE_SIZE", "1048576")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SERVER_READ_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, int64(1048576), cfg.Upload.MaxFileSize)
	assert.False(t, cfg.Rate.Enabled)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		value string
	}{
		{name: "non-numeric port", env: "SERVER_PORT", value: "abc"},
		{name: "bad duration", env: "SERVER_READ_TIMEOUT", value: "fast"},
		{name: "bad boolean", env: "RATE_LIMIT_ENABLED", value: "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		value string
	}{
		{name: "port out of range", env: "SERVER_PORT", value: "70000"},
		{name: "zero max file size", env: "UPLOAD_MAX_FILE_SIZE", value: "-1"},
		{name: "unknown log level", env: "LOG_LEVEL", value: "verbose"},
		{name: "unknown log format", env: "LOG_FORMAT", value: "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestServerConfig_Addr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0.0.0.0:8080", (&ServerConfig{Host: "0.0.0.0", Port: 8080}).Addr())
	assert.Equal(t, ":9090", (&ServerConfig{Port: 9090}).Addr())
}

func TestConfig_StringMasksNothingSensitive(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	cfg.Server.Port = 8080
	assert.Contains(t, cfg.String(), "Port: 8080")
}
