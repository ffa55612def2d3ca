package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagelight/outreach/internal/config"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LIST_STORE_URL", "https://script.example/exec")
	t.Setenv("ADMIN_EMAIL", "editors@sagelight.example")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_FROM", "no-reply@sagelight.example")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("OUTREACH_DATA_DIR", t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "Sagelight Press", cfg.SiteName)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, "starttls", cfg.SMTP.Encryption)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("LIST_STORE_URL", "")
	t.Setenv("ADMIN_EMAIL", "editors@sagelight.example")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_FROM", "no-reply@sagelight.example")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("OUTREACH_DATA_DIR", t.TempDir())
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SMTP_ENCRYPTION", "ssl_tls")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, "ssl_tls", cfg.SMTP.Encryption)
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{level: "debug", want: slog.LevelDebug},
		{level: "warn", want: slog.LevelWarn},
		{level: "error", want: slog.LevelError},
		{level: "info", want: slog.LevelInfo},
		{level: "bogus", want: slog.LevelInfo},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			c := &config.AppConfig{LogLevel: tc.level}
			assert.Equal(t, tc.want, c.SlogLevel())
		})
	}
}

func TestPaths(t *testing.T) {
	c := &config.AppConfig{DataDir: "/var/lib/outreach"}
	assert.Equal(t, "/var/lib/outreach/logs", c.LogDir())
	assert.Equal(t, "/var/lib/outreach/outreach.db", c.DBPath())
}
