// Package config loads all application configuration from environment
// variables. The resulting AppConfig is constructed once at startup and
// passed by reference into every component; nothing reads ambient
// environment state after Load returns.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// AppConfig holds all application-level configuration.
type AppConfig struct {
	// Port is the HTTP server port. Defaults to 8080.
	Port int `envconfig:"PORT" default:"8080"`

	// LogLevel sets the minimum log level (debug, info, warn, error). Defaults to info.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// DataDir is the root data directory for the delivery log database
	// and log files. Defaults to ~/.outreach.
	DataDir string `envconfig:"OUTREACH_DATA_DIR"`

	// SiteName is the publication name used in email subjects and bodies.
	SiteName string `envconfig:"OUTREACH_SITE_NAME" default:"Sagelight Press"`

	// ListStoreURL is the endpoint of the external subscriber list store.
	ListStoreURL string `envconfig:"LIST_STORE_URL" required:"true"`

	// AdminEmail receives the admin-facing copy of every notification pair.
	AdminEmail string `envconfig:"ADMIN_EMAIL" required:"true"`

	SMTP SMTPConfig
}

// SMTPConfig holds connection parameters for the SMTP provider.
type SMTPConfig struct {
	Host       string `envconfig:"SMTP_HOST" required:"true"`
	Port       int    `envconfig:"SMTP_PORT" default:"587"`
	Username   string `envconfig:"SMTP_USERNAME"`
	Password   string `envconfig:"SMTP_PASSWORD"`
	FromAddr   string `envconfig:"SMTP_FROM" required:"true"`
	Encryption string `envconfig:"SMTP_ENCRYPTION" default:"starttls"` // "none", "starttls", "ssl_tls"
}

// Load reads AppConfig from environment variables using envconfig.
// DataDir defaults to ~/.outreach if not set.
func Load() (*AppConfig, error) {
	var c AppConfig
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if c.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		c.DataDir = filepath.Join(home, ".outreach")
	}
	return &c, nil
}

// SlogLevel converts the LogLevel string to a slog.Level.
// Unknown values default to slog.LevelInfo.
func (c *AppConfig) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogDir returns the path to the log directory.
func (c *AppConfig) LogDir() string {
	return filepath.Join(c.DataDir, "logs")
}

// DBPath returns the path to the delivery log database file.
func (c *AppConfig) DBPath() string {
	return filepath.Join(c.DataDir, "outreach.db")
}
