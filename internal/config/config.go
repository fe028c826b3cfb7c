// Package config provides rustdesk-id configuration through environment variables.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvUUID      = "RUSTDESK_ID_UUID"
	EnvClipboard = "RUSTDESK_ID_CLIPBOARD"
	EnvLogLevel  = "RUSTDESK_ID_LOG_LEVEL"
)

// Config holds rustdesk-id configuration.
type Config struct {
	// UUID is the seed to use instead of the machine identifier. Empty means look it up.
	UUID string
	// Clipboard enables copying results to the clipboard.
	Clipboard bool
	// LogLevel is the logging level ("debug", "info", "warn", "error").
	LogLevel string
}

// Load loads configuration from environment variables and the nearest .env file.
// Variables already set in the environment take precedence over .env entries.
func Load() *Config {
	loadDotEnv()

	return &Config{
		UUID:      env.GetString(EnvUUID, ""),
		Clipboard: env.GetBool(EnvClipboard, true),
		LogLevel:  env.GetString(EnvLogLevel, "warn"),
	}
}

// SlogLevel maps LogLevel to a slog level. Unknown values map to warn.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// loadDotEnv loads the first .env file found walking up from the working directory.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
