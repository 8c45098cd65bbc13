package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

type Config struct {
	// Database
	DBPath string

	// Logging
	LogLevel slog.Level

	// Presentation defaults
	DefaultTheme string
}

func Load() *Config {
	cfg := &Config{
		DBPath:       getEnv("FINANZAS_DB_PATH", DefaultDBPath()),
		LogLevel:     getEnvLevel("FINANZAS_LOG_LEVEL", slog.LevelInfo),
		DefaultTheme: getEnv("FINANZAS_THEME", "light"),
	}

	return cfg
}

// DefaultDBPath returns the platform data directory for the store. The
// directory survives app upgrades; it is created lazily by the storage
// layer when the database is first opened.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "finanzas.db"
	}

	var dataDir string
	switch runtime.GOOS {
	case "windows":
		dataDir = filepath.Join(home, "AppData", "Local", "Finanzas")
	case "darwin":
		dataDir = filepath.Join(home, "Library", "Application Support", "Finanzas")
	default:
		dataDir = filepath.Join(home, ".finanzas")
	}
	return filepath.Join(dataDir, "finanzas.db")
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if c.DBPath == "" {
		errors = append(errors, "database path cannot be empty")
	} else {
		dir := filepath.Dir(c.DBPath)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create database directory '%s': %v", dir, err))
				}
			}
		}
	}

	if c.DefaultTheme != "light" && c.DefaultTheme != "dark" {
		errors = append(errors, fmt.Sprintf("invalid theme '%s': must be 'light' or 'dark'", c.DefaultTheme))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvLevel(key string, defaultValue slog.Level) slog.Level {
	if value := os.Getenv(key); value != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(value)); err == nil {
			return level
		}
	}
	return defaultValue
}
