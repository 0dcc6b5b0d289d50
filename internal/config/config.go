package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config lists the tunable parameters for the robotdb tools.
type Config struct {
	DatabasePath string
	LogLevel     string
}

const (
	defaultDatabasePath = "data/robot_data.db"
	defaultLogLevel     = "info"
)

// Load derives configuration values from environment variables, falling back
// to defaults. A .env file in the working directory is honoured when present.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		DatabasePath: defaultDatabasePath,
		LogLevel:     defaultLogLevel,
	}

	if v := os.Getenv("ROBOTDB_DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}

	if v := os.Getenv("ROBOTDB_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg
}
