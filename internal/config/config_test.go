package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ROBOTDB_DATABASE_PATH", "")
	t.Setenv("ROBOTDB_LOG_LEVEL", "")

	cfg := Load()

	assert.Equal(t, "data/robot_data.db", cfg.DatabasePath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ROBOTDB_DATABASE_PATH", "/tmp/custom.db")
	t.Setenv("ROBOTDB_LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "/tmp/custom.db", cfg.DatabasePath)
	assert.Equal(t, "debug", cfg.LogLevel)
}
