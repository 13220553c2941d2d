package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"wastecollection/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"HTTP_PORT", "DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD",
	"DB_NAME", "DB_SSLMODE", "SQLITE_PATH", "LOG_LEVEL", "AUDIT_SCHEDULE", "JURISDICTION",
}

// clearEnv unsets every configuration key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, cmd.DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "GO", cfg.Jurisdiction)
	assert.Equal(t, "0 * * * * *", cfg.AuditSchedule)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("HTTP_PORT=9090\nDB_DRIVER=SQLite\nSQLITE_PATH=/tmp/w.db\n"), 0o600))

	t.Run("file values are loaded", func(t *testing.T) {
		cfg, err := cmd.LoadConfig(envFile)

		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.HTTPPort)
		assert.Equal(t, cmd.DriverSQLite, cfg.DBDriver)
		assert.Equal(t, "/tmp/w.db", cfg.SQLitePath)
	})

	t.Run("environment wins over file", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "7070")

		cfg, err := cmd.LoadConfig(envFile)

		require.NoError(t, err)
		assert.Equal(t, "7070", cfg.HTTPPort)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := cmd.Config{DBDriver: cmd.DriverSQLite, Jurisdiction: "GO", LogLevel: "debug"}
	require.NoError(t, valid.Validate())

	invalid := cmd.Config{DBDriver: "mysql", Jurisdiction: "SP", LogLevel: "loud"}
	err := invalid.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DRIVER")
	assert.Contains(t, err.Error(), "JURISDICTION")
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestConfig_PostgresDSN(t *testing.T) {
	cfg := cmd.Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "app",
		DBPassword: "p@ss word",
		DBName:     "waste",
		DBSslMode:  "disable",
	}

	assert.Equal(t, "postgres://app:p%40ss%20word@db:5432/waste?sslmode=disable", cfg.PostgresDSN())

	cfg.DBPassword = ""
	assert.Equal(t, "postgres://app:@db:5432/waste?sslmode=disable", cfg.PostgresDSN())
}
