package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strings"

	"wastecollection/internal/core/domain/model/kernel"
	"wastecollection/internal/jobs"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	HTTPPort      string
	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
	SQLitePath    string
	LogLevel      string
	AuditSchedule string
	Jurisdiction  string
}

// LoadConfig reads the environment after merging an optional .env file.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Config{
		HTTPPort:      env("HTTP_PORT", "8080"),
		DBDriver:      strings.ToLower(env("DB_DRIVER", DriverPostgres)),
		DBHost:        env("DB_HOST", "localhost"),
		DBPort:        env("DB_PORT", "5432"),
		DBUser:        env("DB_USER", "postgres"),
		DBPassword:    env("DB_PASSWORD", ""),
		DBName:        env("DB_NAME", "waste_collection"),
		DBSslMode:     env("DB_SSLMODE", "disable"),
		SQLitePath:    env("SQLITE_PATH", "waste_collection.db"),
		LogLevel:      env("LOG_LEVEL", "info"),
		AuditSchedule: env("AUDIT_SCHEDULE", jobs.DefaultAuditSchedule),
		Jurisdiction:  strings.ToUpper(env("JURISDICTION", kernel.Jurisdiction)),
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errList []error
	if c.DBDriver != DriverPostgres && c.DBDriver != DriverSQLite {
		errList = append(errList, fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, c.DBDriver))
	}
	if c.Jurisdiction != kernel.Jurisdiction {
		errList = append(errList, fmt.Errorf("JURISDICTION %q is not supported, only %q", c.Jurisdiction, kernel.Jurisdiction))
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errList = append(errList, err)
	}
	return errors.Join(errList...)
}

// PostgresDSN renders a postgres:// connection URL.
func (c Config) PostgresDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSslMode}}.Encode(),
	}
	return u.String()
}

// NewLogger returns the process logger: JSON on stdout at the configured
// level.
func (c Config) NewLogger() *slog.Logger {
	level, _ := parseLevel(c.LogLevel)
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}
