package postgres

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"wastecollection/internal/adapters/out/postgres/certificaterepo"
	"wastecollection/internal/adapters/out/postgres/registryrepo"
	"wastecollection/internal/adapters/out/postgres/requestrepo"

	_ "github.com/mattn/go-sqlite3"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormConfig returns the settings every connection must use. TranslateError
// is required: repositories detect unique index violations through
// gorm.ErrDuplicatedKey.
func GormConfig(log *slog.Logger) *gorm.Config {
	cfg := &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
		Logger:         logger.Default.LogMode(logger.Silent),
	}
	if log != nil {
		cfg.Logger = logger.New(
			slog.NewLogLogger(log.With("component", "gorm").Handler(), slog.LevelWarn),
			logger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		)
	}
	return cfg
}

// OpenPostgres connects to PostgreSQL using a libpq style DSN.
func OpenPostgres(dsn string, log *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(gorm_postgres.Open(dsn), GormConfig(log))
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

// OpenSQLite opens a SQLite database file, or an in-memory database for
// ":memory:". Connections are limited to one so that writers serialize and
// an in-memory database is not lost between connections.
func OpenSQLite(path string, log *slog.Logger) (*gorm.DB, error) {
	sqlDB, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite3", Conn: sqlDB}), GormConfig(log))
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return db, nil
}

// Models lists the persisted tables in dependency order.
func Models() []any {
	return []any{
		&registryrepo.SiteDTO{},
		&registryrepo.CollectorDTO{},
		&requestrepo.RequestDTO{},
		&certificaterepo.CertificateDTO{},
	}
}

// Migrate creates or updates every table, index and constraint.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// TableNames lists the persisted tables, dependents first.
func TableNames() []string {
	return []string{
		certificaterepo.CertificateDTO{}.TableName(),
		requestrepo.RequestDTO{}.TableName(),
		registryrepo.CollectorDTO{}.TableName(),
		registryrepo.SiteDTO{}.TableName(),
	}
}
