// Package repo implements the data persistence layer for domain entities,
// backed by GORM: connection bootstrapping for SQLite (pure Go driver) and
// PostgreSQL, schema migration, a generic store, and per-entity finders.
package repo

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/tbourn/go-crud-backend/internal/config"
	"github.com/tbourn/go-crud-backend/internal/domain"
)

// pool holds connection pool limits.
type pool struct {
	maxOpen, maxIdle int
	idleTime, life   time.Duration
}

var (
	sqlitePool   = pool{maxOpen: 10, maxIdle: 10, idleTime: 5 * time.Minute, life: 30 * time.Minute}
	postgresPool = pool{maxOpen: 25, maxIdle: 5, idleTime: 5 * time.Minute, life: 30 * time.Minute}
)

// sqlitePragmas are applied by the driver to every pooled connection.
var sqlitePragmas = []string{
	"journal_mode(WAL)",
	"synchronous(NORMAL)",
	"foreign_keys(1)",
	"busy_timeout(5000)",
}

// Open opens the database selected by cfg.DB.Driver with a zerolog-backed
// GORM logger and the configured pool limits. When tracing is enabled every
// query is also recorded as an OpenTelemetry span, without bound values.
func Open(cfg config.Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		Logger:         NewGormLogger(cfg.DB.SlowQuery),
		TranslateError: true,
	}

	var (
		db  *gorm.DB
		p   pool
		err error
	)
	switch cfg.DB.Driver {
	case "postgres":
		db, err = gorm.Open(postgres.Open(cfg.DB.DSN), gcfg)
		p = postgresPool
	case "sqlite", "":
		db, err = openSQLite(cfg.DB.Path, gcfg)
		p = sqlitePool
	default:
		return nil, fmt.Errorf("unsupported DB driver %q", cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.DB.MaxOpenConns > 0 {
		p.maxOpen = cfg.DB.MaxOpenConns
	}
	if cfg.DB.MaxIdleConns > 0 {
		p.maxIdle = cfg.DB.MaxIdleConns
	}
	if cfg.DB.ConnMaxLifetime > 0 {
		p.life = cfg.DB.ConnMaxLifetime
	}
	if err := applyPool(db, p); err != nil {
		return nil, err
	}

	if cfg.OTEL.Enabled {
		if err := db.Use(tracing.NewPlugin(tracing.WithoutQueryVariables())); err != nil {
			return nil, fmt.Errorf("install gorm tracing: %w", err)
		}
	}
	return db, nil
}

// OpenSQLite opens (or creates) the SQLite database at path with the default
// pool. Used by tools and tests that do not need the full configuration.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := openSQLite(path, &gorm.Config{Logger: NewGormLogger(0), TranslateError: true})
	if err != nil {
		return nil, err
	}
	return db, applyPool(db, sqlitePool)
}

func openSQLite(path string, gcfg *gorm.Config) (*gorm.DB, error) {
	// The driver reports a missing parent directory as "out of memory (14)".
	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}
	return gorm.Open(sqlite.Open(sqliteDSN(path)), gcfg)
}

// sqliteDSN appends the connection pragmas to path, keeping any query
// parameters it already carries.
func sqliteDSN(path string) string {
	q := url.Values{}
	for _, p := range sqlitePragmas {
		q.Add("_pragma", p)
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + q.Encode()
}

func applyPool(db *gorm.DB, p pool) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(p.maxOpen)
	sqlDB.SetMaxIdleConns(p.maxIdle)
	sqlDB.SetConnMaxIdleTime(p.idleTime)
	sqlDB.SetConnMaxLifetime(p.life)
	return nil
}

// AutoMigrate creates or updates the schema for every entity. Users are
// migrated before posts so the author foreign key can be created.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Address{},
		&domain.Category{},
		&domain.Person{},
		&domain.User{},
		&domain.Post{},
		&domain.Idempotency{},
	)
}
