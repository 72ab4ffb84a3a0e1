// Package config provides application configuration loaded from environment
// variables (and an optional config file) with defaults and validation. It
// centralizes application settings such as server timeouts, logging, database
// selection, pagination limits, rate limiting, and observability.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

// CORSConfig defines Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins []string
}

// SecurityConfig defines security-related settings such as HSTS.
type SecurityConfig struct {
	EnableHSTS bool
	HSTSMaxAge time.Duration
}

// DBConfig selects and configures the persistence backend.
type DBConfig struct {
	Driver string // DB_DRIVER: sqlite|postgres
	Path   string // DB_PATH: SQLite file
	DSN    string // DB_DSN: postgres connection string

	// Pool sizing; zero keeps the per-driver default.
	MaxOpenConns    int           // DB_MAX_OPEN_CONNS
	MaxIdleConns    int           // DB_MAX_IDLE_CONNS
	ConnMaxLifetime time.Duration // DB_CONN_MAX_LIFETIME

	// SlowQuery is the threshold above which a statement is logged at warn
	// level (DB_SLOW_QUERY). Zero disables slow-query logging.
	SlowQuery time.Duration
}

// OTELConfig defines OpenTelemetry observability settings.
type OTELConfig struct {
	Enabled     bool    // OTEL_ENABLED
	Endpoint    string  // OTEL_EXPORTER_OTLP_ENDPOINT (e.g. "otel:4317")
	Insecure    bool    // OTEL_EXPORTER_OTLP_INSECURE (true if no TLS)
	ServiceName string  // OTEL_SERVICE_NAME (e.g. "go-crud-backend")
	SampleRatio float64 // OTEL_TRACES_SAMPLER_ARG in [0..1]
}

// Config holds all configuration values for the application.
type Config struct {
	// Server
	Port              string        // just the number
	ReadTimeout       time.Duration // e.g. 15s
	ReadHeaderTimeout time.Duration // e.g. 10s
	WriteTimeout      time.Duration // e.g. 20s
	IdleTimeout       time.Duration // e.g. 60s
	ShutdownTimeout   time.Duration // graceful drain window
	MaxHeaderBytes    int           // bytes
	GinMode           string        // debug|release|test

	// Logging / Docs
	LogLevel       string // trace|debug|info|warn|error|fatal|panic
	LogPretty      bool   // pretty console logs in dev
	SwaggerEnabled bool   // enable Swagger UI route
	APIBasePath    string // base path for API routes

	// Persistence
	DB DBConfig

	// Pagination
	MaxPageSize int // upper bound for ?size= on paginated endpoints

	// Rate limiting, per client. Reads are GET/HEAD/OPTIONS, the rest writes.
	RateRPS        float64 // read tokens per second (>= 0)
	RateBurst      int     // read bucket size (>= 1)
	RateWriteRPS   float64 // write tokens per second (>= 0)
	RateWriteBurst int     // write bucket size (>= 1)

	// Web protection
	CORS     CORSConfig
	Security SecurityConfig

	// Idempotency
	IdempotencyTTL time.Duration // how long a given Idempotency-Key is valid

	// Observability
	OTEL OTELConfig
}

// MustLoad loads the configuration and panics if validation fails.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads configuration from environment variables and, when CONFIG_FILE
// points to a file, from that file (environment wins). It applies defaults,
// normalizes values, and validates the result.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	if file := strings.TrimSpace(v.GetString("CONFIG_FILE")); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %q: %w", file, err)
		}
	}
	src := source{v}

	cfg := Config{
		Port:              src.str("PORT", "8080"),
		ReadTimeout:       src.dur("READ_TIMEOUT", 15*time.Second),
		ReadHeaderTimeout: src.dur("READ_HEADER_TIMEOUT", 10*time.Second),
		WriteTimeout:      src.dur("WRITE_TIMEOUT", 20*time.Second),
		IdleTimeout:       src.dur("IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout:   src.dur("SHUTDOWN_TIMEOUT", 10*time.Second),
		MaxHeaderBytes:    src.int("MAX_HEADER_BYTES", 1<<20),
		GinMode:           strings.ToLower(src.str("GIN_MODE", "release")),

		LogLevel:       strings.ToLower(src.str("LOG_LEVEL", "info")),
		LogPretty:      src.bool("LOG_PRETTY", false),
		SwaggerEnabled: src.bool("SWAGGER_ENABLED", false),
		APIBasePath:    normalizeBasePath(src.str("API_BASE_PATH", "/api")),

		DB: DBConfig{
			Driver:          strings.ToLower(src.str("DB_DRIVER", "sqlite")),
			Path:            src.str("DB_PATH", "app.db"),
			DSN:             src.str("DB_DSN", ""),
			MaxOpenConns:    src.int("DB_MAX_OPEN_CONNS", 0),
			MaxIdleConns:    src.int("DB_MAX_IDLE_CONNS", 0),
			ConnMaxLifetime: src.dur("DB_CONN_MAX_LIFETIME", 0),
			SlowQuery:       src.dur("DB_SLOW_QUERY", 200*time.Millisecond),
		},

		MaxPageSize: src.int("MAX_PAGE_SIZE", 100),

		RateRPS:        src.float("RATE_RPS", 20.0),
		RateBurst:      src.int("RATE_BURST", 40),
		RateWriteRPS:   src.float("RATE_WRITE_RPS", 5.0),
		RateWriteBurst: src.int("RATE_WRITE_BURST", 10),

		CORS: CORSConfig{
			AllowedOrigins: splitCSV(src.str("CORS_ALLOWED_ORIGINS", "")),
		},
		Security: SecurityConfig{
			EnableHSTS: src.bool("ENABLE_HSTS", false),
			HSTSMaxAge: src.dur("HSTS_MAX_AGE", 180*24*time.Hour),
		},

		IdempotencyTTL: src.dur("IDEMPOTENCY_TTL", 24*time.Hour),

		OTEL: OTELConfig{
			Enabled:     src.bool("OTEL_ENABLED", false),
			Endpoint:    src.str("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			Insecure:    src.bool("OTEL_EXPORTER_OTLP_INSECURE", true),
			ServiceName: src.str("OTEL_SERVICE_NAME", "go-crud-backend"),
			SampleRatio: src.float("OTEL_TRACES_SAMPLER_ARG", 1.0),
		},
	}
	cfg.normalize()
	return cfg, cfg.Validate()
}

func (c *Config) normalize() {
	if c.LogLevel == "warning" {
		c.LogLevel = "warn"
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		c.GinMode = "release"
	}
	switch c.DB.Driver {
	case "postgresql", "pg":
		c.DB.Driver = "postgres"
	case "sqlite3":
		c.DB.Driver = "sqlite"
	}
}

// Validate reports every invalid setting, not just the first one.
func (c Config) Validate() error {
	var errs error
	check := func(ok bool, msg string) {
		if !ok {
			errs = multierr.Append(errs, errors.New(msg))
		}
	}

	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic":
	default:
		check(false, "LOG_LEVEL must be one of: trace, debug, info, warn, error, fatal, panic")
	}
	check(strings.TrimSpace(c.Port) != "", "PORT must not be empty")
	check(c.ReadTimeout > 0 && c.ReadHeaderTimeout > 0 && c.WriteTimeout > 0 &&
		c.IdleTimeout > 0 && c.ShutdownTimeout > 0, "timeouts must be positive durations")
	check(c.MaxHeaderBytes > 0, "MAX_HEADER_BYTES must be > 0")

	switch c.DB.Driver {
	case "sqlite":
		check(strings.TrimSpace(c.DB.Path) != "", "DB_PATH must not be empty")
	case "postgres":
		check(strings.TrimSpace(c.DB.DSN) != "", "DB_DSN is required when DB_DRIVER=postgres")
	default:
		check(false, "DB_DRIVER must be one of: sqlite, postgres")
	}
	check(c.DB.MaxOpenConns >= 0 && c.DB.MaxIdleConns >= 0, "DB pool sizes must be >= 0")
	check(c.DB.ConnMaxLifetime >= 0, "DB_CONN_MAX_LIFETIME must be >= 0")
	check(c.DB.SlowQuery >= 0, "DB_SLOW_QUERY must be >= 0")

	check(c.MaxPageSize >= 1, "MAX_PAGE_SIZE must be >= 1")
	check(c.RateRPS >= 0, "RATE_RPS must be >= 0")
	check(c.RateBurst >= 1, "RATE_BURST must be >= 1")
	check(c.RateWriteRPS >= 0, "RATE_WRITE_RPS must be >= 0")
	check(c.RateWriteBurst >= 1, "RATE_WRITE_BURST must be >= 1")
	check(c.Security.HSTSMaxAge >= 0, "HSTS_MAX_AGE must be >= 0")
	check(c.IdempotencyTTL > 0, "IDEMPOTENCY_TTL must be > 0")
	check(c.OTEL.SampleRatio >= 0 && c.OTEL.SampleRatio <= 1, "OTEL_TRACES_SAMPLER_ARG must be in [0,1]")
	return errs
}

// source reads typed values from viper (env first, then config file).
// Missing or unparseable values fall back to the default instead of
// viper's zero value.
type source struct{ v *viper.Viper }

func (s source) str(k, def string) string {
	if val := s.v.GetString(k); val != "" {
		return val
	}
	return def
}

func (s source) float(k string, def float64) float64 {
	if f, err := strconv.ParseFloat(s.v.GetString(k), 64); err == nil {
		return f
	}
	return def
}

func (s source) int(k string, def int) int {
	if i, err := strconv.Atoi(s.v.GetString(k)); err == nil {
		return i
	}
	return def
}

func (s source) bool(k string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s.v.GetString(k))) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	}
	return def
}

func (s source) dur(k string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(s.v.GetString(k)); err == nil {
		return d
	}
	return def
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// normalizeBasePath ensures a leading '/' and strips trailing ones, except
// for the root itself.
func normalizeBasePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	return "/" + p
}
