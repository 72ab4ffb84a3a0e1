package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestMain(m *testing.M) {
	os.Unsetenv("PORT")
	os.Unsetenv("CONFIG_FILE")
	os.Exit(m.Run())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "/api", cfg.APIBasePath)
	assert.False(t, cfg.SwaggerEnabled)
	assert.Equal(t, DBConfig{Driver: "sqlite", Path: "app.db", SlowQuery: 200 * time.Millisecond}, cfg.DB)
	assert.Equal(t, 100, cfg.MaxPageSize)
	assert.Equal(t, 20.0, cfg.RateRPS)
	assert.Equal(t, 40, cfg.RateBurst)
	assert.Equal(t, 5.0, cfg.RateWriteRPS)
	assert.Equal(t, 10, cfg.RateWriteBurst)
	assert.Equal(t, 24*time.Hour, cfg.IdempotencyTTL)
	assert.Nil(t, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "go-crud-backend", cfg.OTEL.ServiceName)
	assert.False(t, cfg.OTEL.Enabled)
}

func TestLoad_OverridesAndNormalization(t *testing.T) {
	env := map[string]string{
		"PORT":                        "8088",
		"READ_TIMEOUT":                "2s",
		"READ_HEADER_TIMEOUT":         "1s",
		"WRITE_TIMEOUT":               "3s",
		"IDLE_TIMEOUT":                "4s",
		"SHUTDOWN_TIMEOUT":            "5s",
		"MAX_HEADER_BYTES":            "8192",
		"GIN_MODE":                    "weird",
		"LOG_LEVEL":                   "warning",
		"LOG_PRETTY":                  "yes",
		"SWAGGER_ENABLED":             "on",
		"API_BASE_PATH":               "api/v1/",
		"DB_DRIVER":                   "PostgreSQL",
		"DB_DSN":                      "host=db user=app dbname=crud sslmode=disable",
		"DB_MAX_OPEN_CONNS":           "30",
		"DB_MAX_IDLE_CONNS":           "6",
		"DB_CONN_MAX_LIFETIME":        "15m",
		"DB_SLOW_QUERY":               "0s",
		"MAX_PAGE_SIZE":               "50",
		"RATE_RPS":                    "x",
		"RATE_BURST":                  "nope",
		"RATE_WRITE_RPS":              "2.5",
		"RATE_WRITE_BURST":            "3",
		"CORS_ALLOWED_ORIGINS":        " https://a.com , , http://b ",
		"ENABLE_HSTS":                 "TRUE",
		"HSTS_MAX_AGE":                "24h",
		"IDEMPOTENCY_TTL":             "48h",
		"OTEL_ENABLED":                "1",
		"OTEL_EXPORTER_OTLP_ENDPOINT": "otel:4317",
		"OTEL_EXPORTER_OTLP_INSECURE": "0",
		"OTEL_SERVICE_NAME":           "crud",
		"OTEL_TRACES_SAMPLER_ARG":     "0.75",
	}
	for k, v := range env {
		t.Setenv(k, v)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8088", cfg.Port)
	assert.Equal(t, 2*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 1*time.Second, cfg.ReadHeaderTimeout)
	assert.Equal(t, 3*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 4*time.Second, cfg.IdleTimeout)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 8192, cfg.MaxHeaderBytes)
	assert.Equal(t, "release", cfg.GinMode, "unknown modes fall back to release")

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.LogPretty)
	assert.True(t, cfg.SwaggerEnabled)
	assert.Equal(t, "/api/v1", cfg.APIBasePath)

	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Contains(t, cfg.DB.DSN, "dbname=crud")
	assert.Equal(t, 30, cfg.DB.MaxOpenConns)
	assert.Equal(t, 6, cfg.DB.MaxIdleConns)
	assert.Equal(t, 15*time.Minute, cfg.DB.ConnMaxLifetime)
	assert.Zero(t, cfg.DB.SlowQuery)
	assert.Equal(t, 50, cfg.MaxPageSize)

	assert.Equal(t, 20.0, cfg.RateRPS, "unparseable values keep the default")
	assert.Equal(t, 40, cfg.RateBurst)
	assert.Equal(t, 2.5, cfg.RateWriteRPS)
	assert.Equal(t, 3, cfg.RateWriteBurst)

	assert.Equal(t, []string{"https://a.com", "http://b"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, SecurityConfig{EnableHSTS: true, HSTSMaxAge: 24 * time.Hour}, cfg.Security)
	assert.Equal(t, 48*time.Hour, cfg.IdempotencyTTL)
	assert.Equal(t, OTELConfig{Enabled: true, Endpoint: "otel:4317", ServiceName: "crud", SampleRatio: 0.75}, cfg.OTEL)
}

func TestLoad_ConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	body := "port: \"9090\"\nlog_level: debug\nmax_page_size: 25\nrate_write_burst: 4\n"
	require.NoError(t, os.WriteFile(file, []byte(body), 0o600))
	t.Setenv("CONFIG_FILE", file)
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 25, cfg.MaxPageSize)
	assert.Equal(t, 4, cfg.RateWriteBurst)
	assert.Equal(t, "error", cfg.LogLevel, "environment wins over the file")
}

func TestLoad_ConfigFileMissing(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := Load()
	assert.ErrorContains(t, err, "read config file")
}

func TestLoad_Validation(t *testing.T) {
	cases := []struct {
		env  map[string]string
		want string
	}{
		{map[string]string{"LOG_LEVEL": "verbose"}, "LOG_LEVEL"},
		{map[string]string{"PORT": "   "}, "PORT must not be empty"},
		{map[string]string{"READ_TIMEOUT": "0s"}, "timeouts must be positive"},
		{map[string]string{"SHUTDOWN_TIMEOUT": "-1s"}, "timeouts must be positive"},
		{map[string]string{"MAX_HEADER_BYTES": "0"}, "MAX_HEADER_BYTES"},
		{map[string]string{"DB_PATH": "   "}, "DB_PATH must not be empty"},
		{map[string]string{"DB_DRIVER": "postgres"}, "DB_DSN"},
		{map[string]string{"DB_DRIVER": "oracle"}, "DB_DRIVER"},
		{map[string]string{"DB_MAX_IDLE_CONNS": "-1"}, "DB pool sizes"},
		{map[string]string{"DB_CONN_MAX_LIFETIME": "-1m"}, "DB_CONN_MAX_LIFETIME"},
		{map[string]string{"DB_SLOW_QUERY": "-1ms"}, "DB_SLOW_QUERY"},
		{map[string]string{"MAX_PAGE_SIZE": "0"}, "MAX_PAGE_SIZE"},
		{map[string]string{"RATE_RPS": "-1"}, "RATE_RPS"},
		{map[string]string{"RATE_BURST": "0"}, "RATE_BURST"},
		{map[string]string{"RATE_WRITE_RPS": "-0.5"}, "RATE_WRITE_RPS"},
		{map[string]string{"RATE_WRITE_BURST": "0"}, "RATE_WRITE_BURST"},
		{map[string]string{"HSTS_MAX_AGE": "-1s"}, "HSTS_MAX_AGE"},
		{map[string]string{"IDEMPOTENCY_TTL": "0s"}, "IDEMPOTENCY_TTL"},
		{map[string]string{"OTEL_TRACES_SAMPLER_ARG": "1.5"}, "OTEL_TRACES_SAMPLER_ARG"},
	}
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.ErrorContains(t, err, tc.want)
		})
	}
}

func TestLoad_ReportsEveryProblem(t *testing.T) {
	t.Setenv("MAX_PAGE_SIZE", "0")
	t.Setenv("RATE_BURST", "0")
	t.Setenv("IDEMPOTENCY_TTL", "-1h")

	_, err := Load()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 3)
	assert.ErrorContains(t, err, "MAX_PAGE_SIZE must be >= 1")
	assert.ErrorContains(t, err, "RATE_BURST must be >= 1")
	assert.ErrorContains(t, err, "IDEMPOTENCY_TTL must be > 0")
}

func TestLoad_DriverAliases(t *testing.T) {
	for alias, want := range map[string]string{"pg": "postgres", "PostgreSQL": "postgres", "sqlite3": "sqlite"} {
		t.Setenv("DB_DRIVER", alias)
		t.Setenv("DB_DSN", "host=db")
		cfg, err := Load()
		require.NoError(t, err, alias)
		assert.Equal(t, want, cfg.DB.Driver, alias)
	}
}

func TestLoad_TraceLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "TRACE")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "trace", cfg.LogLevel)
}

func TestMustLoad(t *testing.T) {
	assert.NotPanics(t, func() { assert.Equal(t, "/api", MustLoad().APIBasePath) })

	t.Setenv("LOG_LEVEL", "verbose")
	assert.Panics(t, func() { MustLoad() })
}

func TestSource(t *testing.T) {
	v := viper.New()
	v.AutomaticEnv()
	src := source{v}

	t.Setenv("CFG_STR", "val")
	t.Setenv("CFG_EMPTY", "")
	assert.Equal(t, "val", src.str("CFG_STR", "d"))
	assert.Equal(t, "d", src.str("CFG_EMPTY", "d"))
	assert.Equal(t, "d", src.str("CFG_UNSET", "d"))

	t.Setenv("CFG_FLOAT", "3.14")
	t.Setenv("CFG_INT", "42")
	t.Setenv("CFG_DUR", "150ms")
	t.Setenv("CFG_BAD", "zzz")
	assert.Equal(t, 3.14, src.float("CFG_FLOAT", 0))
	assert.Equal(t, 1.5, src.float("CFG_BAD", 1.5))
	assert.Equal(t, 42, src.int("CFG_INT", 0))
	assert.Equal(t, 7, src.int("CFG_BAD", 7))
	assert.Equal(t, 150*time.Millisecond, src.dur("CFG_DUR", time.Second))
	assert.Equal(t, 2*time.Second, src.dur("CFG_BAD", 2*time.Second))
	assert.Equal(t, 2*time.Second, src.dur("CFG_UNSET", 2*time.Second))
}

func TestSource_Bool(t *testing.T) {
	v := viper.New()
	v.AutomaticEnv()
	src := source{v}

	for i, val := range []string{"1", "true", "TRUE", " yes ", "Y", "on"} {
		k := "CFG_T" + string(rune('A'+i))
		t.Setenv(k, val)
		assert.True(t, src.bool(k, false), val)
	}
	for i, val := range []string{"0", "false", "FALSE", " no ", "N", "off"} {
		k := "CFG_F" + string(rune('A'+i))
		t.Setenv(k, val)
		assert.False(t, src.bool(k, true), val)
	}
	t.Setenv("CFG_MAYBE", "maybe")
	assert.True(t, src.bool("CFG_MAYBE", true))
	assert.False(t, src.bool("CFG_MAYBE", false))
}

func TestSplitCSV(t *testing.T) {
	assert.Nil(t, splitCSV(""))
	assert.Equal(t, []string{"a", "b", "c"}, splitCSV(" a, ,b ,  c  ,"))
}

func TestNormalizeBasePath(t *testing.T) {
	for in, want := range map[string]string{
		"":         "/",
		"//":       "/",
		" / ":      "/",
		"api":      "/api",
		"/api/":    "/api",
		"api/v1//": "/api/v1",
	} {
		assert.Equal(t, want, normalizeBasePath(in), "%q", in)
	}
}
