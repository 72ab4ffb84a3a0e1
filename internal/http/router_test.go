package httpapi

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	sqlite "github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-crud-backend/internal/config"
	"github.com/tbourn/go-crud-backend/internal/http/apierror"
	"github.com/tbourn/go-crud-backend/internal/http/middleware"
	"github.com/tbourn/go-crud-backend/internal/repo"
)

// --- test DB helper (pure-Go sqlite, no CGO) ---
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:router_%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func testConfig() config.Config {
	return config.Config{
		GinMode:        gin.TestMode,
		APIBasePath:    "/api",
		MaxPageSize:    100,
		RateRPS:        100,
		RateBurst:      10,
		RateWriteRPS:   100,
		RateWriteBurst: 10,
		CORS:           config.CORSConfig{AllowedOrigins: nil}, // allow all origins
		Security:       config.SecurityConfig{EnableHSTS: false, HSTSMaxAge: 0},
		IdempotencyTTL: time.Hour,
		OTEL:           config.OTELConfig{ServiceName: "test-svc"},
	}
}

func newRouter(t *testing.T, cfg config.Config) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	db := newTestDB(t)
	if err := RegisterRoutes(r, db, cfg); err != nil {
		t.Fatalf("RegisterRoutes: %v", err)
	}
	return r, db
}

func serve(r http.Handler, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterRoutes_CORSAllowAll_Health_Metrics_Fallbacks(t *testing.T) {
	r, _ := newRouter(t, testConfig())

	// /health works
	w := serve(r, http.MethodGet, "/health", "", "Origin", "http://anywhere.test")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d", w.Code)
	}
	// CORS (AllowAllOrigins) → header "*"
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("AllowAllOrigins expected '*', got %q", got)
	}

	// /metrics is wired
	w = serve(r, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK || w.Body.Len() == 0 {
		t.Fatalf("GET /metrics bad: code=%d len=%d", w.Code, w.Body.Len())
	}

	// NoRoute → 404 in the standard shape
	w = serve(r, http.MethodGet, "/nope", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("GET /nope expected 404, got %d", w.Code)
	}
	var resp apierror.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if resp.Message != "No handler found for GET /nope" || resp.Path != "/nope" {
		t.Fatalf("unexpected 404 body: %+v", resp)
	}

	// NoMethod → 405 (PATCH /api/categories)
	w = serve(r, http.MethodPatch, "/api/categories", `{"name":"x"}`)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("PATCH /api/categories expected 405, got %d", w.Code)
	}
	resp = apierror.Response{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if resp.Message != "Request method 'PATCH' is not supported" {
		t.Fatalf("unexpected 405 body: %+v", resp)
	}
}

func TestRegisterRoutes_CORSWithOrigins_HeaderEcho(t *testing.T) {
	cfg := testConfig()
	cfg.CORS = config.CORSConfig{AllowedOrigins: []string{"https://app.example.org"}}
	r, _ := newRouter(t, cfg)

	// The origin must differ from httptest's default host, or the request
	// counts as same-origin and gets no CORS headers.
	w := serve(r, http.MethodGet, "/health", "", "Origin", "https://app.example.org")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.org" {
		t.Fatalf("expected ACAO echo, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Expose-Headers"); !strings.Contains(got, "Location") {
		t.Fatalf("expected Location to be exposed, got %q", got)
	}
	if got := w.Header().Values("Vary"); !slices.Contains(got, "Origin") {
		t.Fatalf("expected Vary: Origin, got %q", got)
	}

	w = serve(r, http.MethodGet, "/health", "", "Origin", "http://evil.example")
	if w.Code != http.StatusForbidden {
		t.Fatalf("disallowed origin expected 403, got %d", w.Code)
	}
}

func TestRegisterRoutes_APIBasePath(t *testing.T) {
	cfg := testConfig()
	cfg.APIBasePath = "/api/v1"
	r, _ := newRouter(t, cfg)

	w := serve(r, http.MethodPost, "/api/v1/categories", `{"name":"Books"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST = %d body=%s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); !strings.HasPrefix(loc, "/api/v1/categories/") {
		t.Fatalf("Location = %q", loc)
	}
	if serve(r, http.MethodGet, "/api/categories", "").Code != http.StatusNotFound {
		t.Fatalf("resources must only be mounted under the base path")
	}
}

func TestRegisterRoutes_Swagger(t *testing.T) {
	r, _ := newRouter(t, testConfig())
	if w := serve(r, http.MethodGet, "/swagger/doc.json", ""); w.Code != http.StatusNotFound {
		t.Fatalf("swagger disabled: expected 404, got %d", w.Code)
	}

	cfg := testConfig()
	cfg.SwaggerEnabled = true
	r, _ = newRouter(t, cfg)
	w := serve(r, http.MethodGet, "/swagger/doc.json", "")
	if w.Code != http.StatusOK {
		t.Fatalf("swagger enabled: expected 200, got %d", w.Code)
	}
	var doc map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("doc.json: %v", err)
	}
	paths, _ := doc["paths"].(map[string]any)
	if _, ok := paths["/categories/{id}"]; !ok {
		t.Fatalf("expected /categories/{id} in swagger paths")
	}
}

func TestRegisterRoutes_Gzip(t *testing.T) {
	r, _ := newRouter(t, testConfig())
	for i := 0; i < 3; i++ {
		if w := serve(r, http.MethodPost, "/api/categories", fmt.Sprintf(`{"name":"c%d"}`, i)); w.Code != http.StatusCreated {
			t.Fatalf("seed: %d", w.Code)
		}
	}

	w := serve(r, http.MethodGet, "/api/categories", "", "Accept-Encoding", "gzip")
	if w.Code != http.StatusOK {
		t.Fatalf("GET = %d", w.Code)
	}
	if w.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip encoding, headers=%v", w.Header())
	}
	zr, err := gzip.NewReader(w.Body)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	var items []map[string]any
	if err := json.NewDecoder(zr).Decode(&items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(items))
	}
}

func TestRegisterRoutes_ContentNegotiationScopedToAPI(t *testing.T) {
	r, _ := newRouter(t, testConfig())

	if w := serve(r, http.MethodGet, "/api/categories", "", "Accept", "application/xml"); w.Code != http.StatusNotAcceptable {
		t.Fatalf("expected 406, got %d", w.Code)
	}
	if w := serve(r, http.MethodGet, "/health", "", "Accept", "application/xml"); w.Code != http.StatusOK {
		t.Fatalf("/health must ignore Accept, got %d", w.Code)
	}
}

func Test_limitBody_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// tiny cap to trigger MaxBytesReader
	r.Use(limitBody(10))
	r.POST("/echo", func(c *gin.Context) {
		_, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.String(http.StatusRequestEntityTooLarge, "too big")
			return
		}
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString("0123456789AB")) // 12 bytes
	r.ServeHTTP(w, req)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413 from limitBody, got %d", w.Code)
	}
}

func Test_groupWithPrefix(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// "/" and "" should mount at root
	root1 := groupWithPrefix(r, "/")
	root1.GET("/one", func(c *gin.Context) { c.String(http.StatusOK, "one") })
	root2 := groupWithPrefix(r, "")
	root2.GET("/two", func(c *gin.Context) { c.String(http.StatusOK, "two") })

	// non-root prefix
	api := groupWithPrefix(r, "/api")
	api.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	for path, want := range map[string]string{"/one": "one", "/two": "two", "/api/ping": "pong"} {
		w := serve(r, http.MethodGet, path, "")
		if w.Code != http.StatusOK || w.Body.String() != want {
			t.Fatalf("GET %s got %d %q", path, w.Code, w.Body.String())
		}
	}
}

// Smoke test that a request traverses idempotency + ratelimit + otel + security headers pipeline.
func TestPipeline_Smoke(t *testing.T) {
	cfg := testConfig()
	cfg.Security = config.SecurityConfig{EnableHSTS: true, HSTSMaxAge: time.Hour}
	r, _ := newRouter(t, cfg)

	w := serve(r, http.MethodGet, "/health", "", "X-Forwarded-Proto", "https")
	if w.Code != http.StatusOK {
		t.Fatalf("pipeline GET /health = %d", w.Code)
	}
	if rid := w.Header().Get("X-Request-ID"); rid == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}
	if hsts := w.Header().Get("Strict-Transport-Security"); !strings.HasPrefix(hsts, "max-age=3600") {
		t.Fatalf("expected HSTS, got %q", hsts)
	}
	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatalf("expected security headers")
	}
	if cc := w.Header().Get("Cache-Control"); cc != "private, no-cache" {
		t.Fatalf("reads must be revalidated, got Cache-Control %q", cc)
	}
	if cc := serve(r, http.MethodPost, "/api/categories", `{"name":"Books"}`).Header().Get("Cache-Control"); cc != "no-store" {
		t.Fatalf("writes must not be stored, got Cache-Control %q", cc)
	}
}

func TestRegisterRoutes_ReleaseModeUsesRedactingLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })
	log.Logger = zerolog.New(&buf)

	cfg := testConfig()
	cfg.GinMode = gin.ReleaseMode
	r, _ := newRouter(t, cfg)

	if w := serve(r, http.MethodGet, "/api/persons/email/ada@example.com", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if w := serve(r, http.MethodGet, "/api/persons/AB123456", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	out := buf.String()
	for _, secret := range []string{"ada@example.com", "AB123456"} {
		if strings.Contains(out, secret) {
			t.Fatalf("%q leaked into access log:\n%s", secret, out)
		}
	}
	if !strings.Contains(out, `"path":"/api/persons/[REDACTED:id]"`) {
		t.Fatalf("expected masked person path, got:\n%s", out)
	}
}

func TestRegisterRoutes_IdempotentReplay(t *testing.T) {
	r, _ := newRouter(t, testConfig())

	const key = "create-books"
	first := serve(r, http.MethodPost, "/api/categories", `{"name":"Books"}`, middleware.HeaderIdempotencyKey, key)
	if first.Code != http.StatusCreated {
		t.Fatalf("first POST = %d", first.Code)
	}
	second := serve(r, http.MethodPost, "/api/categories", `{"name":"Books"}`, middleware.HeaderIdempotencyKey, key)
	if second.Code != http.StatusCreated || second.Header().Get("Idempotency-Replayed") != "true" {
		t.Fatalf("expected replay, got %d %v", second.Code, second.Header())
	}
	if first.Header().Get("Location") != second.Header().Get("Location") {
		t.Fatalf("replay Location differs: %q vs %q", first.Header().Get("Location"), second.Header().Get("Location"))
	}

	w := serve(r, http.MethodGet, "/api/categories/count", "")
	if !strings.Contains(w.Body.String(), `"count":1`) {
		t.Fatalf("expected one category, got %s", w.Body.String())
	}

	m := serve(r, http.MethodGet, "/metrics", "").Body.String()
	for _, series := range []string{
		`crud_idempotent_replays_total{resource="categories"}`,
		`crud_operations_total{operation="create",outcome="ok",resource="categories"}`,
		`crud_operations_total{operation="count",outcome="ok",resource="categories"}`,
	} {
		if !strings.Contains(m, series) {
			t.Fatalf("metrics missing %s", series)
		}
	}
}

func TestRegisterRoutes_IdempotencyLookupError_ProcessesNormally(t *testing.T) {
	r, db := newRouter(t, testConfig())

	// Force queries to fail by closing the underlying connection.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB(): %v", err)
	}
	_ = sqlDB.Close()

	// The lookup fails, the request is processed normally and fails in the
	// service with a 500 (not a 400 from the middleware).
	w := serve(r, http.MethodPost, "/api/categories", `{"name":"Books"}`, middleware.HeaderIdempotencyKey, "force-error")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if w.Header().Get("Idempotency-Replayed") != "" {
		t.Fatalf("lookup error must not replay")
	}
}
