// Package httpapi assembles the Gin engine: the middleware chain, the
// operational endpoints (/health, /metrics, /swagger) and the five CRUD
// resources mounted under the configured base path.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	_ "github.com/tbourn/go-crud-backend/docs" // swagger spec registration
	"github.com/tbourn/go-crud-backend/internal/config"
	"github.com/tbourn/go-crud-backend/internal/http/handlers"
	"github.com/tbourn/go-crud-backend/internal/http/middleware"
	"github.com/tbourn/go-crud-backend/internal/repo"
	"github.com/tbourn/go-crud-backend/internal/services"
)

// Response headers browser clients are allowed to read.
var exposedHeaders = []string{"X-Request-ID", "Location", "ETag", "X-Total-Count", "Idempotency-Replayed"}

// RegisterRoutes attaches all middleware and HTTP endpoints to r. The
// middleware order is significant:
//
//	otelgin → RequestID → access log → Recovery → body limit → Metrics →
//	IdempotencyValidator → RateLimiter → CORS → SecurityHeaders → gzip
//
// The access log needs the request id and must see recovered panics as 500s.
// Idempotency runs before rate limiting so replays bypass the write bucket.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) error {
	if err := handlers.RegisterValidators(); err != nil {
		return fmt.Errorf("register validators: %w", err)
	}
	r.HandleMethodNotAllowed = true

	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName), middleware.RequestID(), accessLog(cfg))
	r.Use(middleware.Recovery(), limitBody(1<<20), middleware.Metrics())
	r.Use(middleware.IdempotencyValidator(middleware.IdempotencyOptions{MaxLen: 200}, idempotencyLookup(db)))
	r.Use(middleware.NewRateLimiter(middleware.RateLimitOptions{
		ReadRPS:    cfg.RateRPS,
		ReadBurst:  cfg.RateBurst,
		WriteRPS:   cfg.RateWriteRPS,
		WriteBurst: cfg.RateWriteBurst,
		Key:        middleware.KeyByClientIP(),
	}).Handler())
	r.Use(corsMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		HSTS:          cfg.Security.EnableHSTS,
		HSTSMaxAge:    cfg.Security.HSTSMaxAge,
		BrowserPolicy: true,
		PrivateCache:  true,
		ExposeHeaders: exposedHeaders[1:],
	}))
	// Prometheus negotiates its own compression.
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, fmt.Sprintf(handlers.MsgNotFound, c.Request.Method, c.Request.URL.Path))
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, fmt.Sprintf(handlers.MsgMethodNotAllowed, c.Request.Method))
	})

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	mountAPI(groupWithPrefix(r, cfg.APIBasePath), db, cfg)
	return nil
}

// accessLog picks the access logger. Release builds never log CINs, emails,
// phone numbers or searched names.
func accessLog(cfg config.Config) gin.HandlerFunc {
	if cfg.GinMode != gin.ReleaseMode {
		return middleware.Logger()
	}
	persons := path.Join("/", cfg.APIBasePath, "persons")
	return middleware.RedactingLogger(middleware.RedactOptions{
		MaskHeaders: []string{"X-API-Key", middleware.HeaderIdempotencyKey},
		MaskParams:  []string{"email", "phone"},
		MaskRoutes:  []string{persons + "/:id", persons + "/:id/exists"},
		MaskQuery:   []string{"name", "lastName"},
	})
}

func idempotencyLookup(db *gorm.DB) middleware.IdempotencyLookup {
	return func(ctx context.Context, scope, key string, now time.Time) (bool, error) {
		_, err := repo.GetIdempotency(ctx, db, scope, key, now)
		if errors.Is(err, repo.ErrNotFound) {
			return false, nil
		}
		return err == nil, err
	}
}

// corsMiddleware allows every origin when none are configured and only the
// listed ones otherwise. Credentials are never allowed.
func corsMiddleware(origins []string) gin.HandlerFunc {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "If-None-Match", middleware.HeaderIdempotencyKey},
		ExposeHeaders: exposedHeaders,
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return cors.New(c)
}

// mountAPI registers the five resources on api.
func mountAPI(api *gin.RouterGroup, db *gorm.DB, cfg config.Config) {
	api.Use(middleware.ContentNegotiation(), middleware.ResourceMetrics(api.BasePath()))

	addrStore, userStore, postStore := repo.NewAddressStore(), repo.NewUserStore(), repo.NewPostStore()
	opt := handlers.Options{
		MaxPageSize:    cfg.MaxPageSize,
		DB:             db,
		IdempotencyTTL: cfg.IdempotencyTTL,
	}
	handlers.NewAddressHandler(services.NewAddressService(db, addrStore, userStore), opt).Register(api)
	handlers.NewCategoryHandler(services.NewCategoryService(db, repo.NewCategoryStore()), opt).Register(api)
	handlers.NewPersonHandler(services.NewPersonService(db, repo.NewPersonStore()), opt).Register(api)
	handlers.NewPostHandler(services.NewPostService(db, postStore, userStore), opt).Register(api)
	handlers.NewUserHandler(services.NewUserService(db, userStore, postStore, addrStore), opt).Register(api)
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
