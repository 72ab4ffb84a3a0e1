// Command server runs the CRUD backend HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/tbourn/go-crud-backend/internal/config"
	httpapi "github.com/tbourn/go-crud-backend/internal/http"
	"github.com/tbourn/go-crud-backend/internal/observability"
	"github.com/tbourn/go-crud-backend/internal/repo"
	"github.com/tbourn/go-crud-backend/internal/sysutil"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// @title          CRUD Backend API
// @version        1.0
// @description    REST API for addresses, categories, persons, posts and users.
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
// @BasePath       /api
func main() {
	// A missing .env is fine; real environment variables always win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	sysutil.SetupLogger(sysutil.LogOptions{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: cfg.OTEL.ServiceName,
		Version: sysutil.Version(version),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server stopped")
}

// run serves until ctx is canceled, then drains in-flight requests and
// releases the tracer and the database.
func run(ctx context.Context, cfg config.Config) error {
	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, sysutil.Version(version))
	if err != nil {
		return err
	}

	db, err := repo.Open(cfg)
	if err != nil {
		return multierr.Append(err, shutdownOTel(context.Background()))
	}
	if err := repo.AutoMigrate(db); err != nil {
		return multierr.Combine(err, closeDB(db), shutdownOTel(context.Background()))
	}
	purgeIdempotency(ctx, db, time.Now().UTC())

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	if err := httpapi.RegisterRoutes(r, db, cfg); err != nil {
		return multierr.Combine(err, closeDB(db), shutdownOTel(context.Background()))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Str("db", cfg.DB.Driver).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	err = g.Wait()

	sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return multierr.Combine(err, shutdownOTel(sctx), closeDB(db))
}

// purgeIdempotency drops Idempotency-Key records that expired while the
// server was down. Keys expiring at runtime are taken over on reuse.
func purgeIdempotency(ctx context.Context, db *gorm.DB, now time.Time) {
	n, err := repo.PurgeExpiredIdempotency(ctx, db, now)
	switch {
	case err != nil:
		log.Warn().Err(err).Msg("purge idempotency records")
	case n > 0:
		log.Info().Int64("deleted", n).Msg("purged idempotency records")
	}
}

func closeDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
