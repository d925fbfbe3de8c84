package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"shortlink-be/internal/cache"
	"shortlink-be/internal/config"
	"shortlink-be/internal/database"
	"shortlink-be/internal/repository"
	"shortlink-be/internal/service"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("shortlink service stopped", "error", err)
		os.Exit(1)
	}
}

func run() (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewConnection(ctx, cfg.DSN(), logger)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, db.Close()) }()

	// Run database migrations
	if err := database.RunMigrations(ctx, db); err != nil {
		return err
	}

	repoMetrics, err := repository.NewMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}
	urlRepo := repository.NewURLRepository(db, repoMetrics)

	cacheClient, err := newCache(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if cacheClient != nil {
		defer func() { err = multierr.Append(err, cacheClient.Close()) }()
	}

	urlService := service.NewURLService(urlRepo, cacheClient, logger, service.Options{
		Domain:          cfg.Domain,
		MaxPathAttempts: cfg.MaxPathAttempts,
	})

	servers := []*http.Server{{
		Addr:              cfg.ListenAddr(),
		Handler:           newRouter(urlService, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}}
	if cfg.MetricsAddr != "" {
		metricsMux := http.NewServeMux()
		metricsMux.Handle("/metrics", promhttp.Handler())
		servers = append(servers, &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           metricsMux,
			ReadHeaderTimeout: 10 * time.Second,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		srv := srv
		g.Go(func() error {
			logger.Info("http server listening", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("powering down shortlink service")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs error
		for _, srv := range servers {
			errs = multierr.Append(errs, srv.Shutdown(shutdownCtx))
		}
		return errs
	})

	return g.Wait()
}

// newCache connects the optional Redis cache. A nil Cache means the
// service runs without one.
func newCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) (cache.Cache, error) {
	if cfg.RedisURL == "" {
		return nil, nil
	}

	cacheMetrics, err := cache.NewMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		return nil, err
	}

	redisCache, err := cache.NewRedisCache(ctx, cfg.RedisURL, cfg.CacheTTL, cacheMetrics)
	if err != nil {
		// Redis is optional - continue without cache if unavailable
		logger.Warn("failed to connect to redis, continuing without cache", "error", err)
		return nil, nil
	}
	logger.Info("connected to redis cache")
	return redisCache, nil
}
