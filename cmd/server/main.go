package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akarsten/feedbacklens/internal/adapter/httpserver"
	"github.com/akarsten/feedbacklens/internal/adapter/metrics"
	"github.com/akarsten/feedbacklens/internal/adapter/redis"
	"github.com/akarsten/feedbacklens/internal/analysis"
	"github.com/akarsten/feedbacklens/internal/app"
	"github.com/akarsten/feedbacklens/internal/ingest"
	"github.com/akarsten/feedbacklens/internal/platform/config"
	"github.com/akarsten/feedbacklens/internal/platform/logging"
	"github.com/akarsten/feedbacklens/internal/vader"
	"github.com/jonboulle/clockwork"
	goredis "github.com/redis/go-redis/v9"
)

const evictionInterval = time.Minute

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupRedis(ctx context.Context, cfg *config.Config) *goredis.Client {
	client, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	return client
}

func runGracefulShutdown(srv *httpserver.Server, cleanup func()) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		cleanup()
		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.Init(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	registry := metrics.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)
	pipelineMetrics := metrics.NewPipelineMetrics(registry)

	var (
		store        app.DatasetStore
		healthChecks []httpserver.HealthCheck
		cleanup      = func() {}
	)
	if cfg.RedisURL != "" {
		redisClient := setupRedis(context.Background(), cfg)
		cleanup = func() { _ = redisClient.Close() }
		store = redis.NewDatasetStore(redisClient, cfg.DatasetTTL)
		healthChecks = append(healthChecks, httpserver.HealthCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		})
	} else {
		memStore := app.NewMemoryStore(clock, cfg.DatasetTTL)
		stopEviction := memStore.StartEvictionTimer(evictionInterval)
		cleanup = stopEviction
		store = memStore
	}

	thresholds := analysis.Thresholds{
		Strength: cfg.RecStrengthThreshold,
		Improve:  cfg.RecImproveThreshold,
	}
	reader := ingest.NewReader(vader.New())
	appSvc := app.NewService(store, reader, thresholds, clock, pipelineMetrics)

	// Seed the sample dataset so the dashboard works out of the box.
	if _, err := appSvc.LoadBundledDataset(context.Background()); err != nil {
		slog.Error("Failed to load bundled dataset", "error", err)
		os.Exit(1)
	}

	srv, err := httpserver.NewServer(cfg, appSvc, metrics.Handler(registry), httpMetrics.Middleware(), healthChecks)
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	done := runGracefulShutdown(srv, cleanup)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
