package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/evmarket/payment-service/internal/api"
	"github.com/evmarket/payment-service/internal/cache"
	"github.com/evmarket/payment-service/internal/config"
	"github.com/evmarket/payment-service/internal/db"
	"github.com/evmarket/payment-service/internal/metrics"
	"github.com/evmarket/payment-service/internal/probe"
	"github.com/evmarket/payment-service/internal/ratelimiter"
	"github.com/evmarket/payment-service/internal/service"
	"github.com/evmarket/payment-service/internal/worker"
)

const (
	limiterSweepInterval = time.Minute
	limiterIdleTTL       = 10 * time.Minute
)

func main() {
	// ---- configuration ----
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("failed to load config", zap.Error(err))
	}

	logger := newLogger(cfg)
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	// ---- optional dependencies (readiness only) ----
	var probes []probe.Probe

	if cfg.DatabaseURL != "" {
		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			logger.Fatal("failed to configure database pool", zap.Error(err))
		}
		defer pool.Close()
		probes = append(probes, probe.NewPostgresProbe(pool))
	}

	if cfg.RedisURL != "" {
		rdb, err := cache.Connect(cfg)
		if err != nil {
			logger.Fatal("failed to configure redis client", zap.Error(err))
		}
		defer rdb.Close() //nolint:errcheck
		probes = append(probes, probe.NewRedisProbe(rdb))
	}

	logger.Info("dependency probes configured", zap.Int("count", len(probes)))

	// ---- core dependencies ----
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)
	svc := service.NewHealthService(cfg.ProbeTimeout, logger, service.WithProbes(probes...))
	limiter := ratelimiter.New(cfg.RateLimitRPS, cfg.RateLimitBurst)

	// ---- background workers ----
	// Context for all background goroutines; cancelled on shutdown signal.
	workerCtx, cancelWorkers := context.WithCancel(ctx)
	defer cancelWorkers()

	if len(probes) > 0 {
		probeW := worker.NewProbeWorker(svc, cfg.ProbeInterval, m.ProbeHook(), logger)
		go probeW.Run(workerCtx)
	}
	if limiter.Enabled() {
		go limiter.RunSweeper(workerCtx, limiterSweepInterval, limiterIdleTTL)
	}

	// ---- HTTP server ----
	router := api.NewRouter(svc, m, reg, limiter, cfg.TrustProxyHeaders, logger)
	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start server in a goroutine so it does not block the shutdown listener.
	go func() {
		logger.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("environment", cfg.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// ---- graceful shutdown ----
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutdown signal received")

	// 1. Stop accepting new HTTP requests.
	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	// 2. Stop the probe worker and limiter sweeper.
	cancelWorkers()

	logger.Info("server stopped cleanly")
}

func newLogger(cfg *config.Config) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger.With(zap.String("service", "payment-service"))
}
