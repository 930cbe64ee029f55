package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	rediscache "billsense/internal/cache/redis"
	"billsense/internal/classifier"
	"billsense/internal/config"
	"billsense/internal/handler"
	"billsense/internal/logger"
	"billsense/internal/metrics"
	"billsense/internal/port"
	"billsense/internal/repository/noop"
	"billsense/internal/repository/postgres"
	"billsense/internal/router"
	"billsense/internal/service"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zl, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = zl.Sync() }()
	zap.ReplaceGlobals(zl)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	clf, err := classifier.New(nil, cfg.Classifier.Thresholds)
	if err != nil {
		return fmt.Errorf("failed to build classifier: %w", err)
	}

	checks := map[string]handler.ReadinessCheck{}

	// History storage
	var repo port.ClassificationRepository = noop.NewClassificationRepo()
	if cfg.DB.Enabled {
		db, err := postgres.NewDB(&cfg.DB)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
		repo = postgres.NewClassificationRepo(db)
		checks["database"] = db.PingContext
		zl.Info("classification history enabled", zap.String("host", cfg.DB.Host), zap.String("db", cfg.DB.Name))
	} else {
		zl.Info("classification history disabled")
	}

	// Result cache
	var cache port.ResultCache
	if cfg.Redis.Enabled {
		client, err := rediscache.NewClient(&cfg.Redis)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer func() { _ = client.Close() }()
		cache = rediscache.NewResultCache(client, cfg.Redis.Prefix, cfg.Redis.TTL)
		checks["redis"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }
		zl.Info("result cache enabled", zap.String("address", cfg.Redis.Address), zap.Duration("ttl", cfg.Redis.TTL))
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.New(reg)
	}

	// Initialize services
	classifySvc := service.NewClassificationService(clf, repo, cache, m, zl, service.ClassificationOptions{
		MaxTextBytes: cfg.Classifier.MaxTextBytes,
		LogTrace:     cfg.Classifier.LogTrace,
	})
	historySvc := service.NewHistoryService(repo)

	// Initialize handlers
	// JSON escaping can expand text, so the body limit leaves headroom over the text limit.
	maxBody := int64(cfg.Classifier.MaxTextBytes)*2 + 64<<10
	classifyH := handler.NewClassifyHandler(classifySvc, cfg.Classifier.IncludeDebug, maxBody)
	historyH := handler.NewHistoryHandler(historySvc)
	healthH := handler.NewHealthHandler(checks)

	r := router.Setup(cfg, zl, m, classifyH, historyH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		zl.Info("server starting", zap.String("addr", srv.Addr), zap.String("environment", cfg.Server.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zl.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
