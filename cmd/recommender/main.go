// cmd/recommender/main.go
package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"soundproofing-calculator/internal/api"
	"soundproofing-calculator/internal/cache"
	"soundproofing-calculator/internal/calculator"
	"soundproofing-calculator/internal/catalog"
	"soundproofing-calculator/internal/common/aws"
	"soundproofing-calculator/internal/common/config"
	"soundproofing-calculator/internal/common/database"
	"soundproofing-calculator/internal/common/logger"
	"soundproofing-calculator/internal/common/observability"
	"soundproofing-calculator/internal/engine"
	"soundproofing-calculator/internal/notify"
	"soundproofing-calculator/pkg/registry"
)

// retryWithBackoff attempts to execute a function with exponential backoff.
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

// sqlDB unwraps the pool from an optional postgres client.
func sqlDB(pg *database.PostgresClient) *sql.DB {
	if pg == nil {
		return nil
	}
	return pg.DB
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting recommender...",
		zap.String("environment", cfg.App.Environment),
		zap.String("address", cfg.Server.Address),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Redis. Optional: without it the in-process cache serves. ---
	var cch cache.Cache
	var redisClient *database.RedisClient
	if cfg.Database.Redis.Address != "" {
		err = retryWithBackoff(func() error {
			var err error
			redisClient, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return redisClient.Ping(ctx)
		}, 5, 2*time.Second, zapLog, "Redis connection")
		if err != nil {
			zapLog.Warn("redis unavailable, using in-process cache", zap.Error(err))
			redisClient = nil
		}
	}
	if redisClient != nil {
		defer redisClient.Close()
		cch = cache.New(redisClient.Client, log)
		zapLog.Info("Redis connected successfully")
	} else {
		cch = cache.Default()
	}

	// --- Init PostgreSQL. Optional: the material catalog falls back to
	// its embedded seed data. ---
	var pg *database.PostgresClient
	if cfg.Database.Postgres.Host != "" {
		err = retryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			return pg.Ping(ctx)
		}, 5, 2*time.Second, zapLog, "PostgreSQL connection")
		if err != nil {
			zapLog.Warn("postgres unavailable, material catalog will use seed data", zap.Error(err))
			pg = nil
		}
	}
	if pg != nil {
		defer pg.Close()
		zapLog.Info("PostgreSQL connected successfully")
	}

	// --- Init Elasticsearch. Optional: the solution catalog falls back to
	// its embedded seed data. ---
	var esClient *database.ElasticsearchClient
	if len(cfg.Database.Elasticsearch.Addresses) > 0 {
		err = retryWithBackoff(func() error {
			var err error
			esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
			if err != nil {
				return err
			}
			return esClient.Ping()
		}, 5, 2*time.Second, zapLog, "Elasticsearch connection")
		if err != nil {
			zapLog.Warn("elasticsearch unavailable, solution catalog will use seed data", zap.Error(err))
			esClient = nil
		}
	}
	if esClient != nil {
		zapLog.Info("Elasticsearch connected successfully")
	}

	// --- Catalogs ---
	materials := catalog.NewMaterials(sqlDB(pg), cch, log, time.Duration(cfg.Cache.MaterialTTL)*time.Second)
	solutions := catalog.NewSolutions(esClient, cfg.Database.Elasticsearch.Index, cch, log, time.Duration(cfg.Cache.DefaultTTL)*time.Second)

	if cfg.Calculator.RegistryPath != "" {
		reg, err := registry.LoadRegistry(cfg.Calculator.RegistryPath)
		if err != nil {
			zapLog.Warn("solution registry rejected", zap.String("path", cfg.Calculator.RegistryPath), zap.Error(err))
		} else {
			solutions.UseRegistry(reg.Solutions)
		}
	}

	// --- Calculators and engine ---
	costCalc := calculator.NewCostCalculator(materials, cch, log,
		calculator.WithLaborRate(cfg.Calculator.LaborRate),
		calculator.WithWastageFactor(cfg.Calculator.WastageFactor),
		calculator.WithCostTTL(time.Duration(cfg.Cache.CostTTL)*time.Second),
	)
	acousticCalc := calculator.NewAcousticCalculator(solutions, materials, cch, log,
		time.Duration(cfg.Cache.AcousticTTL)*time.Second)

	eng := engine.New(solutions, acousticCalc, costCalc, log)

	// --- Notifier. Optional: enabled by config, degraded when SES fails. ---
	var notifier *notify.Notifier
	if cfg.Notifications.Email.Enabled {
		sesClient, err := aws.NewSESClient(ctx, cfg.Notifications.AWS.Region)
		if err != nil {
			zapLog.Warn("ses unavailable, summary emails disabled", zap.Error(err))
		} else {
			notifier = notify.New(sesClient, cfg.Notifications.Email.FromEmail, log)
		}
	}

	// --- HTTP server ---
	server := api.NewServer(eng, notifier, cch, obs, log)
	httpServer := &http.Server{
		Addr:        cfg.Server.Address,
		Handler:     server.Routes(),
		ReadTimeout: time.Duration(cfg.Server.ReadTimeout) * time.Millisecond,
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("address", cfg.Server.Address))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Error("http server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	zapLog.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("http shutdown failed", zap.Error(err))
	}
	zapLog.Info("Shutdown complete")
}
