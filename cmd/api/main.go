package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"psy-match/internal/config"
	"psy-match/internal/db"
	apihttp "psy-match/internal/http"
	"psy-match/internal/metrics"
	"psy-match/internal/ranking"
	"psy-match/internal/repository"
	"psy-match/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	weights, err := ranking.LoadCalibration(cfg.RankingCalibrationFile)
	if err != nil {
		logger.Warn("ranking calibration ignored, using default weights", zap.Error(err))
	}
	logger.Info("ranking weights", zap.Any("weights", weights.Map()))

	var (
		m        *metrics.Metrics
		gatherer prometheus.Gatherer
	)
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.NewMetrics()
		if err := m.Register(reg); err != nil {
			logger.Fatal("metrics register", zap.Error(err))
		}
		gatherer = reg
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	clientRepo := repository.NewPgClientRepository(pool)
	specialistRepo := repository.NewPgSpecialistRepository(pool)

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer client.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := client.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-process cache and limiter", zap.Error(err))
		} else {
			redisClient = client
		}
		cancel()
	}

	var cache service.RankingCache
	if ttl := cfg.RankingCacheTTL(); ttl > 0 {
		cache = service.NewMemoryRankingCache(ttl)
		if redisClient != nil {
			cache = service.NewRedisRankingCache(redisClient, ttl, logger, m)
		}
	}

	var limiter service.RateLimiter
	if cfg.RateLimitPerMinute > 0 {
		limiter = service.NewMemoryRateLimiter(time.Minute, cfg.RateLimitPerMinute)
		if redisClient != nil {
			limiter = service.NewRedisRateLimiter(redisClient, time.Minute, cfg.RateLimitPerMinute)
		}
	}

	rankingSvc := service.NewRankingService(logger, clientRepo, specialistRepo, weights, cache, m)
	healthHandler := apihttp.NewHealthHandler(logger, pool)
	rankingHandler := apihttp.NewRankingHandler(logger, rankingSvc)
	helpHandler := apihttp.NewHelpHandler(weights)
	router := apihttp.NewRouter(logger, m, gatherer, limiter, healthHandler, rankingHandler, helpHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown", zap.Error(err))
		}
	}()

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", zap.Error(err))
	}
}
