package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"travelmatch/internal/config"
	"travelmatch/internal/db"
	apihttp "travelmatch/internal/http"
	"travelmatch/internal/repository"
	"travelmatch/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	travelerRepo := repository.NewPgTravelerRepository(pool)
	engine := service.NewCompatEngine(service.DefaultWeights(), cfg.BudgetSensitivity)
	matchSvc := service.NewMatchService(logger, travelerRepo, engine)
	jwtSvc := service.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}

	var limiter service.RequestRateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			limiter = service.NewRedisRateLimiter(
				redisClient,
				time.Duration(cfg.MatchRateWindowSecs)*time.Second,
				cfg.MatchRateMaxRequests,
			)
		}
		cancel()
	}

	travelerHandler := apihttp.NewTravelerHandler(logger, travelerRepo)
	matchHandler := apihttp.NewMatchHandler(logger, matchSvc)
	authHandler := apihttp.NewAuthHandler(logger, travelerRepo, jwtSvc)
	router := apihttp.NewRouter(logger, travelerHandler, matchHandler, authHandler, jwtSvc, limiter)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
