package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"talentloop/internal/assessment"
	"talentloop/internal/catalog"
	"talentloop/internal/config"
	"talentloop/internal/db"
	apihttp "talentloop/internal/http"
	"talentloop/internal/repository"
	"talentloop/internal/session"
	"talentloop/internal/textsignal"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
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

	cat, err := catalog.New()
	if err != nil {
		logger.Fatal("load catalog", zap.Error(err))
	}
	if _, err := cat.Set(cfg.DefaultAttributeSet); err != nil {
		logger.Fatal("default attribute set", zap.Error(err))
	}

	scorer := textsignal.DefaultScorer
	pipeline := assessment.NewPipeline(scorer, cat.Attribute)
	hybrid := assessment.NewHybridValidator(scorer, logger)
	schema := assessment.NewSchemaValidator()

	var assessments repository.AssessmentRepository = repository.NewInMemoryAssessmentRepository()
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		if err := db.Ping(ctx, pool); err != nil {
			logger.Fatal("db ping", zap.Error(err))
		}
		assessments = repository.NewPgAssessmentRepository(pool)
	} else {
		logger.Warn("no database configured, assessments kept in memory")
	}

	var limiter apihttp.RateLimiter
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
			limiter = apihttp.NewRedisRateLimiter(redisClient, time.Minute, cfg.SessionStartsPerMinute)
		}
		cancel()
	}

	idleTTL := time.Duration(cfg.SessionIdleTTLMinutes) * time.Minute
	manager := session.NewManager(session.NewMemoryStore(), cat, pipeline, idleTTL, logger)

	jwtSvc := apihttp.NewJWTService(cfg.JWTSecret, 15*time.Minute)

	sessionHandler := apihttp.NewSessionHandler(logger, manager, assessments, limiter)
	assessmentHandler := apihttp.NewAssessmentHandler(logger, assessments, schema, hybrid)
	interviewHandler := apihttp.NewInterviewHandler(logger, cat, pipeline, assessments, limiter)
	router := apihttp.NewRouter(logger, jwtSvc, sessionHandler, assessmentHandler, interviewHandler)

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
