// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"issuing-service/config"
	"issuing-service/internal/handler"
	"issuing-service/internal/issuer"
	"issuing-service/internal/repository"
	"issuing-service/internal/router"
	"issuing-service/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	logger.Info("starting issuing service")

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, relying on system env vars")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	logger.Info("configuration loaded",
		zap.String("environment", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
		zap.String("store_backend", cfg.Store.Backend),
		zap.String("issuer_mode", cfg.Issuer.Mode))

	ctx := context.Background()

	// Select the transaction store backend
	var store repository.TransactionRepository
	switch cfg.Store.Backend {
	case config.StorePostgres:
		dbPool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer dbPool.Close()

		if err := dbPool.Ping(ctx); err != nil {
			logger.Fatal("failed to ping database", zap.Error(err))
		}
		if _, err := dbPool.Exec(ctx, repository.Schema); err != nil {
			logger.Fatal("failed to apply schema", zap.Error(err))
		}

		logger.Info("connected to database", zap.String("database", cfg.Database.DBName))
		store = repository.NewPostgresRepository(dbPool)

	case config.StoreRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Fatal("failed to ping redis", zap.Error(err))
		}

		logger.Info("connected to redis", zap.String("addr", cfg.Redis.Addr()))
		store = repository.NewRedisRepository(rdb)

	case config.StoreMemory:
		logger.Warn("using in-memory store, transactions will not survive restarts")
		store = repository.NewMemoryRepository()
	}

	// Select the issuer client
	var issuerClient issuer.Client
	switch cfg.Issuer.Mode {
	case config.IssuerHTTP:
		issuerClient = issuer.NewHTTPClient(cfg.Issuer.BaseURL, cfg.Issuer.Timeout)
	case config.IssuerMock:
		issuerClient = issuer.NewMockClient(cfg.Issuer.MaxAmount, nil)
	}

	// Wire usecases and handlers
	paymentUC := usecase.NewPaymentUsecase(store, issuerClient, logger)
	paymentHandler := handler.NewPaymentHandler(paymentUC, logger)

	r := router.SetupRoutes(paymentHandler, store, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
