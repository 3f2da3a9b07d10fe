package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/tropicaldog17/cryptofolio/docs"
	"github.com/tropicaldog17/cryptofolio/internal/config"
	"github.com/tropicaldog17/cryptofolio/internal/handlers"
	"github.com/tropicaldog17/cryptofolio/internal/logger"
	"github.com/tropicaldog17/cryptofolio/internal/repositories"
	"github.com/tropicaldog17/cryptofolio/internal/services"
	"github.com/tropicaldog17/cryptofolio/internal/storage"
)

// @title Cryptofolio API
// @version 1.0
// @description Record cryptocurrency purchases and view per-coin holdings.
// @BasePath /api
func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	zlog, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to create logger: ", err)
	}
	defer zlog.Sync()

	kv, closeKV, err := storage.Open(cfg)
	if err != nil {
		zlog.Fatal("failed to open storage", zap.String("backend", cfg.StoreBackend), zap.Error(err))
	}
	defer closeKV()
	zlog.Info("storage ready", zap.String("backend", cfg.StoreBackend), zap.String("key", cfg.StorageKey))

	ctx := context.Background()
	store := repositories.NewTransactionStore(kv, cfg.StorageKey, zlog)
	portfolio := services.NewPortfolioService(ctx, store, zlog)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.NewRouter(portfolio, zlog),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("server starting", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Error("graceful shutdown failed", zap.Error(err))
	}
	zlog.Info("server stopped")
}
