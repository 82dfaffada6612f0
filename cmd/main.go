package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	_ "github.com/bilabonnement/rental-service/cmd/docs"
	"github.com/bilabonnement/rental-service/internal/config"
	"github.com/bilabonnement/rental-service/internal/handlers"
	"github.com/bilabonnement/rental-service/internal/repository"
	"github.com/bilabonnement/rental-service/internal/server"
	"github.com/bilabonnement/rental-service/internal/storage"
)

// @title RentalService API
// @version 1.0
// @description CRUD API for car rental contracts.
// @host localhost:8080

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("loading config", zap.Error(err))
	}

	store, err := storage.Open(cfg, logger)
	if err != nil {
		logger.Fatal("opening store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.Init(ctx); err != nil {
		logger.Fatal("initializing schema", zap.Error(err))
	}

	repo := repository.New(store, logger)

	if cfg.SeedDataPath != "" {
		src, err := storage.NewCSVSource(cfg.SeedDataPath)
		if err != nil {
			logger.Warn("seed source unavailable, skipping import", zap.Error(err))
		} else if err := store.SeedIfEmpty(ctx, src, repo.Create); err != nil {
			logger.Fatal("seeding database", zap.Error(err))
		}
	}

	h := handlers.NewHandler(repo, logger)
	router := server.NewRouter(h, logger)

	serverAddr := ":" + cfg.ServerPort
	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", serverAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigs
	logger.Info("shutting down", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	} else {
		logger.Info("server stopped cleanly")
	}
}
