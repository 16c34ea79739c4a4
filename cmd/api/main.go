package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/platescan/backend/config"
	"github.com/platescan/backend/internal/api"
	"github.com/platescan/backend/internal/database"
	"github.com/platescan/backend/internal/server"
	"github.com/platescan/backend/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: logLevel(),
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}

	db, err := database.New(cfg)
	if err != nil {
		logger.Error("failed to initialize database", "err", err)
		os.Exit(1)
	}

	llm, err := service.NewCompletionService(logger)
	if err != nil {
		logger.Error("failed to initialize completion client", "err", err)
		os.Exit(1)
	}

	cache := service.NewAnalysisCache(database.NewRedis(cfg), logger)

	ctx := context.Background()
	var archive service.PhotoArchive
	s3cfg, err := config.NewS3Config(ctx, cfg)
	if err != nil {
		logger.Error("failed to initialize S3", "err", err)
		os.Exit(1)
	}
	if s3cfg != nil {
		archive = service.NewS3PhotoArchive(s3cfg, logger)
	} else {
		logger.Info("meal photo archive disabled: no S3 bucket configured")
	}

	recordStore := service.NewFoodStore(db)
	profileStore := service.NewUserProfileStore(db)

	analysis := service.NewAnalysisService(llm, recordStore, cache, archive, logger)
	analytics := service.NewAnalyticsService(recordStore)
	goals := service.NewGoalService(llm, profileStore, logger)

	srv := server.New(cfg, logger, server.Handlers{
		Food:     api.NewFoodHandler(analysis, recordStore),
		Recipe:   api.NewRecipeHandler(analysis, recordStore),
		Analysis: api.NewAnalysisHandler(analytics),
		Register: api.NewRegisterHandler(goals),
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func logLevel() slog.Level {
	if os.Getenv("LOG_LEVEL") == "debug" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
