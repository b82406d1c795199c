package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"taskkeep/config"
	_ "taskkeep/docs" // Swagger docs
	"taskkeep/internal/httpserver"
	"taskkeep/internal/middleware"
	taskHTTP "taskkeep/internal/task/delivery/http"
	fileRepo "taskkeep/internal/task/repository/file"
	"taskkeep/internal/task/usecase"
	"taskkeep/pkg/datemath"
	"taskkeep/pkg/log"
)

// @title       Taskkeep API
// @description Personal task record store: filters, sorts, search, recurrence and atomic file persistence.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting taskkeep...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Store path: %s", cfg.Store.Path)

	// 3. Date arithmetic in the configured timezone
	dates, err := datemath.NewParser(cfg.Store.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Store.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	// 4. Task domain
	store := fileRepo.New(cfg.Store.Path, logger)
	taskUC := usecase.New(logger, store, store, dates, nil)
	taskHandler := taskHTTP.New(logger, taskUC)

	// 5. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  middleware.New(logger, cfg),
		TaskHandler: taskHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
