package main

import (
	"context"
	"fmt"
	"os"

	"taskkeep/config"
	"taskkeep/internal/task"
	fileRepo "taskkeep/internal/task/repository/file"
	"taskkeep/internal/task/usecase"
	"taskkeep/pkg/datemath"
	"taskkeep/pkg/log"
)

// One-shot upgrade of a legacy v1 task file into the configured store.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/import-v1/main.go <path/to/legacy-tasks.json>")
		os.Exit(1)
	}
	legacyPath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	dates, err := datemath.NewParser(cfg.Store.Timezone)
	if err != nil {
		dates, _ = datemath.NewParser("UTC")
	}

	store := fileRepo.New(cfg.Store.Path, logger)
	taskUC := usecase.New(logger, store, store, dates, nil)

	out, err := taskUC.ImportV1(ctx, task.ImportV1Input{Path: legacyPath})
	if err != nil {
		logger.Fatalf(ctx, "import failed: %v", err)
	}

	logger.Infof(ctx, "imported %d tasks from %s into %s", out.Imported, legacyPath, cfg.Store.Path)
}
