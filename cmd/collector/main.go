package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"giftlist/config"
	"giftlist/internal/collector"
	"giftlist/internal/repository"
	"giftlist/internal/repository/memory"
	"giftlist/internal/repository/postgre"
	"giftlist/pkg/imagestore"
	"giftlist/pkg/log"
)

// main is the entry point for the background collector service. It runs the
// orphaned-image collector on a fixed interval; the collector itself is
// single-shot and knows nothing about scheduling.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting giftlist collector...")

	var repo repository.Repository
	switch cfg.Database.Driver {
	case "postgres":
		db, err := sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			logger.Error(ctx, "Failed to open database: ", err)
			return
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			logger.Error(ctx, "Failed to ping database: ", err)
			return
		}
		repo = postgre.New(db, logger)
	default:
		repo = memory.New(logger)
	}

	images, err := imagestore.NewFileStore(imagestore.Config{
		Root: cfg.Storage.ImageRoot,
	}, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize image store: ", err)
		return
	}

	uc := collector.New(repo, images, logger, collector.Config{
		PageSize:          cfg.Collector.PageSize,
		FalsePositiveRate: cfg.Collector.FalsePositiveRate,
		DeleteConcurrency: cfg.Collector.DeleteConcurrency,
	})

	interval := time.Duration(cfg.Collector.IntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = time.Hour
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	run := func() {
		report, err := uc.Collect(ctx)
		if err != nil {
			logger.Errorf(ctx, "collector run failed: %v", err)
			return
		}
		logger.Infof(ctx, "collector run: deleted=%d kept=%d scanned=%d",
			report.FilesDeleted, report.FilesKept, report.FilesScanned)
	}

	run()
	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Collector stopped gracefully")
			return
		case <-ticker.C:
			run()
		}
	}
}
