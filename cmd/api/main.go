package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"giftlist/config"
	_ "giftlist/docs" // Swagger docs
	"giftlist/internal/httpserver"
	"giftlist/internal/repository"
	"giftlist/internal/repository/memory"
	"giftlist/internal/repository/postgre"
	"giftlist/pkg/events"
	"giftlist/pkg/imagestore"
	"giftlist/pkg/log"
)

// @title       Gift List API
// @description Gift-list service: lists, items, reservations and identity transfer.
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

	logger.Info(ctx, "Starting giftlist API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Stores
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
		Root:           cfg.Storage.ImageRoot,
		FetchPerSecond: cfg.Storage.FetchPerSecond,
		FetchBurst:     cfg.Storage.FetchBurst,
		CacheSize:      cfg.Storage.ImageCacheSize,
		MaxBytes:       cfg.Storage.MaxImageBytes,
	}, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize image store: ", err)
		return
	}

	// 4. Event hook (optional)
	var recorder events.Recorder = events.Noop{}
	if cfg.Events.WebhookURL != "" {
		recorder = events.NewWebhook(cfg.Events.WebhookURL, logger)
		logger.Infof(ctx, "Event webhook registered at %s", cfg.Events.WebhookURL)
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Repository:      repo,
		Images:          images,
		Events:          recorder,
		MaxItemsPerList: cfg.Limits.MaxItemsPerList,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
