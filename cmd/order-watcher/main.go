package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"restaurant-manager/internal/api"
	"restaurant-manager/internal/config"
	"restaurant-manager/internal/database"
	"restaurant-manager/internal/notification"
	"restaurant-manager/internal/order"
	"restaurant-manager/internal/session"
	"restaurant-manager/internal/watch"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	store, err := session.NewStore(cfg.SessionPath)
	if err != nil {
		logger.Fatal("failed to initialize session store", zap.Error(err))
	}
	sess, err := store.Load()
	if err != nil {
		logger.Fatal("no stored session; log in with restaurant-cli first", zap.Error(err))
	}
	if sess.Expired() {
		logger.Fatal("stored session has expired; log in with restaurant-cli first")
	}

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	client := api.NewClient(cfg)
	orders := order.NewService(client)
	inbox := notification.NewRepository(db.SQL)

	watcher, err := watch.New(orders, inbox, sess.Token, cfg.PollInterval, logger)
	if err != nil {
		logger.Fatal("failed to create watcher", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("order watcher starting", zap.Duration("interval", cfg.PollInterval))
	if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("watcher failed", zap.Error(err))
	}
	logger.Info("order watcher stopped")
}
