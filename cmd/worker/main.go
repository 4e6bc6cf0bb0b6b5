package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"guest-order-api/core/config"
	"guest-order-api/core/constants"
	"guest-order-api/core/database"
	"guest-order-api/core/logger"
	"guest-order-api/core/queue"
	authRepository "guest-order-api/modules/auth/repository"
	menuRepository "guest-order-api/modules/menu/repository"
	"guest-order-api/modules/notify"

	"github.com/hibiken/asynq"
	"github.com/robfig/cron/v3"
)

// specialRetention is how long expired daily specials are kept before the
// nightly purge removes them.
const specialRetention = 7 * 24 * time.Hour

func main() {
	if err := run(); err != nil {
		logger.Error("run worker error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.Server.LogLevel)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	srv := queue.NewServer(cfg.Redis, map[string]int{
		constants.QueueNotifications: 10,
	})

	mux := asynq.NewServeMux()
	notify.NewHandlers(cfg).Register(mux)

	specials := menuRepository.NewSpecialRepository(&db)
	users := authRepository.NewUserRepository(&db)

	scheduler := cron.New()
	_, _ = scheduler.AddFunc("30 3 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		cutoff := time.Now().Add(-specialRetention)
		purged, err := specials.PurgeExpired(ctx, cutoff)
		if err != nil {
			logger.Error("Worker:PurgeExpiredSpecials:Error", "error", err)
			return
		}
		logger.Info("Worker:PurgeExpiredSpecials:Done", "purged", purged)
	})
	_, _ = scheduler.AddFunc("0 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		cleared, err := users.ClearExpiredTokens(ctx, time.Now())
		if err != nil {
			logger.Error("Worker:ClearExpiredTokens:Error", "error", err)
			return
		}
		if cleared > 0 {
			logger.Info("Worker:ClearExpiredTokens:Done", "cleared", cleared)
		}
	})
	scheduler.Start()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run(mux)
	}()
	logger.Info("Worker started", "queues", constants.QueueNotifications)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	logger.Info("Worker shutting down...")
	scheduler.Stop()
	srv.Shutdown()
	return nil
}
