package queue

import (
	"guest-order-api/core/config"
	"guest-order-api/core/logger"

	"github.com/hibiken/asynq"
)

// NewClient returns an asynq client for enqueueing background tasks.
func NewClient(cfg config.RedisConfig) *asynq.Client {
	return asynq.NewClient(RedisOpt(cfg))
}

func RedisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// NewServer returns the asynq server used by cmd/worker.
func NewServer(cfg config.RedisConfig, queues map[string]int) *asynq.Server {
	logger.Info("Initializing task queue server", "addr", cfg.Addr)
	return asynq.NewServer(RedisOpt(cfg), asynq.Config{
		Concurrency: 10,
		Queues:      queues,
	})
}
