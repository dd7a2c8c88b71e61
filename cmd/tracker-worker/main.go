package main

import (
	"context"
	"errors"
	"os"

	"github.com/shortiehands/finances-tracking-app/internal/amqp"
	"github.com/shortiehands/finances-tracking-app/internal/cli"
	"github.com/shortiehands/finances-tracking-app/internal/storage"
	"github.com/shortiehands/finances-tracking-app/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the worker")
		os.Exit(1)
	}

	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to initialize SQLite repository", "error", err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer repo.Close()

	client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	ctx, cancel := cli.ShutdownContext(logger)
	defer cancel()

	w := worker.NewEventWorker(repo)

	logger.Info("Starting tracker-worker",
		"queue", cfg.AMQPQueue,
		"exchange", cfg.AMQPExchange,
		"db_path", cfg.SQLiteDBPath)

	if err := client.ConsumeTransactionEvents(ctx, w.HandleEvent); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Event consumption failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Worker stopped")
}
