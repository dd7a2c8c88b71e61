// Package backend wires a configured TransactionStore together with its
// optional AMQP publisher, hiding the memory/sqlite choice from callers.
package backend

import (
	"fmt"
	"log/slog"

	"github.com/shortiehands/finances-tracking-app/internal/amqp"
	"github.com/shortiehands/finances-tracking-app/internal/config"
	"github.com/shortiehands/finances-tracking-app/internal/ledger"
	"github.com/shortiehands/finances-tracking-app/internal/ledger/memory"
	"github.com/shortiehands/finances-tracking-app/internal/services"
	"github.com/shortiehands/finances-tracking-app/internal/storage"
)

// Type represents the kind of data backend.
type Type string

const (
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

func (t Type) IsValid() bool {
	switch t {
	case SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// CleanupFunc releases backend resources.
type CleanupFunc func() error

// Result contains the wired store and its cleanup function.
type Result struct {
	Store   ledger.TransactionStore
	Cleanup CleanupFunc
}

// New builds the TransactionStore selected by cfg.DataBackend. When an AMQP URL
// is configured the store is wrapped in a TransactionService that publishes
// change events; an unreachable broker downgrades to plain storage with a
// warning rather than failing startup.
func New(cfg *config.Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	backendType := Type(cfg.DataBackend)
	if !backendType.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.DataBackend)
	}

	var (
		store   ledger.TransactionStore
		cleanup CleanupFunc
	)

	switch backendType {
	case SQLiteBackend:
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize SQLite repository: %w", err)
		}
		store = repo
		cleanup = repo.Close
		logger.Info("Initialized SQLite backend", "db_path", cfg.SQLiteDBPath)

	case MemoryBackend:
		store = memory.NewStore()
		cleanup = func() error { return nil }
		logger.Info("Initialized memory backend")
	}

	var amqpClient *amqp.Client
	if cfg.AMQPURL != "" {
		var err error
		amqpClient, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, continuing without events", "error", err)
		} else {
			logger.Info("Initialized AMQP client",
				"exchange", cfg.AMQPExchange,
				"queue", cfg.AMQPQueue)
		}
	}

	svc := services.NewTransactionService(store, amqpClient)
	storeCleanup := cleanup
	return &Result{
		Store: svc,
		Cleanup: func() error {
			if err := svc.Close(); err != nil {
				storeCleanup()
				return err
			}
			return storeCleanup()
		},
	}, nil
}
