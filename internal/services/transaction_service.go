package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shortiehands/finances-tracking-app/internal/amqp"
	"github.com/shortiehands/finances-tracking-app/internal/core"
	"github.com/shortiehands/finances-tracking-app/internal/ledger"
)

// TransactionService wraps a TransactionStore and publishes change events for
// successful mutations. Publishing is best-effort: the record is already
// persisted, so a publish failure is logged but never surfaced to the caller.
type TransactionService struct {
	store      ledger.TransactionStore
	amqpClient *amqp.Client
}

func NewTransactionService(store ledger.TransactionStore, amqpClient *amqp.Client) *TransactionService {
	return &TransactionService{
		store:      store,
		amqpClient: amqpClient,
	}
}

func (s *TransactionService) Insert(ctx context.Context, tx core.Transaction) (int64, error) {
	id, err := s.store.Insert(ctx, tx)
	if err != nil {
		return 0, fmt.Errorf("save transaction: %w", err)
	}

	s.publish(ctx, amqp.ActionCreated, id)
	return id, nil
}

func (s *TransactionService) GetByID(ctx context.Context, id int64) (core.Transaction, error) {
	return s.store.GetByID(ctx, id)
}

func (s *TransactionService) GetAll(ctx context.Context) ([]core.Transaction, error) {
	return s.store.GetAll(ctx)
}

func (s *TransactionService) Update(ctx context.Context, id int64, tx core.Transaction) error {
	if err := s.store.Update(ctx, id, tx); err != nil {
		return err
	}

	s.publish(ctx, amqp.ActionUpdated, id)
	return nil
}

func (s *TransactionService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, amqp.ActionDeleted, id)
	return nil
}

func (s *TransactionService) publish(ctx context.Context, action amqp.Action, id int64) {
	if s.amqpClient == nil {
		return
	}
	if err := s.amqpClient.PublishTransactionEvent(ctx, action, id); err != nil {
		slog.ErrorContext(ctx, "Failed to publish transaction event",
			"id", id, "action", action, "error", err)
	}
}

// Close closes the AMQP connection if one is configured. The underlying store
// is owned by the backend factory and closed there.
func (s *TransactionService) Close() error {
	if s.amqpClient != nil {
		if err := s.amqpClient.Close(); err != nil {
			return fmt.Errorf("close amqp client: %w", err)
		}
	}
	return nil
}
