// Package worker contains the change-event consumer run by cmd/tracker-worker.
// It turns published transaction events into a structured audit log, re-fetching
// the current record for created and updated events.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shortiehands/finances-tracking-app/internal/amqp"
	"github.com/shortiehands/finances-tracking-app/internal/core"
	"github.com/shortiehands/finances-tracking-app/internal/ledger"
)

type EventWorker struct {
	store ledger.TransactionStore
}

func NewEventWorker(store ledger.TransactionStore) *EventWorker {
	return &EventWorker{store: store}
}

// HandleEvent logs one change event. Delete events carry everything we need;
// create and update events are enriched with the current record. A record that
// is gone by the time the event arrives was deleted after the mutation, so the
// event is logged as-is rather than requeued.
func (w *EventWorker) HandleEvent(ctx context.Context, msg *amqp.TransactionEventMessage) error {
	if msg.Action == amqp.ActionDeleted {
		slog.InfoContext(ctx, "Transaction event",
			"action", msg.Action,
			"id", msg.ID,
			"occurred_at", msg.Timestamp)
		return nil
	}

	tx, err := w.store.GetByID(ctx, msg.ID)
	if errors.Is(err, core.ErrNotFound) {
		slog.WarnContext(ctx, "Transaction event for missing record",
			"action", msg.Action,
			"id", msg.ID,
			"occurred_at", msg.Timestamp)
		return nil
	}
	if err != nil {
		return fmt.Errorf("fetch transaction %d: %w", msg.ID, err)
	}

	slog.InfoContext(ctx, "Transaction event",
		"action", msg.Action,
		"id", tx.ID,
		"type", tx.Type,
		"amount", tx.Amount,
		"category", tx.Category,
		"occurred_at", msg.Timestamp)
	return nil
}
