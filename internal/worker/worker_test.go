package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shortiehands/finances-tracking-app/internal/amqp"
	"github.com/shortiehands/finances-tracking-app/internal/core"
	"github.com/shortiehands/finances-tracking-app/internal/ledger/memory"
)

func TestHandleEvent_ExistingRecord(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	id, err := store.Insert(ctx, core.Transaction{
		Date:        time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Type:        core.TypeExpense,
		Amount:      9.5,
		Category:    "groceries",
		Description: "bread",
	})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	w := NewEventWorker(store)
	for _, action := range []amqp.Action{amqp.ActionCreated, amqp.ActionUpdated} {
		if err := w.HandleEvent(ctx, amqp.NewTransactionEventMessage(action, id)); err != nil {
			t.Errorf("HandleEvent(%s) = %v, want nil", action, err)
		}
	}
}

func TestHandleEvent_DeletedAndMissing(t *testing.T) {
	ctx := context.Background()
	w := NewEventWorker(memory.NewStore())

	// Delete events never hit the store.
	if err := w.HandleEvent(ctx, amqp.NewTransactionEventMessage(amqp.ActionDeleted, 7)); err != nil {
		t.Errorf("HandleEvent(deleted) = %v, want nil", err)
	}

	// A record removed before the event is consumed is logged, not retried.
	if err := w.HandleEvent(ctx, amqp.NewTransactionEventMessage(amqp.ActionUpdated, 7)); err != nil {
		t.Errorf("HandleEvent(missing record) = %v, want nil", err)
	}
}

type failingStore struct {
	*memory.Store
}

var errStore = errors.New("database unavailable")

func (failingStore) GetByID(ctx context.Context, id int64) (core.Transaction, error) {
	return core.Transaction{}, errStore
}

func TestHandleEvent_StoreFailureSurfaces(t *testing.T) {
	w := NewEventWorker(&failingStore{})

	err := w.HandleEvent(context.Background(), amqp.NewTransactionEventMessage(amqp.ActionCreated, 1))
	if !errors.Is(err, errStore) {
		t.Fatalf("HandleEvent = %v, want wrapped store error", err)
	}
}
