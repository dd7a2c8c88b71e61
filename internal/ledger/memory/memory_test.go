package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shortiehands/finances-tracking-app/internal/core"
)

func newTx(day int, typ core.TransactionType, amount float64) core.Transaction {
	return core.Transaction{
		Date:        time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC),
		Type:        typ,
		Amount:      amount,
		Category:    "misc",
		Description: "test",
	}
}

func TestStore_InsertAndGetByID(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	id, err := s.Insert(ctx, newTx(1, core.TypeIncome, 100))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if id != 1 {
		t.Fatalf("first id = %d, want 1", id)
	}

	got, err := s.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != id || got.Amount != 100 || got.Type != core.TypeIncome {
		t.Fatalf("GetByID returned %+v", got)
	}
}

func TestStore_GetAllOrderedByDateDesc(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	for _, day := range []int{3, 1, 5} {
		if _, err := s.Insert(ctx, newTx(day, core.TypeExpense, float64(day))); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	all, err := s.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Date.After(all[i-1].Date) {
			t.Fatalf("not sorted by date desc: %v before %v", all[i-1].Date, all[i].Date)
		}
	}
}

func TestStore_Update(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	id, _ := s.Insert(ctx, newTx(1, core.TypeExpense, 10))

	replacement := newTx(2, core.TypeIncome, 42)
	if err := s.Update(ctx, id, replacement); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := s.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID after update: %v", err)
	}
	if got.ID != id {
		t.Fatalf("update must not change id, got %d", got.ID)
	}
	if got.Type != core.TypeIncome || got.Amount != 42 {
		t.Fatalf("update not applied: %+v", got)
	}
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	id, _ := s.Insert(ctx, newTx(1, core.TypeExpense, 10))
	if err := s.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := s.GetByID(ctx, id); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("GetByID after delete = %v, want ErrNotFound", err)
	}

	all, _ := s.GetAll(ctx)
	if len(all) != 0 {
		t.Fatalf("deleted record still listed: %+v", all)
	}
}

func TestStore_NotFound(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	if _, err := s.GetByID(ctx, 99); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("GetByID(99) = %v, want ErrNotFound", err)
	}
	if err := s.Update(ctx, 99, newTx(1, core.TypeExpense, 1)); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Update(99) = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, 99); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Delete(99) = %v, want ErrNotFound", err)
	}
}
