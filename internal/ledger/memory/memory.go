// Package memory provides an in-memory TransactionStore used by tests and the
// "memory" data backend.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/shortiehands/finances-tracking-app/internal/core"
)

type Store struct {
	mu     sync.RWMutex
	nextID int64
	txs    map[int64]core.Transaction
}

func NewStore() *Store {
	return &Store{
		nextID: 1,
		txs:    make(map[int64]core.Transaction),
	}
}

func (s *Store) Insert(ctx context.Context, tx core.Transaction) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx.ID = s.nextID
	s.nextID++
	s.txs[tx.ID] = tx
	return tx.ID, nil
}

func (s *Store) GetByID(ctx context.Context, id int64) (core.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.txs[id]
	if !ok {
		return core.Transaction{}, fmt.Errorf("get transaction %d: %w", id, core.ErrNotFound)
	}
	return tx, nil
}

func (s *Store) GetAll(ctx context.Context) ([]core.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Transaction, 0, len(s.txs))
	for _, tx := range s.txs {
		out = append(out, tx)
	}
	// Newest first; ties broken by descending id for a stable listing.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *Store) Update(ctx context.Context, id int64, tx core.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.txs[id]; !ok {
		return fmt.Errorf("update transaction %d: %w", id, core.ErrNotFound)
	}
	tx.ID = id
	s.txs[id] = tx
	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.txs[id]; !ok {
		return fmt.Errorf("delete transaction %d: %w", id, core.ErrNotFound)
	}
	delete(s.txs, id)
	return nil
}
