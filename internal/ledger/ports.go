// Package ledger defines the persistence ports for transaction records.
// Implementations live in internal/storage (SQLite) and internal/ledger/memory.
package ledger

import (
	"context"

	"github.com/shortiehands/finances-tracking-app/internal/core"
)

// TransactionStore is the full persistence contract for transaction records.
// GetByID, Update and Delete report a missing id with an error wrapping
// core.ErrNotFound.
type TransactionStore interface {
	// Insert persists a new record and returns the assigned id.
	Insert(ctx context.Context, tx core.Transaction) (int64, error)

	// GetByID returns the record with the given id.
	GetByID(ctx context.Context, id int64) (core.Transaction, error)

	// GetAll returns all records ordered by date descending.
	GetAll(ctx context.Context) ([]core.Transaction, error)

	// Update replaces all mutable fields of the record with the given id.
	Update(ctx context.Context, id int64, tx core.Transaction) error

	// Delete removes the record with the given id.
	Delete(ctx context.Context, id int64) error
}
