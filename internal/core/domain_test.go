package core

import (
	"errors"
	"testing"
	"time"
)

func validTransaction() Transaction {
	return Transaction{
		Date:        time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Type:        TypeExpense,
		Amount:      12.50,
		Category:    "food",
		Description: "lunch",
	}
}

func TestTransactionType_IsValid(t *testing.T) {
	tests := []struct {
		typ   TransactionType
		valid bool
	}{
		{TypeIncome, true},
		{TypeExpense, true},
		{"transfer", false},
		{"", false},
		{"Income", false},
	}

	for _, tt := range tests {
		if got := tt.typ.IsValid(); got != tt.valid {
			t.Errorf("IsValid(%q) = %v, want %v", tt.typ, got, tt.valid)
		}
	}
}

func TestTransaction_Validate(t *testing.T) {
	bus := "bus"

	tests := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr error
	}{
		{
			name:   "valid expense",
			mutate: func(tx *Transaction) {},
		},
		{
			name: "valid income",
			mutate: func(tx *Transaction) {
				tx.Type = TypeIncome
				tx.Category = "salary"
			},
		},
		{
			name: "valid transport with sub-type",
			mutate: func(tx *Transaction) {
				tx.Category = CategoryTransport
				tx.TransportType = &bus
			},
		},
		{
			name:    "zero date",
			mutate:  func(tx *Transaction) { tx.Date = time.Time{} },
			wantErr: ErrInvalidDate,
		},
		{
			name:    "unknown type",
			mutate:  func(tx *Transaction) { tx.Type = "transfer" },
			wantErr: ErrInvalidType,
		},
		{
			name:    "blank category",
			mutate:  func(tx *Transaction) { tx.Category = "   " },
			wantErr: ErrEmptyCategory,
		},
		{
			name:    "blank description",
			mutate:  func(tx *Transaction) { tx.Description = "" },
			wantErr: ErrEmptyDescription,
		},
		{
			name:    "transport without sub-type",
			mutate:  func(tx *Transaction) { tx.Category = CategoryTransport },
			wantErr: ErrMissingTransportType,
		},
		{
			name:   "negative amount is allowed",
			mutate: func(tx *Transaction) { tx.Amount = -5 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTransaction()
			tt.mutate(&tx)

			err := tx.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
