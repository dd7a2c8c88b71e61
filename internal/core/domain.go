package core

import (
	"errors"
	"strings"
	"time"
)

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"

	// CategoryTransport is the category that requires a transport sub-type.
	CategoryTransport = "transport"
)

type (
	TransactionType string

	// Transaction is a single income or expense record. TransportType is nil
	// unless the record belongs to the transport category.
	Transaction struct {
		ID            int64
		Date          time.Time
		Type          TransactionType
		Amount        float64
		Category      string
		Description   string
		TransportType *string
	}
)

var (
	ErrNotFound             = errors.New("transaction not found")
	ErrInvalidDate          = errors.New("invalid date")
	ErrInvalidType          = errors.New("invalid transaction type")
	ErrEmptyCategory        = errors.New("empty category")
	ErrEmptyDescription     = errors.New("empty description")
	ErrMissingTransportType = errors.New("transport type is required for transport category")
)

func (t TransactionType) IsValid() bool {
	switch t {
	case TypeIncome, TypeExpense:
		return true
	default:
		return false
	}
}

func (tx Transaction) Validate() error {
	if tx.Date.IsZero() {
		return ErrInvalidDate
	}
	if !tx.Type.IsValid() {
		return ErrInvalidType
	}
	if strings.TrimSpace(tx.Category) == "" {
		return ErrEmptyCategory
	}
	if strings.TrimSpace(tx.Description) == "" {
		return ErrEmptyDescription
	}
	if tx.Category == CategoryTransport && tx.TransportType == nil {
		return ErrMissingTransportType
	}
	return nil
}
