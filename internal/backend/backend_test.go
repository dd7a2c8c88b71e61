package backend

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shortiehands/finances-tracking-app/internal/config"
	"github.com/shortiehands/finances-tracking-app/internal/core"
)

func TestType_IsValid(t *testing.T) {
	tests := []struct {
		typ   Type
		valid bool
	}{
		{SQLiteBackend, true},
		{MemoryBackend, true},
		{"postgres", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := tt.typ.IsValid(); got != tt.valid {
			t.Errorf("IsValid(%q) = %v, want %v", tt.typ, got, tt.valid)
		}
	}
}

func TestNew_MemoryBackend(t *testing.T) {
	res, err := New(&config.Config{DataBackend: "memory"}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer res.Cleanup()

	id, err := res.Store.Insert(context.Background(), core.Transaction{
		Date:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Type:        core.TypeIncome,
		Amount:      1,
		Category:    "misc",
		Description: "t",
	})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero id")
	}
}

func TestNew_SQLiteBackend(t *testing.T) {
	cfg := &config.Config{
		DataBackend:  "sqlite",
		SQLiteDBPath: filepath.Join(t.TempDir(), "tracker.db"),
	}
	res, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := res.Cleanup(); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
}

func TestNew_InvalidBackend(t *testing.T) {
	if _, err := New(&config.Config{DataBackend: "postgres"}, nil); err == nil {
		t.Fatal("expected error for invalid backend type")
	}
}
