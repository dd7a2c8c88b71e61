package http

import (
	"context"
	"testing"
	"time"
)

func TestRequestIDFrom(t *testing.T) {
	ctx := context.WithValue(context.Background(), requestIDKey, "req_abc123")
	if got := requestIDFrom(ctx); got != "req_abc123" {
		t.Errorf("requestIDFrom = %q, want req_abc123", got)
	}
	if got := requestIDFrom(context.Background()); got != "" {
		t.Errorf("requestIDFrom(empty context) = %q, want empty", got)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2025-03-01", want: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{in: "2025-03-01T14:30", want: time.Date(2025, 3, 1, 14, 30, 0, 0, time.UTC)},
		{in: "2025-03-01T14:30:15", want: time.Date(2025, 3, 1, 14, 30, 15, 0, time.UTC)},
		{in: "2025-03-01T14:30:15Z", want: time.Date(2025, 3, 1, 14, 30, 15, 0, time.UTC)},
		{in: "2025-03-01T14:30:15+02:00", want: time.Date(2025, 3, 1, 12, 30, 15, 0, time.UTC)},
		{in: "01/03/2025", wantErr: true},
		{in: "not-a-date", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDate(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseDate(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDate(%q) error: %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims whitespace", "  groceries  ", "groceries"},
		{"strips control characters", "gro\x00cer\x07ies", "groceries"},
		{"keeps tabs and newlines", "line one\nline two", "line one\nline two"},
		{"plain text untouched", "salary", "salary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeInput(tt.in); got != tt.want {
				t.Errorf("sanitizeInput(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
