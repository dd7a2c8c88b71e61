package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// requestPayload wraps a decoded JSON object and distinguishes absent keys from
// zero values, which the required-field validation depends on.
type requestPayload struct {
	data map[string]any
}

// parsePayload reads and decodes the request body as a JSON object.
func parsePayload(r *http.Request) (*requestPayload, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	data := make(map[string]any)
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	return &requestPayload{data: data}, nil
}

// Has reports whether the key is present in the payload, regardless of value.
func (p *requestPayload) Has(key string) bool {
	_, ok := p.data[key]
	return ok
}

// String returns the sanitized string form of the value under key.
func (p *requestPayload) String(key string) string {
	v, ok := p.data[key]
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return sanitizeInput(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

// StringPtr returns a pointer to the value under key, or nil when the key is
// absent or null.
func (p *requestPayload) StringPtr(key string) *string {
	v, ok := p.data[key]
	if !ok || v == nil {
		return nil
	}
	s := p.String(key)
	return &s
}

// Float coerces the value under key to a float64. JSON numbers pass through;
// numeric strings are parsed; anything else is an error.
func (p *requestPayload) Float(key string) (float64, error) {
	v, ok := p.data[key]
	if !ok {
		return 0, fmt.Errorf("missing field %q", key)
	}
	switch val := v.(type) {
	case float64:
		return val, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not a number", val)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%v is not a number", v)
	}
}
