package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrEmptyOutline is returned by SuggestOutline when the backend responded
// successfully but produced no usable outline. Callers keep their current
// list and notify the user.
var ErrEmptyOutline = errors.New("outline suggestion returned no outline")

// Error is a non-2xx backend response. Detail carries the backend's
// `{"detail": ...}` payload when present.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

func (e *Error) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsUnauthorized reports whether err is a backend 401 (expired or missing
// credential).
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.IsUnauthorized()
}

// Detail extracts the backend error detail from err, or returns fallback.
func Detail(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}
