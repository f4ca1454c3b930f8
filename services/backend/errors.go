package backend

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx answer from the NepWork REST backend.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Detail     string // the backend's {"detail": ...} message, if any
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend: %s %s returned %d: %s", e.Method, e.Path, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("backend: %s %s returned %d", e.Method, e.Path, e.StatusCode)
}

// Unauthorized reports whether the backend rejected the caller's credentials.
func (e *APIError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// ServerSide reports whether the failure originated in the backend itself.
func (e *APIError) ServerSide() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

// DetailOf returns the backend detail message carried by err, if any.
func DetailOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}

// ErrTransport wraps failures that never produced an HTTP response.
var ErrTransport = errors.New("backend unreachable")
