package api

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnauthorized is returned when the CMS answers 401. The client has
// already invoked its unauthorized handler by the time callers see it.
var ErrUnauthorized = errors.New("api: unauthorized")

// Error is a response that arrived but reports failure, either through a
// non-2xx HTTP status or a non-success status in the body envelope.
type Error struct {
	Method     string
	Path       string
	StatusCode int    // HTTP status
	Status     int    // body status, 0 when absent
	Message    string // server "message" field
	ErrorText  string // server "error" field
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.ErrorText != "" {
		return e.ErrorText
	}
	code := e.StatusCode
	if e.Status != 0 {
		code = e.Status
	}
	return fmt.Sprintf("api: %s %s failed with status %d", e.Method, e.Path, code)
}

// TransportError means the request never produced a response.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("api: %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Message picks the human-readable text for err. Server-provided message
// wins, then the server error field, then the error's own text. Transport
// failures and empty errors fall back to fallback.
func Message(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		if m := strings.TrimSpace(apiErr.Message); m != "" {
			return m
		}
		if m := strings.TrimSpace(apiErr.ErrorText); m != "" {
			return m
		}
		return fallback
	}
	var transport *TransportError
	if errors.As(err, &transport) {
		return fallback
	}
	if m := strings.TrimSpace(err.Error()); m != "" {
		return m
	}
	return fallback
}
