// Package httpclient provides shared HTTP utilities for release sources.
package httpclient

import (
	"fmt"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single release fetch. There is no retry: a failed
// check surfaces its error and re-checking is the caller's decision.
const DefaultTimeout = 30 * time.Second

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	Message string
	Code    int
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("HTTP %d", e.Code)
}

// HTTPStatusCode returns the HTTP status code.
func (e *HTTPError) HTTPStatusCode() int {
	return e.Code
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// New creates a new http.Client with the default timeout.
func New() *http.Client {
	return &http.Client{Timeout: DefaultTimeout}
}

// NewWithTimeout creates a new http.Client with a custom timeout.
func NewWithTimeout(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
