package api

import (
	"errors"
	"fmt"
)

// Common API errors.
var (
	// ErrNotFound is returned when a resource does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned when the bearer token is missing,
	// expired, or rejected. Callers must treat it as a forced logout.
	ErrUnauthorized = errors.New("unauthorized — session expired, log in again")
)

// ValidationError reports a request that was rejected locally before
// anything was sent to the server.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ServerError reports a 5xx or otherwise unexpected response body.
type ServerError struct {
	Status int
	Body   string
}

func (e ServerError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.Status, e.Body)
}

// NetworkError reports that no response was received at all.
type NetworkError struct {
	Err error
}

func (e NetworkError) Error() string {
	return fmt.Errorf("network: %w", e.Err).Error()
}

func (e NetworkError) Unwrap() error {
	return e.Err
}
