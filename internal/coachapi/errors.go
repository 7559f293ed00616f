package coachapi

import (
	"errors"
	"fmt"
)

// ErrUnauthorized indicates the API token is missing, invalid, or expired.
var ErrUnauthorized = errors.New("coaching API token is invalid or expired")

// ErrRateLimited indicates the API rate limit was exceeded.
var ErrRateLimited = errors.New("coaching API rate limit exceeded")

// ErrNotFound indicates the requested resource does not exist on the backend.
var ErrNotFound = errors.New("coaching API resource not found")

// ServerError represents a 5xx response from the coaching API.
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("coaching API server error (status %d)", e.StatusCode)
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
