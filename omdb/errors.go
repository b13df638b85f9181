package omdb

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid omdb configuration")
	// ErrEmptyQuery indicates a blank search query; no request is issued
	ErrEmptyQuery = errors.New("search query is empty")
	// ErrNotFound indicates the API reported no record for the given id
	ErrNotFound = errors.New("movie not found")
)

// APIError represents a non-success HTTP response from the API
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("omdb API error: status %d: %s", e.StatusCode, e.Body)
}

// IsUnauthorized checks if the error indicates a rejected API key
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}
