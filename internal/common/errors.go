// Package common provides shared utilities and types used across the application.
package common

import "errors"

// Common application errors.
var (
	// Database errors.
	ErrNotFound = errors.New("not found")

	// Scraping errors.
	ErrFetchFailed   = errors.New("page fetch failed")
	ErrParseFailed   = errors.New("page parse failed")
	ErrNoCardList    = errors.New("card list container not found")
	ErrNoPageContent = errors.New("availability cell not found")
)

// RetryableError wraps an error with retry-specific metadata.
type RetryableError struct {
	Err       error
	Retryable bool
}

func (e *RetryableError) Error() string {
	return e.Err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}
