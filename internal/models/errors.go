package models

import (
	"errors"
	"fmt"
)

var (
	// ErrFeedUnavailable indicates that a feed could not be fetched or parsed
	ErrFeedUnavailable = errors.New("feed unavailable")

	// ErrFetchTimeout indicates that fetching a feed timed out
	ErrFetchTimeout = errors.New("timeout while fetching feed")

	// ErrCacheMiss indicates that no fresh entry exists for the requested key
	ErrCacheMiss = errors.New("cache miss")

	// ErrRateLimitExceeded indicates that rate limit has been exceeded
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
)

// SourceError represents an error specific to one feed source operation
type SourceError struct {
	Source  string
	Message string
	Err     error
}

func (e *SourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("source %s: %s: %v", e.Source, e.Message, e.Err)
	}
	return fmt.Sprintf("source %s: %s", e.Source, e.Message)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError creates a new source-specific error
func NewSourceError(source, message string, err error) *SourceError {
	return &SourceError{
		Source:  source,
		Message: message,
		Err:     err,
	}
}
