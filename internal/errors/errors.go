// Package errors provides sentinel errors and error types for lichess-tv.
// It defines common error conditions and a structured stream error type
// that preserves context while allowing inspection with errors.Is() and
// errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrFeedClosed indicates the feed ended in an orderly way.
	ErrFeedClosed = errors.New("feed closed")

	// ErrRecordTooLarge indicates a record exceeded the configured maximum.
	ErrRecordTooLarge = errors.New("record exceeds maximum size")
)

// StreamError wraps errors from the feed with connection context: the
// feed URL and how many records had been delivered before the failure.
// It implements the error interface and supports unwrapping via
// errors.Is() and errors.As().
type StreamError struct {
	Err     error  // The underlying error
	URL     string // Feed URL (if known)
	Records int    // Records delivered before the failure
}

// Error returns a formatted error message including all available context.
func (e *StreamError) Error() string {
	msg := "stream error"
	if e.URL != "" {
		msg = fmt.Sprintf("stream error from %s", e.URL)
	}
	if e.Records > 0 {
		msg = fmt.Sprintf("%s after %d records", msg, e.Records)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error, enabling errors.Is() and
// errors.As() to work through the StreamError wrapper.
func (e *StreamError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the
// underlying error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
