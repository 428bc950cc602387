// Package errors classifies remote-store failures so callers (and the opt-in
// sequenced-save executor) can tell transient faults from permanent ones.
package errors

import "fmt"

// Category determines whether a failed remote call may be retried.
type Category int

const (
	// Recoverable faults are worth retrying: 5xx responses, timeouts,
	// connection resets.
	Recoverable Category = iota

	// Irrecoverable faults will not succeed on retry: most 4xx responses.
	Irrecoverable
)

func (c Category) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// ClassifiedError wraps a remote failure with its category and, for HTTP
// failures, the status code and response body.
type ClassifiedError struct {
	Category   Category
	StatusCode int    // 0 for non-HTTP failures
	Body       string // response body, kept for diagnostics
	Underlying error
}

func (e *ClassifiedError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] HTTP %d: %v", e.Category, e.StatusCode, e.Underlying)
	}
	return fmt.Sprintf("[%s] %v", e.Category, e.Underlying)
}

func (e *ClassifiedError) Unwrap() error { return e.Underlying }

// IsIrrecoverable reports whether err is classified as not worth retrying.
func IsIrrecoverable(err error) bool {
	if ce, ok := err.(*ClassifiedError); ok {
		return ce.Category == Irrecoverable
	}
	return false
}
