package reminder

import (
	"errors"
	"fmt"
)

// Kind classifies a reminder error so the caller can decide between
// continuing and aborting without inspecting error messages.
type Kind int

const (
	// KindConfig marks a missing or malformed configuration value.
	KindConfig Kind = iota
	// KindInit marks a failure to construct an external client.
	KindInit
	// KindFetch marks a single calendar's query failure. Fetch errors are
	// recoverable: the run continues with the remaining calendars.
	KindFetch
	// KindSend marks a failure to deliver the reminder email.
	KindSend
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindInit:
		return "init"
	case KindFetch:
		return "fetch"
	case KindSend:
		return "send"
	default:
		return "unknown"
	}
}

// Error wraps an underlying failure with its Kind and, for fetch errors, the
// calendar it belongs to.
type Error struct {
	Kind     Kind
	Calendar string
	Err      error
}

func (e *Error) Error() string {
	if e.Calendar != "" {
		return fmt.Sprintf("%s error for calendar %s: %v", e.Kind, e.Calendar, e.Err)
	}
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err with the given kind.
func NewError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// newFetchError wraps a per-calendar query failure.
func newFetchError(calendarID string, err error) *Error {
	return &Error{Kind: KindFetch, Calendar: calendarID, Err: err}
}

// KindOf returns the Kind of err, or ok=false when err carries no kind.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsFatal reports whether err should terminate the run. Every kind except
// Fetch is fatal; unclassified errors are fatal too.
func IsFatal(err error) bool {
	if kind, ok := KindOf(err); ok {
		return kind != KindFetch
	}
	return err != nil
}
