package form

import "errors"

var (
	// ErrSubmitPending is returned when Submit is called while a previous
	// submission of the same controller is still in flight.
	ErrSubmitPending = errors.New("submission already in progress")
	// ErrClosed is returned by Submit after Close. A submission that was in
	// flight when Close was called also returns it, and its result is
	// discarded.
	ErrClosed = errors.New("form closed")
)

// ValidationError reports input that failed a local check. Nothing was sent.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// SubmissionError reports that the gateway failed or rejected the
// submission. Message is the text shown to the visitor; Err is the cause.
type SubmissionError struct {
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *SubmissionError) Unwrap() error { return e.Err }

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}
