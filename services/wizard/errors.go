package wizard

import "fmt"

// ValidationError is a local, synchronous step violation. It blocks
// advancement and is shown inline.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// AvailabilityError means the inventory fetch failed or came back empty.
// It is a non-blocking warning while navigating but blocks final
// submission.
type AvailabilityError struct {
	Message string
}

func (e *AvailabilityError) Error() string {
	return e.Message
}

// SubmissionError is a network/server failure on the final booking call.
// The wizard stays on the payment step so the user can resubmit.
type SubmissionError struct {
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
