package utils

import "fmt"

// Error records a failed operation together with the box, block or layout
// it was applied to.
type Error struct {
	Op      string       // "push", "fill", "dense layout", ...
	Subject fmt.Stringer // may be nil
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Subject == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("%s %v: %v", e.Op, e.Subject, e.Cause)
}

// Unwrap returns the cause so that errors.Is sees sentinel errors.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WrapError annotates cause with op. It returns nil for a nil cause.
func WrapError(op string, cause error) error {
	return WrapSubjectError(op, nil, cause)
}

// WrapSubjectError annotates cause with op and the value op acted on.
// It returns nil for a nil cause.
func WrapSubjectError(op string, subject fmt.Stringer, cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{Op: op, Subject: subject, Cause: cause}
}
