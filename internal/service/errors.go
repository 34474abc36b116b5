package service

import "fmt"

// ValidationError reports a league rule violation. It is recoverable: the
// caller is expected to surface Reason to the user, not to crash.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationErr(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
