package service

import "fmt"

// ValidationError marks input the caller can correct. Handlers map it to a
// client error; anything else coming out of a service is a storage failure
// and must surface as a generic server error with the detail logged only.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func invalidf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
