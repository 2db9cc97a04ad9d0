package common

import "fmt"

// ValidationError marks bad caller input, including references to entities
// outside the caller's tenant. Handlers map it to a 400 response.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
