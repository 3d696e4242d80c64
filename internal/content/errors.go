package content

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingKey is returned when a resolver has no value for a key
	ErrMissingKey = errors.New("missing translation key")
	// ErrInvalidBundle marks a bundle that violates the engine's preconditions
	ErrInvalidBundle = errors.New("invalid content bundle")
)

// PreconditionError reports the bundle field that could not be used.
type PreconditionError struct {
	Field string
	Err   error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("content precondition failed at %s: %v", e.Field, e.Err)
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

func precondition(field string, err error) error {
	return &PreconditionError{Field: field, Err: err}
}
