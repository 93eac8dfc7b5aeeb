package form

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrInvalidField is returned when an entry point receives a field key that
	// was not part of the initial values.
	ErrInvalidField = errors.New("form: invalid field")
	// ErrValidate wraps errors returned by the configured validate function.
	ErrValidate = errors.New("form: validate failed")
	// ErrSubmitFailed marks submissions whose callback returned an error,
	// rejected its completion channel, or panicked.
	ErrSubmitFailed = errors.New("form: submit failed")
	// ErrConfig signals an unusable engine configuration.
	ErrConfig = errors.New("form: invalid config")
)

// FieldError reports the offending key for ErrInvalidField.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("form: invalid field %q", e.Field)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidField
}

// SubmitError carries the callback failure for a single submission attempt.
type SubmitError struct {
	ID  uuid.UUID
	Err error
}

func (e *SubmitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("form: submit %s failed", e.ID)
	}
	return fmt.Sprintf("form: submit %s failed: %v", e.ID, e.Err)
}

func (e *SubmitError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrSubmitFailed}
	}
	return []error{ErrSubmitFailed, e.Err}
}
