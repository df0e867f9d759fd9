// Package apperror defines the failures the core reports to its callers.
// Every error leaving the validation layer, the repositories or the
// credential store matches exactly one of these sentinels under errors.Is.
package apperror

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingField       = errors.New("missing required field")
	ErrInvalidFormat      = errors.New("invalid format")
	ErrInvalidNumeric     = errors.New("invalid numeric value")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrDuplicateContact   = errors.New("contact already exists")
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

// FieldError names the inputs that caused a validation failure.
type FieldError struct {
	Kind   error
	Fields []string
}

func NewFieldError(kind error, fields ...string) *FieldError {
	return &FieldError{Kind: kind, Fields: fields}
}

func (e *FieldError) Error() string {
	if len(e.Fields) == 0 {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind, strings.Join(e.Fields, ", "))
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}

// Storage wraps a low-level driver error so callers can match it as
// ErrStorageUnavailable while the cause stays inspectable.
func Storage(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(ErrStorageUnavailable, err))
}

// Message returns the user-facing text for err: the sentinel's message for
// known failures, with field names appended where present, and a generic
// text for anything else so driver details never reach the user.
func Message(err error) string {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Error()
	}
	for _, known := range []error{
		ErrMissingField, ErrInvalidFormat, ErrInvalidNumeric,
		ErrDuplicateUsername, ErrDuplicateContact, ErrNotFound,
		ErrInvalidCredentials, ErrStorageUnavailable, ErrPasswordMismatch,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return "internal error"
}
