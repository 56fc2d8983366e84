package cmd

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownFlag      = errors.New("cmd: unknown flag")
	ErrMissingFlagValue = errors.New("cmd: flag expects a value")
	ErrTooManyValues    = errors.New("cmd: too many values")
	ErrMissingValue     = errors.New("cmd: missing value")
	ErrValidation       = errors.New("cmd: validation failed")
)

// ParseError is returned by Consume for any user input that cannot be resolved.
// Error returns the message meant for the user; Unwrap returns the matching sentinel.
type ParseError struct {
	Kind    error
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func newParseError(kind error, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

func validationError(err error) *ParseError {
	return &ParseError{
		Kind:    ErrValidation,
		Message: err.Error(),
		Err:     err,
	}
}
