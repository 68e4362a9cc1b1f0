// Package errs wraps the error library behind the few operations the
// services need. Validation failures and not-found conditions are marked so
// the presentation layer can tell them apart from unexpected errors.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

var (
	ErrValidation = cr.New("validation failed")
	ErrNotFound   = cr.New("not found")
)

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Validation builds a user-facing rejection with a human-readable reason.
func Validation(msg string) error {
	return cr.Mark(cr.New(msg), ErrValidation)
}

func Validationf(format string, args ...any) error {
	return cr.Mark(cr.Newf(format, args...), ErrValidation)
}

func IsValidation(err error) bool {
	return cr.Is(err, ErrValidation)
}

func IsNotFound(err error) bool {
	return cr.Is(err, ErrNotFound)
}
