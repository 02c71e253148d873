package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidZone       = errors.New("invalid zone")
	ErrNoTravellers      = errors.New("at least 1 traveller is required")
	ErrTooManyTravellers = errors.New("traveller count out of range")
	ErrInvalidCode       = errors.New("invalid verification code")
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// ValidationError reports bad caller input. Err carries the sentinel cause
// so callers can match it with errors.Is.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
