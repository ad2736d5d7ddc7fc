package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers both a missing entity and an entity owned by a
	// different user; callers must not be able to tell the two apart.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks malformed input such as out-of-range pattern
	// parameters.
	ErrValidation = errors.New("validation failed")
)

// StoreError wraps a transient failure against the persistent store.
type StoreError struct {
	Entity string
	Op     string
	Err    error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// DispatchError wraps a notification transport failure for one user.
type DispatchError struct {
	UserID string
	Err    error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch for user %s: %v", e.UserID, e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }

// NotFound builds an ErrNotFound with entity context.
func NotFound(entity string) error {
	return fmt.Errorf("%s: %w", entity, ErrNotFound)
}

// Validation builds an ErrValidation with a reason.
func Validation(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrValidation)
}

func WrapStore(entity, op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Entity: entity, Op: op, Err: err}
}
