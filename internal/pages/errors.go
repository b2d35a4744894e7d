package pages

import (
	"errors"
	"fmt"
)

var (
	// ErrNavigation wraps browser failures while loading a screen
	ErrNavigation = errors.New("navigation failed")
	// ErrMismatch is returned when a value read from the screen differs from the expected one
	ErrMismatch = errors.New("unexpected value")
	// ErrNotFound is returned when a named item is not rendered on the screen
	ErrNotFound = errors.New("not found")
)

// AssertionError reports which check failed on which screen
type AssertionError struct {
	Page  string
	Check string
	Err   error
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("%s page: %s: %v", e.Page, e.Check, e.Err)
}

func (e *AssertionError) Unwrap() error {
	return e.Err
}

// mismatch builds an ErrMismatch with both values in the message
func mismatch(got, want any) error {
	return fmt.Errorf("%w: got %v, want %v", ErrMismatch, got, want)
}
