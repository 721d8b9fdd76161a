package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Load errors
	ErrLoadFailed = errors.New("failed to load table")

	// Selection errors
	ErrInvalidSelection = errors.New("invalid selection")
	ErrEmptySelection   = errors.New("empty selection")

	// State errors
	ErrNoTable = errors.New("no table loaded")
)

// Error constructors with context
func NewLoadError(reason string, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrLoadFailed, reason, err)
	}
	return fmt.Errorf("%w: %s", ErrLoadFailed, reason)
}

func NewInvalidSelectionError(column string, reason string) error {
	return fmt.Errorf("%w: column %q %s", ErrInvalidSelection, column, reason)
}

func NewEmptySelectionError(field string) error {
	return fmt.Errorf("%w: %s is required", ErrEmptySelection, field)
}

// Error checking helpers
func IsLoadError(err error) bool {
	return errors.Is(err, ErrLoadFailed)
}

func IsInvalidSelection(err error) bool {
	return errors.Is(err, ErrInvalidSelection)
}

func IsEmptySelection(err error) bool {
	return errors.Is(err, ErrEmptySelection)
}

func IsSelectionError(err error) bool {
	return errors.Is(err, ErrInvalidSelection) ||
		errors.Is(err, ErrEmptySelection)
}
