package model

import (
	"errors"
	"fmt"
)

// Precondition violations reported by Validate and ValidateLayout.
var (
	ErrEmptyID          = errors.New("item has no id")
	ErrDuplicateID      = errors.New("duplicate item id")
	ErrNegativePosition = errors.New("item position must not be negative")
	ErrInvalidSize      = errors.New("item width and height must be at least 1")
)

// Validate checks the preconditions the engine assumes for a single item.
func (it LayoutItem) Validate() error {
	var errs []error
	if it.ID == "" {
		errs = append(errs, ErrEmptyID)
	}
	if it.X < 0 || it.Y < 0 {
		errs = append(errs, fmt.Errorf("%w: (%d, %d)", ErrNegativePosition, it.X, it.Y))
	}
	if it.W < 1 || it.H < 1 {
		errs = append(errs, fmt.Errorf("%w: %dx%d", ErrInvalidSize, it.W, it.H))
	}
	if len(errs) == 0 {
		return nil
	}
	if it.ID != "" {
		return fmt.Errorf("item %q: %w", it.ID, errors.Join(errs...))
	}
	return errors.Join(errs...)
}

// ValidateLayout checks every item plus ID uniqueness across the collection.
// Overlap is not a violation; it is what the engine detects.
func ValidateLayout(items []LayoutItem) error {
	var errs []error
	seen := make(map[string]bool, len(items))
	for i, it := range items {
		if err := it.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("item #%d: %w", i, err))
		}
		if it.ID == "" {
			continue
		}
		if seen[it.ID] {
			errs = append(errs, fmt.Errorf("item #%d: %w: %q", i, ErrDuplicateID, it.ID))
		}
		seen[it.ID] = true
	}
	return errors.Join(errs...)
}
