package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrWriteFailed is returned when persisting state to the backing
	// file or database fails. Implementations keep their in-memory
	// state consistent with what is on disk when they return this.
	ErrWriteFailed = errors.New("write failed")

	// Entity-specific "not found" errors

	// ErrCardNotFound indicates that the requested card does not exist in the catalog.
	ErrCardNotFound = fmt.Errorf("%w: card", ErrNotFound)

	// ErrReviewStateNotFound indicates that a card has no stored review state.
	ErrReviewStateNotFound = fmt.Errorf("%w: review state", ErrNotFound)
)
