package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidFormat is returned when data is not in the expected format.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidDate is returned when a calendar date string cannot be parsed.
	ErrInvalidDate = errors.New("invalid date format")

	// ErrEmptyCardID is returned when a card identifier is empty.
	ErrEmptyCardID = errors.New("card ID cannot be empty")
)
