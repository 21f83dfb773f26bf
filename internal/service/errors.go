// Package service provides the application-level study operations:
// starting sessions, recording answers and ratings, and managing the
// daily new-card quota and stored progress.
package service

import "errors"

// Common service errors - sentinel errors callers check with errors.Is.
var (
	// ErrNoActiveItem indicates the session has no unanswered item at
	// the current position (the session is exhausted or not started).
	ErrNoActiveItem = errors.New("no active session item")

	// ErrAlreadyRated indicates the current item was already rated;
	// advancing is required before rating again.
	ErrAlreadyRated = errors.New("current item already rated")
)
