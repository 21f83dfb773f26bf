package store

import "github.com/riftbound-tools/riftdrill/internal/domain"

// ReviewStore defines the interface for per-card review state
// persistence. Absence of an entry means the card has never been
// studied. Implementations persist the whole document after every
// mutating call; reads are served from memory.
type ReviewStore interface {
	// Get retrieves the review state for a card. The second return is
	// false when the card has never been studied. The returned state is
	// a copy; mutating it does not affect the store.
	Get(cardID string) (*domain.ReviewState, bool)

	// Put stores the review state for a card, creating the entry if it
	// does not exist, and persists the store.
	// Returns validation errors from the domain ReviewState wrapped in
	// ErrInvalidEntity if the state is invalid.
	Put(cardID string, state *domain.ReviewState) error

	// Len returns the number of cards with stored review state.
	Len() int

	// Reset removes every entry and persists the now-empty store.
	// This operation is atomic: either the cleared document replaces
	// the old one or the old document is left intact.
	Reset() error
}

// DailyStore defines the interface for the daily quota singleton.
type DailyStore interface {
	// Current returns the loaded DailyProgress. The returned value is a
	// copy; mutate it and pass it to Update to persist changes.
	Current() *domain.DailyProgress

	// Update replaces the stored DailyProgress and persists it.
	Update(progress *domain.DailyProgress) error
}
