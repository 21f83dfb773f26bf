package domain

import "errors"

// Default scheduling constants. A card with no stored ReviewState is
// "new"; its state is created with these values on the first rating.
const (
	// DefaultEaseFactor is the initial easiness factor for a fresh card.
	DefaultEaseFactor = 2.5

	// MinEaseFactor is the floor below which the easiness factor never drops.
	MinEaseFactor = 1.3
)

// Common validation errors for ReviewState
var (
	ErrInvalidInterval   = errors.New("interval must be greater than or equal to 0")
	ErrInvalidEaseFactor = errors.New("ease factor must be at least 1.3")
	ErrInvalidRepetition = errors.New("repetitions must be greater than or equal to 0")
)

// ReviewState tracks the spaced-repetition memory state for a single
// card. It is keyed by the card's variant ID in the Review Store and is
// mutated only by the recall engine, which returns new instances rather
// than modifying existing ones.
type ReviewState struct {
	EaseFactor   float64 `json:"ef"`
	Repetitions  int     `json:"repetitions"`
	IntervalDays int     `json:"interval_days"`
	Due          Date    `json:"due"`
}

// NewReviewState creates the state for a card being studied for the
// first time. The card is due immediately.
func NewReviewState(today Date) *ReviewState {
	return &ReviewState{
		EaseFactor:   DefaultEaseFactor,
		Repetitions:  0,
		IntervalDays: 0,
		Due:          today,
	}
}

// Clone returns a copy of the state.
func (s *ReviewState) Clone() *ReviewState {
	c := *s
	return &c
}

// IsDue reports whether the card should be reviewed on the given date.
func (s *ReviewState) IsDue(today Date) bool {
	return !s.Due.After(today)
}

// Validate checks the scheduling invariants.
func (s *ReviewState) Validate() error {
	if s.EaseFactor < MinEaseFactor {
		return ErrInvalidEaseFactor
	}
	if s.Repetitions < 0 {
		return ErrInvalidRepetition
	}
	if s.IntervalDays < 0 {
		return ErrInvalidInterval
	}
	return nil
}
