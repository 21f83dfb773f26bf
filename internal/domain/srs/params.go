package srs

import "github.com/riftbound-tools/riftdrill/internal/domain"

// Quality rating bounds. Ratings outside the range are clamped rather
// than rejected so the recall engine stays total.
const (
	MinQuality = 0
	MaxQuality = 5

	// PassingQuality is the lowest rating counted as a successful
	// recall. Anything below it resets the repetition streak.
	PassingQuality = 3
)

// Params defines the configurable parameters of the SM-2 update rule.
// The quality-to-easiness mapping itself is fixed (it is the system's
// sole scheduling law); only the interval seeds and the easiness floor
// are parameters.
type Params struct {
	// MinEaseFactor is the floor applied after every easiness update.
	MinEaseFactor float64

	// InitialEaseFactor seeds the state of a card rated for the first time.
	InitialEaseFactor float64

	// FirstInterval is the interval in days after the first successful review.
	FirstInterval int

	// SecondInterval is the interval in days after the second consecutive success.
	SecondInterval int

	// FailureInterval is the interval in days after a failed review.
	FailureInterval int
}

// NewDefaultParams returns the classic SM-2 parameter set.
func NewDefaultParams() *Params {
	return &Params{
		MinEaseFactor:     domain.MinEaseFactor,
		InitialEaseFactor: domain.DefaultEaseFactor,
		FirstInterval:     1,
		SecondInterval:    6,
		FailureInterval:   1,
	}
}
