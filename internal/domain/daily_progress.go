package domain

import "errors"

const (
	// DefaultNewCap is the daily new-card cap a fresh DailyProgress starts with.
	DefaultNewCap = 10

	// UnlimitedNewCap is the sentinel cap meaning "no limit today".
	// A large constant keeps the remaining-allowance arithmetic total.
	UnlimitedNewCap = 1_000_000
)

// DailyProgress-specific validation errors
var (
	ErrInvalidNewTaken = errors.New("new cards taken today must be greater than or equal to 0")
	ErrInvalidNewCap   = errors.New("daily new-card cap must be greater than or equal to 0")
)

// DailyProgress is the process-wide singleton tracking which cards were
// introduced as new on a given calendar date, across all sessions of
// that date. It is replaced wholesale when the stored date no longer
// matches today.
type DailyProgress struct {
	Date       Date     `json:"date"`
	Introduced []string `json:"introduced_today"`
	NewTaken   int      `json:"new_taken_today"`
	NewCap     int      `json:"new_cap_today"`
}

// NewDailyProgress creates a fresh DailyProgress for the given date
// with the provided cap (or DefaultNewCap when cap <= 0).
func NewDailyProgress(date Date, cap int) *DailyProgress {
	if cap <= 0 {
		cap = DefaultNewCap
	}
	return &DailyProgress{
		Date:       date,
		Introduced: []string{},
		NewTaken:   0,
		NewCap:     cap,
	}
}

// WasIntroduced reports whether the card was already introduced as new today.
func (p *DailyProgress) WasIntroduced(cardID string) bool {
	for _, id := range p.Introduced {
		if id == cardID {
			return true
		}
	}
	return false
}

// MarkIntroduced records a card as introduced today and increments the
// taken counter. Marking the same card twice is a no-op.
func (p *DailyProgress) MarkIntroduced(cardID string) {
	if p.WasIntroduced(cardID) {
		return
	}
	p.Introduced = append(p.Introduced, cardID)
	p.NewTaken++
}

// Remaining returns how many new cards may still be introduced today.
func (p *DailyProgress) Remaining() int {
	if r := p.NewCap - p.NewTaken; r > 0 {
		return r
	}
	return 0
}

// Clone returns a deep copy of the progress record.
func (p *DailyProgress) Clone() *DailyProgress {
	c := *p
	c.Introduced = append([]string(nil), p.Introduced...)
	return &c
}

// Validate checks counter invariants.
func (p *DailyProgress) Validate() error {
	if p.NewTaken < 0 {
		return ErrInvalidNewTaken
	}
	if p.NewCap < 0 {
		return ErrInvalidNewCap
	}
	return nil
}
