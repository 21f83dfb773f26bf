package session

import (
	"github.com/riftbound-tools/riftdrill/internal/domain"
	"github.com/riftbound-tools/riftdrill/internal/domain/srs"
)

// Relearn defaults.
const (
	// MaxRelearnsPerCard bounds how many times one card may be
	// reinserted within a single session.
	MaxRelearnsPerCard = 2

	// RelearnSpacing is how many items ahead of the current position a
	// failed card is reinserted.
	RelearnSpacing = 5
)

// RelearnController performs short-term reinsertion of poorly-recalled
// cards within the current session. It only mutates the in-memory
// queue; the reinserted item goes through the normal answer and rating
// flow when reached, and each of those ratings overwrites the persisted
// review state, so the stored schedule reflects the last rating given.
type RelearnController struct {
	maxPerCard int
	spacing    int
	counts     map[string]int
}

// NewRelearnController creates a controller with the default bound and
// spacing. One controller serves one session.
func NewRelearnController() *RelearnController {
	return &RelearnController{
		maxPerCard: MaxRelearnsPerCard,
		spacing:    RelearnSpacing,
		counts:     make(map[string]int),
	}
}

// OnRated is invoked immediately after a rating is recorded for the
// item at currentIndex. If the rating was a failure and the card has
// not exhausted its reinsertion allowance, a fresh item for the card is
// inserted spacing items ahead (or at the end of a shorter queue).
// Returns true when a reinsertion happened.
func (c *RelearnController) OnRated(sess *Session, currentIndex int, cardID string, quality int) bool {
	if quality >= srs.PassingQuality {
		return false
	}
	if c.counts[cardID] >= c.maxPerCard {
		return false
	}

	at := currentIndex + 1 + c.spacing
	if at > sess.Len() {
		at = sess.Len()
	}
	sess.InsertAt(at, domain.NewRelearnItem(cardID))
	c.counts[cardID]++
	return true
}

// Relearns returns how many times the card has been reinserted so far.
func (c *RelearnController) Relearns(cardID string) int {
	return c.counts[cardID]
}
