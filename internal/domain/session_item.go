package domain

import (
	"time"

	"github.com/google/uuid"
)

// RatingUnset marks a SessionItem that has not been rated yet.
const RatingUnset = -1

// SessionItem is a transient, in-memory record for one presentation of
// a card within a study session. Items are created when the session
// queue is assembled or when a poorly-recalled card is reinserted by
// the relearn controller, and are discarded when the session ends.
// IsCorrect reflects the answer matcher's verdict and is display-only;
// scheduling is driven solely by the user's 0-5 rating.
type SessionItem struct {
	ID         uuid.UUID
	CardID     string
	IsNew      bool
	IsRelearn  bool
	Answered   bool
	UserAnswer string
	IsCorrect  bool
	AnswerTime time.Duration
	LastRating int
}

// NewSessionItem creates an unanswered item for the given card.
func NewSessionItem(cardID string, isNew bool) *SessionItem {
	return &SessionItem{
		ID:         uuid.New(),
		CardID:     cardID,
		IsNew:      isNew,
		LastRating: RatingUnset,
	}
}

// NewRelearnItem creates an item for a relearn reinsertion of the card.
func NewRelearnItem(cardID string) *SessionItem {
	item := NewSessionItem(cardID, false)
	item.IsRelearn = true
	return item
}

// Rated reports whether the item has received a rating.
func (i *SessionItem) Rated() bool {
	return i.LastRating != RatingUnset
}

// RecordAnswer stores the user's free-text answer, the matcher verdict,
// and the time taken to answer.
func (i *SessionItem) RecordAnswer(answer string, correct bool, elapsed time.Duration) {
	i.Answered = true
	i.UserAnswer = answer
	i.IsCorrect = correct
	i.AnswerTime = elapsed
}
