package service

import (
	"github.com/riftbound-tools/riftdrill/internal/domain"
	"github.com/riftbound-tools/riftdrill/internal/session"
)

// ActiveSession is a running study session: the queue, the cards it
// references, the cursor position, and the per-session relearn
// bookkeeping. It lives only for the duration of one sitting.
type ActiveSession struct {
	queue   *session.Session
	cards   map[string]*domain.Card
	relearn *session.RelearnController
	index   int
}

// Current returns the item at the cursor and its card. The third
// return is false when the session is exhausted.
func (a *ActiveSession) Current() (*domain.SessionItem, *domain.Card, bool) {
	if a.index >= a.queue.Len() {
		return nil, nil, false
	}
	item := a.queue.Items[a.index]
	return item, a.cards[item.CardID], true
}

// Advance moves the cursor to the next item. Returns false when the
// session is exhausted.
func (a *ActiveSession) Advance() bool {
	if a.index < a.queue.Len() {
		a.index++
	}
	return a.index < a.queue.Len()
}

// Position returns the one-based cursor position and the current queue
// length. The length can grow as relearn items are inserted.
func (a *ActiveSession) Position() (int, int) {
	return a.index + 1, a.queue.Len()
}

// DueCount returns how many due cards the session started with.
func (a *ActiveSession) DueCount() int { return a.queue.DueCount }

// NewCount returns how many new cards the session introduced.
func (a *ActiveSession) NewCount() int { return a.queue.NewCount }

// Summary returns the answered/correct totals so far.
func (a *ActiveSession) Summary() session.Summary {
	return a.queue.Summarize()
}
