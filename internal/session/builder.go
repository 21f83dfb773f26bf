package session

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"

	"github.com/riftbound-tools/riftdrill/internal/domain"
	"github.com/riftbound-tools/riftdrill/internal/store"
)

// Session sizing defaults.
const (
	// DefaultTargetSize is the number of items a session aims for.
	DefaultTargetSize = 20

	// MinViableSession is the smallest queue worth starting. Below it
	// session start fails and no quota is consumed.
	MinViableSession = 5
)

// ErrInsufficientCards is returned when fewer than MinViableSession
// items could be assembled. No partial session starts and the daily
// quota is left untouched.
var ErrInsufficientCards = errors.New("not enough cards to start a session")

// Builder constructs study session queues from the catalog, the review
// store, and the daily quota store.
type Builder struct {
	reviews store.ReviewStore
	daily   store.DailyStore
	rng     *rand.Rand
	logger  *slog.Logger
}

// NewBuilder creates a session builder. rng orders the due cards; pass
// a seeded source in tests for reproducible queues. If rng or logger
// are nil, defaults are used.
func NewBuilder(reviews store.ReviewStore, daily store.DailyStore, rng *rand.Rand, logger *slog.Logger) *Builder {
	if reviews == nil {
		panic("reviews store cannot be nil")
	}
	if daily == nil {
		panic("daily store cannot be nil")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Builder{
		reviews: reviews,
		daily:   daily,
		rng:     rng,
		logger:  logger.With(slog.String("component", "session_builder")),
	}
}

// Build assembles the queue for one study session.
//
// Cards with review state due on or before today come first, in random
// order; cards never studied and not yet introduced today follow, in
// catalog order, bounded by both the remaining target size and today's
// remaining new-card allowance. Daily quota bookkeeping is committed
// and persisted only once the queue has passed the minimum-size check,
// so a failed start has no side effects.
func (b *Builder) Build(cards []*domain.Card, today domain.Date, targetSize int) (*Session, error) {
	if targetSize <= 0 {
		targetSize = DefaultTargetSize
	}

	progress := b.daily.Current()

	var due, fresh []*domain.Card
	for _, card := range cards {
		state, ok := b.reviews.Get(card.VariantID)
		switch {
		case ok && state.IsDue(today):
			due = append(due, card)
		case !ok && !progress.WasIntroduced(card.VariantID):
			fresh = append(fresh, card)
		}
	}

	b.rng.Shuffle(len(due), func(i, j int) {
		due[i], due[j] = due[j], due[i]
	})
	sort.Slice(fresh, func(i, j int) bool {
		return fresh[i].Key.Less(fresh[j].Key)
	})

	sess := &Session{}
	for _, card := range due {
		if sess.Len() >= targetSize {
			break
		}
		sess.Items = append(sess.Items, domain.NewSessionItem(card.VariantID, false))
		sess.DueCount++
	}

	var introduced []string
	allowance := progress.Remaining()
	for _, card := range fresh {
		if sess.Len() >= targetSize || len(introduced) >= allowance {
			break
		}
		sess.Items = append(sess.Items, domain.NewSessionItem(card.VariantID, true))
		sess.NewCount++
		introduced = append(introduced, card.VariantID)
	}

	if sess.Len() < MinViableSession {
		b.logger.Info("session not started, too few cards",
			"assembled", sess.Len(), "minimum", MinViableSession)
		return nil, fmt.Errorf("%w: assembled %d of %d", ErrInsufficientCards, sess.Len(), MinViableSession)
	}

	if len(introduced) > 0 {
		for _, id := range introduced {
			progress.MarkIntroduced(id)
		}
		if err := b.daily.Update(progress); err != nil {
			return nil, fmt.Errorf("failed to persist daily quota: %w", err)
		}
	}

	b.logger.Info("session built",
		"total", sess.Len(), "due", sess.DueCount, "new", sess.NewCount)
	return sess, nil
}
