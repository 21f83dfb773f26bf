package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/riftbound-tools/riftdrill/internal/domain"
	"github.com/riftbound-tools/riftdrill/internal/domain/srs"
	"github.com/riftbound-tools/riftdrill/internal/match"
	"github.com/riftbound-tools/riftdrill/internal/session"
	"github.com/riftbound-tools/riftdrill/internal/store"
)

// StudyService orchestrates the study flow: session assembly, answer
// feedback, rating persistence, relearn reinsertion, and the daily
// quota controls. All operations run on the caller's goroutine; the
// scheduler has no concurrency of its own.
type StudyService struct {
	catalog    store.CardCatalog
	reviews    store.ReviewStore
	daily      store.DailyStore
	recall     srs.Service
	builder    *session.Builder
	defaultCap int
	now        func() domain.Date
	logger     *slog.Logger
}

// NewStudyService wires a study service from its collaborators.
// defaultCap is the new-card cap a fresh day starts with; pass 0 for
// the domain default. If now or logger are nil, defaults are used.
func NewStudyService(
	catalog store.CardCatalog,
	reviews store.ReviewStore,
	daily store.DailyStore,
	recall srs.Service,
	builder *session.Builder,
	defaultCap int,
	now func() domain.Date,
	logger *slog.Logger,
) *StudyService {
	if catalog == nil {
		panic("catalog cannot be nil")
	}
	if reviews == nil || daily == nil {
		panic("stores cannot be nil")
	}
	if recall == nil {
		panic("recall service cannot be nil")
	}
	if builder == nil {
		panic("session builder cannot be nil")
	}
	if defaultCap <= 0 {
		defaultCap = domain.DefaultNewCap
	}
	if now == nil {
		now = domain.Today
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &StudyService{
		catalog:    catalog,
		reviews:    reviews,
		daily:      daily,
		recall:     recall,
		builder:    builder,
		defaultCap: defaultCap,
		now:        now,
		logger:     logger.With(slog.String("component", "study_service")),
	}
}

// RolloverIfNewDay replaces the daily quota state with a fresh default
// when the stored date is not today. Cap expansions from earlier days
// do not survive the rollover.
func (s *StudyService) RolloverIfNewDay() error {
	today := s.now()
	progress := s.daily.Current()
	if progress.Date.Equal(today) {
		return nil
	}

	s.logger.Info("daily quota rolled over",
		"previous_date", progress.Date.String(), "date", today.String())
	return s.daily.Update(domain.NewDailyProgress(today, s.defaultCap))
}

// StartSession assembles a study session of up to targetSize items.
// Returns session.ErrInsufficientCards when fewer than the minimum
// viable number of items could be assembled; in that case no new cards
// are counted against today's quota.
func (s *StudyService) StartSession(ctx context.Context, targetSize int) (*ActiveSession, error) {
	if err := s.RolloverIfNewDay(); err != nil {
		return nil, fmt.Errorf("failed to roll over daily quota: %w", err)
	}

	cards, err := s.catalog.ListAllCards(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	queue, err := s.builder.Build(cards, s.now(), targetSize)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Card, len(cards))
	for _, card := range cards {
		byID[card.VariantID] = card
	}

	return &ActiveSession{
		queue:   queue,
		cards:   byID,
		relearn: session.NewRelearnController(),
	}, nil
}

// SubmitAnswer records the user's free-text answer for the current
// item and returns the matcher's verdict along with the card, for
// feedback display. It has no effect on scheduling.
func (s *StudyService) SubmitAnswer(active *ActiveSession, answer string, elapsed time.Duration) (bool, *domain.Card, error) {
	item, card, ok := active.Current()
	if !ok {
		return false, nil, ErrNoActiveItem
	}

	correct := match.IsMatch(answer, card.Name)
	item.RecordAnswer(answer, correct, elapsed)
	return correct, card, nil
}

// Rate records a 0-5 quality rating for the current item: the recall
// engine computes and persists the card's next review state, and a
// failing rating may reinsert the card later in this session's queue.
// Repeated ratings of the same card within a session each overwrite the
// stored state; the last one wins.
func (s *StudyService) Rate(active *ActiveSession, quality int) error {
	item, card, ok := active.Current()
	if !ok {
		return ErrNoActiveItem
	}
	if item.Rated() {
		return ErrAlreadyRated
	}

	prior, _ := s.reviews.Get(card.VariantID)
	next, err := s.recall.Rate(prior, quality, s.now())
	if err != nil {
		return fmt.Errorf("failed to compute next review state: %w", err)
	}
	if err := s.reviews.Put(card.VariantID, next); err != nil {
		return fmt.Errorf("failed to persist review state: %w", err)
	}

	item.LastRating = quality
	reinserted := active.relearn.OnRated(active.queue, active.index, card.VariantID, quality)

	s.logger.Debug("card rated",
		"card", card.VariantID,
		"quality", quality,
		"interval_days", next.IntervalDays,
		"due", next.Due.String(),
		"reinserted", reinserted)
	return nil
}

// Counts reports how many catalog cards are currently due and how many
// are new (never studied and not yet introduced today). Useful for
// status display before starting a session.
func (s *StudyService) Counts(ctx context.Context) (due, fresh int, err error) {
	if err := s.RolloverIfNewDay(); err != nil {
		return 0, 0, err
	}

	cards, err := s.catalog.ListAllCards(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load catalog: %w", err)
	}

	today := s.now()
	progress := s.daily.Current()
	for _, card := range cards {
		state, ok := s.reviews.Get(card.VariantID)
		switch {
		case ok && state.IsDue(today):
			due++
		case !ok && !progress.WasIntroduced(card.VariantID):
			fresh++
		}
	}
	return due, fresh, nil
}
