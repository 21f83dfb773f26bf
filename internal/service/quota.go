package service

import (
	"fmt"

	"github.com/riftbound-tools/riftdrill/internal/domain"
)

// ExpandCap raises today's new-card cap by the given amount and
// persists the change. Non-positive amounts are ignored. The expansion
// applies to the current date only; the next rollover restores the
// default.
func (s *StudyService) ExpandCap(by int) error {
	if by <= 0 {
		return nil
	}
	if err := s.RolloverIfNewDay(); err != nil {
		return err
	}

	progress := s.daily.Current()
	progress.NewCap += by
	if err := s.daily.Update(progress); err != nil {
		return fmt.Errorf("failed to persist expanded cap: %w", err)
	}

	s.logger.Info("daily new-card cap expanded", "by", by, "cap", progress.NewCap)
	return nil
}

// ExpandCapUnlimited removes today's new-card cap by setting it to the
// unlimited sentinel, persisted immediately.
func (s *StudyService) ExpandCapUnlimited() error {
	if err := s.RolloverIfNewDay(); err != nil {
		return err
	}

	progress := s.daily.Current()
	progress.NewCap = domain.UnlimitedNewCap
	if err := s.daily.Update(progress); err != nil {
		return fmt.Errorf("failed to persist unlimited cap: %w", err)
	}

	s.logger.Info("daily new-card cap set to unlimited")
	return nil
}

// DailyProgress returns a copy of today's quota state, rolling the day
// over first if needed.
func (s *StudyService) DailyProgress() *domain.DailyProgress {
	if err := s.RolloverIfNewDay(); err != nil {
		s.logger.Warn("failed to roll over daily quota", "error", err)
	}
	return s.daily.Current()
}

// ResetAllProgress destructively clears every stored review state in
// one atomic operation. The daily quota store is not touched. The
// caller is responsible for confirming the action with the user.
func (s *StudyService) ResetAllProgress() error {
	cleared := s.reviews.Len()
	if err := s.reviews.Reset(); err != nil {
		return fmt.Errorf("failed to reset review store: %w", err)
	}

	s.logger.Info("all review progress reset", "cleared", cleared)
	return nil
}
