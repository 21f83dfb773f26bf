package srs

import (
	"errors"

	"github.com/riftbound-tools/riftdrill/internal/domain"
)

// Common errors
var (
	ErrZeroDate = errors.New("review date cannot be the zero date")
)

// Service defines the interface for recall-engine operations.
type Service interface {
	// Rate computes the state a card moves to after receiving a 0-5
	// quality rating on the given date. A nil prior state means the
	// card has never been studied; a fresh default is used. Ratings
	// outside [0,5] are clamped, not rejected, so Rate is total over
	// its inputs.
	Rate(prior *domain.ReviewState, quality int, today domain.Date) (*domain.ReviewState, error)
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates a recall engine with the classic SM-2 parameters.
func NewDefaultService() Service {
	return &defaultService{params: NewDefaultParams()}
}

// NewServiceWithParams creates a recall engine with custom parameters.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{params: params}
}

// Rate implements the Service interface.
func (s *defaultService) Rate(prior *domain.ReviewState, quality int, today domain.Date) (*domain.ReviewState, error) {
	if today.IsZero() {
		return nil, ErrZeroDate
	}

	if prior == nil {
		prior = domain.NewReviewState(today)
		prior.EaseFactor = s.params.InitialEaseFactor
	}

	return calculateNextStats(prior, quality, today, s.params), nil
}
