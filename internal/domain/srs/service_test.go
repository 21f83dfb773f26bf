package srs

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/riftbound-tools/riftdrill/internal/domain"
)

func TestRateNilStateUsesFreshDefaults(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()
	today := domain.NewDate(2026, time.January, 5)

	next, err := svc.Rate(nil, 5, today)
	if err != nil {
		t.Fatalf("Rate returned error: %v", err)
	}

	// A fresh card starts at EF 2.5; a perfect rating moves it to 2.6
	// with a one-day interval.
	if math.Abs(next.EaseFactor-2.6) > 0.0001 {
		t.Errorf("Expected ease factor 2.6, got %f", next.EaseFactor)
	}
	if next.Repetitions != 1 {
		t.Errorf("Expected repetitions 1, got %d", next.Repetitions)
	}
	if next.IntervalDays != 1 {
		t.Errorf("Expected interval 1, got %d", next.IntervalDays)
	}
	if !next.Due.Equal(today.AddDays(1)) {
		t.Errorf("Expected due %s, got %s", today.AddDays(1), next.Due)
	}
}

func TestRateZeroDate(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()

	_, err := svc.Rate(nil, 4, domain.Date{})
	if !errors.Is(err, ErrZeroDate) {
		t.Fatalf("Expected ErrZeroDate, got %v", err)
	}
}

// TestRateFirstSuccessSequence walks a card through three successive
// days of q=4 ratings: the intervals must be exactly 1, 6, then
// round(6 * ef) with the ease factor the card had after the second
// rating.
func TestRateFirstSuccessSequence(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()
	day := domain.NewDate(2026, time.June, 1)

	var state *domain.ReviewState
	var err error
	wantIntervals := []int{1, 6, 15} // q=4 leaves EF at 2.5, round(6*2.5)=15

	for i, want := range wantIntervals {
		state, err = svc.Rate(state, 4, day)
		if err != nil {
			t.Fatalf("rating %d returned error: %v", i+1, err)
		}
		if state.IntervalDays != want {
			t.Errorf("rating %d: expected interval %d, got %d", i+1, want, state.IntervalDays)
		}
		if state.Repetitions != i+1 {
			t.Errorf("rating %d: expected repetitions %d, got %d", i+1, i+1, state.Repetitions)
		}
		day = state.Due
	}
}

func TestRateDoesNotMutatePrior(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()
	today := domain.NewDate(2026, time.June, 1)

	prior := &domain.ReviewState{EaseFactor: 2.5, Repetitions: 2, IntervalDays: 6, Due: today}
	snapshot := *prior

	if _, err := svc.Rate(prior, 0, today); err != nil {
		t.Fatalf("Rate returned error: %v", err)
	}
	if *prior != snapshot {
		t.Errorf("Rate mutated the prior state: %+v != %+v", *prior, snapshot)
	}
}
